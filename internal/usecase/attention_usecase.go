package usecase

import (
	"context"
	"strings"

	"github.com/juju/clock"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/domain/lifecycle"
	"gestion_tramites/internal/usecase/interfaces"
)

// IAttentionUseCase feeds every "needs attention" view from the same
// aggregator so dashboards, case detail and the portal agree.
type IAttentionUseCase interface {
	ProcedureSignals(ctx context.Context, procedureID string) (lifecycle.ProcedureSignals, error)
	CaseAggregate(ctx context.Context, caseID string) (lifecycle.CaseAggregate, error)
	ClientOverview(ctx context.Context, clientID string) (lifecycle.ClientOverview, error)
}

type AttentionUseCase struct {
	clients    interfaces.IClientRepository
	cases      interfaces.ICaseRepository
	procedures interfaces.IProcedureRepository
	docs       interfaces.IProcedureDocumentRepository
	clientDocs interfaces.IClientDocumentRepository
	clock      clock.Clock
}

var _ IAttentionUseCase = (*AttentionUseCase)(nil)

func NewAttentionUseCase(
	clients interfaces.IClientRepository,
	cases interfaces.ICaseRepository,
	procedures interfaces.IProcedureRepository,
	docs interfaces.IProcedureDocumentRepository,
	clientDocs interfaces.IClientDocumentRepository,
	clk clock.Clock,
) *AttentionUseCase {
	if clk == nil {
		clk = clock.WallClock
	}
	return &AttentionUseCase{
		clients:    clients,
		cases:      cases,
		procedures: procedures,
		docs:       docs,
		clientDocs: clientDocs,
		clock:      clk,
	}
}

func (u *AttentionUseCase) ProcedureSignals(ctx context.Context, procedureID string) (lifecycle.ProcedureSignals, error) {
	procedureID = strings.TrimSpace(procedureID)
	if procedureID == "" {
		return lifecycle.ProcedureSignals{}, ErrInvalidID
	}
	p, err := u.procedures.GetByID(ctx, procedureID)
	if err != nil {
		return lifecycle.ProcedureSignals{}, persistenceFailure(err)
	}
	if p.ID == "" || !p.IsActive() {
		return lifecycle.ProcedureSignals{}, ErrProcedureNotFound
	}
	docs, err := u.docs.ListByProcedureID(ctx, p.ID)
	if err != nil {
		return lifecycle.ProcedureSignals{}, persistenceFailure(err)
	}
	return lifecycle.ComputeProcedureSignals(p, docs, u.clock.Now()), nil
}

// CaseAggregate rolls up the active procedures of an active case.
func (u *AttentionUseCase) CaseAggregate(ctx context.Context, caseID string) (lifecycle.CaseAggregate, error) {
	caseID = strings.TrimSpace(caseID)
	if caseID == "" {
		return lifecycle.CaseAggregate{}, ErrInvalidID
	}
	c, err := u.cases.GetByID(ctx, caseID)
	if err != nil {
		return lifecycle.CaseAggregate{}, persistenceFailure(err)
	}
	if c.ID == "" || !c.IsActive() {
		return lifecycle.CaseAggregate{}, ErrCaseNotFound
	}
	procs, err := u.procedures.ListActiveByCaseID(ctx, c.ID)
	if err != nil {
		return lifecycle.CaseAggregate{}, persistenceFailure(err)
	}
	items, err := u.withDocuments(ctx, procs)
	if err != nil {
		return lifecycle.CaseAggregate{}, err
	}
	return lifecycle.ComputeCaseAggregate(c, items, u.clock.Now()), nil
}

// ClientOverview rolls up every active procedure of the client, whether owned
// directly or through one of its active cases. Each procedure counts once.
func (u *AttentionUseCase) ClientOverview(ctx context.Context, clientID string) (lifecycle.ClientOverview, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return lifecycle.ClientOverview{}, ErrInvalidID
	}
	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return lifecycle.ClientOverview{}, persistenceFailure(err)
	}
	if client.ID == "" || !client.IsActive() {
		return lifecycle.ClientOverview{}, ErrClientNotFound
	}

	direct, err := u.procedures.ListActiveByClientID(ctx, client.ID)
	if err != nil {
		return lifecycle.ClientOverview{}, persistenceFailure(err)
	}
	seen := make(map[string]struct{}, len(direct))
	procs := make([]entities.Procedure, 0, len(direct))
	for _, p := range direct {
		seen[p.ID] = struct{}{}
		procs = append(procs, p)
	}

	cases, err := u.cases.ListActiveByClientID(ctx, client.ID)
	if err != nil {
		return lifecycle.ClientOverview{}, persistenceFailure(err)
	}
	for _, c := range cases {
		viaCase, err := u.procedures.ListActiveByCaseID(ctx, c.ID)
		if err != nil {
			return lifecycle.ClientOverview{}, persistenceFailure(err)
		}
		for _, p := range viaCase {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			procs = append(procs, p)
		}
	}

	items, err := u.withDocuments(ctx, procs)
	if err != nil {
		return lifecycle.ClientOverview{}, err
	}
	clientDocs, err := u.clientDocs.ListByClientID(ctx, client.ID)
	if err != nil {
		return lifecycle.ClientOverview{}, persistenceFailure(err)
	}
	return lifecycle.ComputeClientOverview(client.ID, items, clientDocs, u.clock.Now()), nil
}

func (u *AttentionUseCase) withDocuments(ctx context.Context, procs []entities.Procedure) ([]lifecycle.ProcedureWithDocuments, error) {
	items := make([]lifecycle.ProcedureWithDocuments, 0, len(procs))
	for _, p := range procs {
		docs, err := u.docs.ListByProcedureID(ctx, p.ID)
		if err != nil {
			return nil, persistenceFailure(err)
		}
		items = append(items, lifecycle.ProcedureWithDocuments{Procedure: p, Documents: docs})
	}
	return items, nil
}
