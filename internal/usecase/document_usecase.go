package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/juju/clock"
	"github.com/rs/zerolog"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/domain/lifecycle"
	"gestion_tramites/internal/infrastructure/logger"
	"gestion_tramites/internal/usecase/interfaces"
)

// IDocumentUseCase exposes the document micro-state operations.
type IDocumentUseCase interface {
	CycleProcedureDocument(ctx context.Context, id string) (entities.ProcedureDocument, error)
	RejectProcedureDocument(ctx context.Context, id string) (entities.ProcedureDocument, error)
	DeleteProcedureDocument(ctx context.Context, id string) error
	CycleClientDocument(ctx context.Context, id string) (entities.ClientDocument, error)
}

type DocumentUseCase struct {
	docs       interfaces.IProcedureDocumentRepository
	clientDocs interfaces.IClientDocumentRepository
	activity   activityRecorder
	clock      clock.Clock
	log        zerolog.Logger
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(
	docs interfaces.IProcedureDocumentRepository,
	clientDocs interfaces.IClientDocumentRepository,
	activity interfaces.IActivityRepository,
	clk clock.Clock,
) *DocumentUseCase {
	if clk == nil {
		clk = clock.WallClock
	}
	log := logger.WithComponent("document")
	return &DocumentUseCase{
		docs:       docs,
		clientDocs: clientDocs,
		activity:   activityRecorder{repo: activity, log: log},
		clock:      clk,
		log:        log,
	}
}

func (u *DocumentUseCase) CycleProcedureDocument(ctx context.Context, id string) (entities.ProcedureDocument, error) {
	return u.moveProcedureDocument(ctx, id, lifecycle.CycleProcedureDocument)
}

// RejectProcedureDocument is only accepted while the document is presentado.
func (u *DocumentUseCase) RejectProcedureDocument(ctx context.Context, id string) (entities.ProcedureDocument, error) {
	return u.moveProcedureDocument(ctx, id, lifecycle.RejectProcedureDocument)
}

func (u *DocumentUseCase) moveProcedureDocument(
	ctx context.Context,
	id string,
	next func(entities.ProcedureDocumentStatus) (entities.ProcedureDocumentStatus, error),
) (entities.ProcedureDocument, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProcedureDocument{}, ErrInvalidID
	}
	doc, err := u.docs.GetByID(ctx, id)
	if err != nil {
		return entities.ProcedureDocument{}, persistenceFailure(err)
	}
	if doc.ID == "" {
		return entities.ProcedureDocument{}, ErrDocumentNotFound
	}

	target, err := next(doc.Status)
	if err != nil {
		return entities.ProcedureDocument{}, err
	}
	updated, err := u.docs.UpdateStatus(ctx, doc.ID, target)
	if err != nil {
		u.log.Error().Err(err).Str("document_id", doc.ID).Msg("document status write failed")
		return entities.ProcedureDocument{}, persistenceFailure(err)
	}
	if updated.ID == "" {
		return entities.ProcedureDocument{}, ErrDocumentNotFound
	}
	u.activity.record(ctx, entities.EntityKindProcedure, doc.ProcedureID,
		fmt.Sprintf("Documento %q: %s → %s", doc.Name, doc.Status, target), u.clock.Now().UTC())
	return updated, nil
}

// DeleteProcedureDocument removes the document row permanently.
func (u *DocumentUseCase) DeleteProcedureDocument(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	doc, err := u.docs.GetByID(ctx, id)
	if err != nil {
		return persistenceFailure(err)
	}
	if doc.ID == "" {
		return ErrDocumentNotFound
	}
	existed, err := u.docs.Delete(ctx, doc.ID)
	if err != nil {
		return persistenceFailure(err)
	}
	if !existed {
		return ErrDocumentNotFound
	}
	u.activity.record(ctx, entities.EntityKindProcedure, doc.ProcedureID,
		fmt.Sprintf("Documento %q eliminado", doc.Name), u.clock.Now().UTC())
	return nil
}

func (u *DocumentUseCase) CycleClientDocument(ctx context.Context, id string) (entities.ClientDocument, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ClientDocument{}, ErrInvalidID
	}
	doc, err := u.clientDocs.GetByID(ctx, id)
	if err != nil {
		return entities.ClientDocument{}, persistenceFailure(err)
	}
	if doc.ID == "" {
		return entities.ClientDocument{}, ErrClientDocumentNotFound
	}
	target, err := lifecycle.CycleClientDocument(doc.Status)
	if err != nil {
		return entities.ClientDocument{}, err
	}
	updated, err := u.clientDocs.UpdateStatus(ctx, doc.ID, target)
	if err != nil {
		return entities.ClientDocument{}, persistenceFailure(err)
	}
	if updated.ID == "" {
		return entities.ClientDocument{}, ErrClientDocumentNotFound
	}
	u.activity.record(ctx, entities.EntityKindClientDocument, doc.ID,
		fmt.Sprintf("Documento %q: %s → %s", doc.Name, doc.Status, target), u.clock.Now().UTC())
	return updated, nil
}
