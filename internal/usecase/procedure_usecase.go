package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/juju/clock"
	"github.com/rs/zerolog"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/domain/lifecycle"
	"gestion_tramites/internal/infrastructure/logger"
	"gestion_tramites/internal/infrastructure/metrics"
	"gestion_tramites/internal/usecase/interfaces"
)

// CreateProcedureInput carries the fields accepted when opening a procedure.
// An empty CaseID creates an independent procedure.
type CreateProcedureInput struct {
	ClientID string
	CaseID   string
	Title    string
	Type     string
	DueDate  *time.Time
}

// IProcedureUseCase exposes procedure lifecycle operations.
type IProcedureUseCase interface {
	CreateProcedure(ctx context.Context, in CreateProcedureInput) (entities.Procedure, error)
	GetByID(ctx context.Context, id string) (entities.Procedure, error)
	ChangeStatus(ctx context.Context, id string, target entities.ProcedureStatus) (entities.Procedure, error)
	AllowedTransitions(ctx context.Context, id string) ([]entities.ProcedureStatus, error)
	AdjustProgress(ctx context.Context, id string, delta int) (entities.Procedure, error)
	SetProgress(ctx context.Context, id string, progress int) (entities.Procedure, error)
	SetSemaphore(ctx context.Context, id string, semaphore *entities.Semaphore) (entities.Procedure, error)
}

type ProcedureUseCase struct {
	repo     interfaces.IProcedureRepository
	cases    interfaces.ICaseRepository
	clients  interfaces.IClientRepository
	activity activityRecorder
	clock    clock.Clock
	log      zerolog.Logger
}

var _ IProcedureUseCase = (*ProcedureUseCase)(nil)

func NewProcedureUseCase(
	repo interfaces.IProcedureRepository,
	cases interfaces.ICaseRepository,
	clients interfaces.IClientRepository,
	activity interfaces.IActivityRepository,
	clk clock.Clock,
) *ProcedureUseCase {
	if clk == nil {
		clk = clock.WallClock
	}
	log := logger.WithComponent("procedure")
	return &ProcedureUseCase{
		repo:     repo,
		cases:    cases,
		clients:  clients,
		activity: activityRecorder{repo: activity, log: log},
		clock:    clk,
		log:      log,
	}
}

// CreateProcedure opens a procedure in consulta. When a case is given it must
// be active and belong to the same client.
func (u *ProcedureUseCase) CreateProcedure(ctx context.Context, in CreateProcedureInput) (entities.Procedure, error) {
	clientID := strings.TrimSpace(in.ClientID)
	caseID := strings.TrimSpace(in.CaseID)
	if clientID == "" {
		return entities.Procedure{}, ErrInvalidID
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entities.Procedure{}, ErrInvalidTitle
	}

	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return entities.Procedure{}, persistenceFailure(err)
	}
	if client.ID == "" || !client.IsActive() {
		return entities.Procedure{}, ErrClientNotFound
	}

	if caseID != "" {
		c, err := u.cases.GetByID(ctx, caseID)
		if err != nil {
			return entities.Procedure{}, persistenceFailure(err)
		}
		if c.ID == "" || !c.IsActive() {
			return entities.Procedure{}, ErrCaseNotFound
		}
		if c.ClientID != clientID {
			return entities.Procedure{}, ErrCaseClientMismatch
		}
	}

	now := u.clock.Now().UTC()
	p := entities.Procedure{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		CaseID:    caseID,
		Title:     title,
		Type:      strings.TrimSpace(in.Type),
		Status:    entities.ProcedureStatusConsulta,
		Progress:  0,
		DueDate:   in.DueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.log.Error().Err(err).Str("client_id", clientID).Str("case_id", caseID).Msg("create procedure failed")
		return entities.Procedure{}, persistenceFailure(err)
	}
	u.activity.record(ctx, entities.EntityKindProcedure, created.ID, "Trámite creado", now)
	return created, nil
}

func (u *ProcedureUseCase) GetByID(ctx context.Context, id string) (entities.Procedure, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Procedure{}, ErrInvalidID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Procedure{}, persistenceFailure(err)
	}
	if p.ID == "" || !p.IsActive() {
		return entities.Procedure{}, ErrProcedureNotFound
	}
	return p, nil
}

// ChangeStatus validates target against the procedure table and then writes
// it. Requesting the current status is a no-op.
func (u *ProcedureUseCase) ChangeStatus(ctx context.Context, id string, target entities.ProcedureStatus) (entities.Procedure, error) {
	if !target.Valid() {
		return entities.Procedure{}, ErrInvalidStatus
	}
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Procedure{}, err
	}
	kind := string(entities.EntityKindProcedure)

	if current.Status == target {
		metrics.StatusTransitionTotal.WithLabelValues(kind, metrics.ResultNoop).Inc()
		return current, nil
	}
	if err := lifecycle.ProcedureTransitions.Validate(current.Status, target); err != nil {
		metrics.StatusTransitionTotal.WithLabelValues(kind, metrics.ResultRejected).Inc()
		u.log.Info().Str("procedure_id", current.ID).Str("from", string(current.Status)).Str("to", string(target)).Msg("procedure transition rejected")
		return entities.Procedure{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, target)
	if err != nil {
		metrics.StatusTransitionTotal.WithLabelValues(kind, metrics.ResultFailed).Inc()
		u.log.Error().Err(err).Str("procedure_id", current.ID).Msg("procedure status write failed")
		return entities.Procedure{}, persistenceFailure(err)
	}
	if updated.ID == "" {
		metrics.StatusTransitionTotal.WithLabelValues(kind, metrics.ResultFailed).Inc()
		return entities.Procedure{}, ErrProcedureNotFound
	}

	metrics.StatusTransitionTotal.WithLabelValues(kind, metrics.ResultApplied).Inc()
	u.activity.record(ctx, entities.EntityKindProcedure, updated.ID,
		fmt.Sprintf("Estado del trámite: %s → %s", current.Status, target), u.clock.Now().UTC())
	u.log.Info().Str("procedure_id", updated.ID).Str("from", string(current.Status)).Str("to", string(target)).Msg("procedure status changed")
	return updated, nil
}

func (u *ProcedureUseCase) AllowedTransitions(ctx context.Context, id string) ([]entities.ProcedureStatus, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return lifecycle.ProcedureTransitions.AllowedNext(p.Status), nil
}

// AdjustProgress is the coarse +/- control: the result snaps to a multiple of
// five inside [0, 100].
func (u *ProcedureUseCase) AdjustProgress(ctx context.Context, id string, delta int) (entities.Procedure, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Procedure{}, err
	}
	return u.writeProgress(ctx, current, lifecycle.AdjustProgress(current.Progress, delta))
}

// SetProgress writes an exact value in [0, 100] without snapping.
func (u *ProcedureUseCase) SetProgress(ctx context.Context, id string, progress int) (entities.Procedure, error) {
	if err := lifecycle.ValidateProgress(progress); err != nil {
		return entities.Procedure{}, err
	}
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Procedure{}, err
	}
	return u.writeProgress(ctx, current, progress)
}

func (u *ProcedureUseCase) writeProgress(ctx context.Context, current entities.Procedure, progress int) (entities.Procedure, error) {
	if current.Progress == progress {
		return current, nil
	}
	updated, err := u.repo.UpdateProgress(ctx, current.ID, progress)
	if err != nil {
		return entities.Procedure{}, persistenceFailure(err)
	}
	if updated.ID == "" {
		return entities.Procedure{}, ErrProcedureNotFound
	}
	return updated, nil
}

// SetSemaphore sets the manual traffic light; nil clears it.
func (u *ProcedureUseCase) SetSemaphore(ctx context.Context, id string, semaphore *entities.Semaphore) (entities.Procedure, error) {
	if semaphore != nil && !semaphore.Valid() {
		return entities.Procedure{}, ErrInvalidSemaphore
	}
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Procedure{}, err
	}
	updated, err := u.repo.UpdateSemaphore(ctx, current.ID, semaphore)
	if err != nil {
		return entities.Procedure{}, persistenceFailure(err)
	}
	if updated.ID == "" {
		return entities.Procedure{}, ErrProcedureNotFound
	}
	return updated, nil
}
