package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/juju/clock"
	"github.com/rs/zerolog"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/domain/lifecycle"
	"gestion_tramites/internal/infrastructure/logger"
	"gestion_tramites/internal/infrastructure/metrics"
	"gestion_tramites/internal/usecase/interfaces"
)

// CreateCaseInput carries the fields accepted when opening a case.
type CreateCaseInput struct {
	ClientID string
	Title    string
	Priority entities.CasePriority
}

// ICaseUseCase exposes case lifecycle operations.
type ICaseUseCase interface {
	CreateCase(ctx context.Context, in CreateCaseInput) (entities.Case, error)
	GetByID(ctx context.Context, id string) (entities.Case, error)
	ChangeStatus(ctx context.Context, id string, target entities.CaseStatus) (entities.Case, error)
	AllowedTransitions(ctx context.Context, id string) ([]entities.CaseStatus, error)
	UpdatePriority(ctx context.Context, id string, priority entities.CasePriority) (entities.Case, error)
}

type CaseUseCase struct {
	repo     interfaces.ICaseRepository
	clients  interfaces.IClientRepository
	activity activityRecorder
	clock    clock.Clock
	log      zerolog.Logger
}

var _ ICaseUseCase = (*CaseUseCase)(nil)

func NewCaseUseCase(repo interfaces.ICaseRepository, clients interfaces.IClientRepository, activity interfaces.IActivityRepository, clk clock.Clock) *CaseUseCase {
	if clk == nil {
		clk = clock.WallClock
	}
	log := logger.WithComponent("case")
	return &CaseUseCase{
		repo:     repo,
		clients:  clients,
		activity: activityRecorder{repo: activity, log: log},
		clock:    clk,
		log:      log,
	}
}

func (u *CaseUseCase) CreateCase(ctx context.Context, in CreateCaseInput) (entities.Case, error) {
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" {
		return entities.Case{}, ErrInvalidID
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entities.Case{}, ErrInvalidTitle
	}
	priority := in.Priority
	if priority == "" {
		priority = entities.CasePriorityNormal
	}
	if !priority.Valid() {
		return entities.Case{}, ErrInvalidPriority
	}

	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return entities.Case{}, persistenceFailure(err)
	}
	if client.ID == "" || !client.IsActive() {
		return entities.Case{}, ErrClientNotFound
	}

	now := u.clock.Now().UTC()
	c := entities.Case{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		Title:     title,
		Status:    entities.CaseStatusRelevamiento,
		Priority:  priority,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		u.log.Error().Err(err).Str("client_id", clientID).Msg("create case failed")
		return entities.Case{}, persistenceFailure(err)
	}
	u.activity.record(ctx, entities.EntityKindCase, created.ID, "Gestión creada", now)
	return created, nil
}

func (u *CaseUseCase) GetByID(ctx context.Context, id string) (entities.Case, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Case{}, ErrInvalidID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Case{}, persistenceFailure(err)
	}
	if c.ID == "" || !c.IsActive() {
		return entities.Case{}, ErrCaseNotFound
	}
	return c, nil
}

// ChangeStatus validates target against the case table and then writes it.
// Requesting the current status is a no-op and never reaches the guard.
func (u *CaseUseCase) ChangeStatus(ctx context.Context, id string, target entities.CaseStatus) (entities.Case, error) {
	if !target.Valid() {
		return entities.Case{}, ErrInvalidStatus
	}
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Case{}, err
	}
	kind := string(entities.EntityKindCase)

	if current.Status == target {
		metrics.StatusTransitionTotal.WithLabelValues(kind, metrics.ResultNoop).Inc()
		return current, nil
	}
	if err := lifecycle.CaseTransitions.Validate(current.Status, target); err != nil {
		metrics.StatusTransitionTotal.WithLabelValues(kind, metrics.ResultRejected).Inc()
		u.log.Info().Str("case_id", current.ID).Str("from", string(current.Status)).Str("to", string(target)).Msg("case transition rejected")
		return entities.Case{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, target)
	if err != nil {
		metrics.StatusTransitionTotal.WithLabelValues(kind, metrics.ResultFailed).Inc()
		u.log.Error().Err(err).Str("case_id", current.ID).Msg("case status write failed")
		return entities.Case{}, persistenceFailure(err)
	}
	if updated.ID == "" {
		metrics.StatusTransitionTotal.WithLabelValues(kind, metrics.ResultFailed).Inc()
		return entities.Case{}, ErrCaseNotFound
	}

	metrics.StatusTransitionTotal.WithLabelValues(kind, metrics.ResultApplied).Inc()
	u.activity.record(ctx, entities.EntityKindCase, updated.ID,
		fmt.Sprintf("Estado de la gestión: %s → %s", current.Status, target), u.clock.Now().UTC())
	u.log.Info().Str("case_id", updated.ID).Str("from", string(current.Status)).Str("to", string(target)).Msg("case status changed")
	return updated, nil
}

func (u *CaseUseCase) AllowedTransitions(ctx context.Context, id string) ([]entities.CaseStatus, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return lifecycle.CaseTransitions.AllowedNext(c.Status), nil
}

func (u *CaseUseCase) UpdatePriority(ctx context.Context, id string, priority entities.CasePriority) (entities.Case, error) {
	if !priority.Valid() {
		return entities.Case{}, ErrInvalidPriority
	}
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Case{}, err
	}
	if current.Priority == priority {
		return current, nil
	}
	updated, err := u.repo.UpdatePriority(ctx, current.ID, priority)
	if err != nil {
		return entities.Case{}, persistenceFailure(err)
	}
	if updated.ID == "" {
		return entities.Case{}, ErrCaseNotFound
	}
	u.activity.record(ctx, entities.EntityKindCase, updated.ID,
		fmt.Sprintf("Prioridad: %s → %s", current.Priority, priority), u.clock.Now().UTC())
	return updated, nil
}
