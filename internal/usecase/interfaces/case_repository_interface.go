package interfaces

import (
	"context"

	"gestion_tramites/internal/domain/entities"
)

// ICaseRepository abstracts persistence for Case.
//
// Reads by id return the row whether or not it is soft-deleted; list reads
// return active rows only. A zero-value Case means "not found".
type ICaseRepository interface {
	Create(ctx context.Context, c entities.Case) (entities.Case, error)
	GetByID(ctx context.Context, id string) (entities.Case, error)
	ListActiveByClientID(ctx context.Context, clientID string) ([]entities.Case, error)
	UpdateStatus(ctx context.Context, id string, status entities.CaseStatus) (entities.Case, error)
	UpdatePriority(ctx context.Context, id string, priority entities.CasePriority) (entities.Case, error)
}
