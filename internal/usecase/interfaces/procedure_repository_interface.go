package interfaces

import (
	"context"

	"gestion_tramites/internal/domain/entities"
)

// IProcedureRepository abstracts persistence for Procedure.
//
// Same conventions as ICaseRepository: zero value means "not found" and the
// list reads exclude soft-deleted rows.
type IProcedureRepository interface {
	Create(ctx context.Context, p entities.Procedure) (entities.Procedure, error)
	GetByID(ctx context.Context, id string) (entities.Procedure, error)
	ListActiveByCaseID(ctx context.Context, caseID string) ([]entities.Procedure, error)
	ListActiveByClientID(ctx context.Context, clientID string) ([]entities.Procedure, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProcedureStatus) (entities.Procedure, error)
	UpdateProgress(ctx context.Context, id string, progress int) (entities.Procedure, error)
	UpdateSemaphore(ctx context.Context, id string, semaphore *entities.Semaphore) (entities.Procedure, error)
}
