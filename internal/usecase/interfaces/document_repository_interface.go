package interfaces

import (
	"context"

	"gestion_tramites/internal/domain/entities"
)

// IProcedureDocumentRepository abstracts persistence for procedure documents.
// Documents have no soft-delete; Delete removes the row.
type IProcedureDocumentRepository interface {
	GetByID(ctx context.Context, id string) (entities.ProcedureDocument, error)
	ListByProcedureID(ctx context.Context, procedureID string) ([]entities.ProcedureDocument, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProcedureDocumentStatus) (entities.ProcedureDocument, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// IClientDocumentRepository abstracts persistence for client documents.
type IClientDocumentRepository interface {
	GetByID(ctx context.Context, id string) (entities.ClientDocument, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.ClientDocument, error)
	UpdateStatus(ctx context.Context, id string, status entities.ClientDocumentStatus) (entities.ClientDocument, error)
}
