package interfaces

import (
	"context"

	"gestion_tramites/internal/domain/entities"
)

// IClientRepository abstracts read access to Client. Clients are created and
// edited by the CRUD screens; the lifecycle engine only reads them.
type IClientRepository interface {
	GetByID(ctx context.Context, id string) (entities.Client, error)
}
