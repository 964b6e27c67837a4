package interfaces

import (
	"context"
	"errors"

	"gestion_tramites/internal/domain/entities"
)

// ErrQuoteNotFound is returned by gateways when the remote quote does not exist.
var ErrQuoteNotFound = errors.New("quote not found")

// IQuoteGateway is the remote boundary of the quote subsystem. Its deletion
// workflow is owned remotely; this engine only lists, restores and purges.
type IQuoteGateway interface {
	ListDeleted(ctx context.Context) ([]entities.DeletedRecord, error)
	Restore(ctx context.Context, id string) error
	HardDelete(ctx context.Context, id string) error
}
