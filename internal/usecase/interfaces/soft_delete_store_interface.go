package interfaces

import (
	"context"
	"time"

	"gestion_tramites/internal/domain/entities"
)

// ISoftDeleteStore is the kind-generic persistence port used by the cascade.
//
// Every write touches a single row:
//   - MarkDeleted sets deleted_at only when the row is active and reports
//     whether it changed anything; an already-deleted row keeps its timestamp.
//   - ClearDeleted removes deleted_at and reports whether it changed anything.
//   - Purge removes the row and reports whether it existed.
//
// ListChildIDs returns every row of kind whose foreignKey equals parentID,
// active or not. Owners returns the row's non-empty foreign keys keyed by
// foreign key name. IsDeleted is false for a missing row.
type ISoftDeleteStore interface {
	Exists(ctx context.Context, kind entities.EntityKind, id string) (bool, error)
	MarkDeleted(ctx context.Context, kind entities.EntityKind, id string, at time.Time) (bool, error)
	ClearDeleted(ctx context.Context, kind entities.EntityKind, id string) (bool, error)
	ListChildIDs(ctx context.Context, kind entities.EntityKind, foreignKey, parentID string) ([]string, error)
	Owners(ctx context.Context, kind entities.EntityKind, id string) (map[string]string, error)
	IsDeleted(ctx context.Context, kind entities.EntityKind, id string) (bool, error)
	ListDeleted(ctx context.Context, kind entities.EntityKind) ([]entities.DeletedRecord, error)
	Purge(ctx context.Context, kind entities.EntityKind, id string) (bool, error)
}
