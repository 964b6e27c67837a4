package interfaces

import (
	"context"

	"gestion_tramites/internal/domain/entities"
)

// IActivityRepository appends free-text activity notes.
type IActivityRepository interface {
	Append(ctx context.Context, note entities.ActivityNote) error
}
