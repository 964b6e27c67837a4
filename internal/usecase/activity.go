package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/usecase/interfaces"
)

// activityRecorder appends a note after a committed write. A failing note is
// logged and swallowed: the write it describes already happened.
type activityRecorder struct {
	repo interfaces.IActivityRepository
	log  zerolog.Logger
}

func (r activityRecorder) record(ctx context.Context, kind entities.EntityKind, id, note string, at time.Time) {
	if r.repo == nil {
		return
	}
	err := r.repo.Append(ctx, entities.ActivityNote{
		ID:         uuid.NewString(),
		EntityKind: kind,
		EntityID:   id,
		Note:       note,
		CreatedAt:  at,
	})
	if err != nil {
		r.log.Warn().Err(err).Str("kind", string(kind)).Str("entity_id", id).Msg("activity note not stored")
	}
}
