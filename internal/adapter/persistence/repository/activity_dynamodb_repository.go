package repository

import (
	"context"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/usecase/interfaces"
)

const defaultActivityTableName = "activity_notes"

type activityItem struct {
	ID         string `dynamodbav:"id"`
	EntityKind string `dynamodbav:"entity_kind"`
	EntityID   string `dynamodbav:"entity_id"`
	Note       string `dynamodbav:"note"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// ActivityDynamoRepository appends activity notes.
//
// Table requirements:
//   - PK: id (string)
type ActivityDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IActivityRepository = (*ActivityDynamoRepository)(nil)

func NewActivityDynamoRepository(ddb DynamoAPI) *ActivityDynamoRepository {
	return &ActivityDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACTIVITY_TABLE", defaultActivityTableName),
	}
}

func (r *ActivityDynamoRepository) Append(ctx context.Context, n entities.ActivityNote) error {
	return putNew(ctx, r.ddb, r.tableName, activityItem{
		ID:         n.ID,
		EntityKind: string(n.EntityKind),
		EntityID:   n.EntityID,
		Note:       n.Note,
		CreatedAt:  formatTime(n.CreatedAt),
	})
}
