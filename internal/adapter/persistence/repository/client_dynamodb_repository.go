package repository

import (
	"context"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/usecase/interfaces"
)

const defaultClientsTableName = "clients"

type clientItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	TaxID     string `dynamodbav:"tax_id"`
	Email     string `dynamodbav:"email,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	DeletedAt string `dynamodbav:"deleted_at,omitempty"`
}

// ClientDynamoRepository reads Client rows.
//
// Table requirements:
//   - PK: id (string)
type ClientDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb DynamoAPI) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	var it clientItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{
		ID:        it.ID,
		Name:      it.Name,
		TaxID:     it.TaxID,
		Email:     it.Email,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
		DeletedAt: parseTimePtr(it.DeletedAt),
	}
}
