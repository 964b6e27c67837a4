package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/usecase/interfaces"
)

const defaultCasesTableName = "cases"

type caseItem struct {
	ID        string `dynamodbav:"id"`
	ClientID  string `dynamodbav:"client_id"`
	Title     string `dynamodbav:"title"`
	Status    string `dynamodbav:"status"`
	Priority  string `dynamodbav:"priority"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	DeletedAt string `dynamodbav:"deleted_at,omitempty"`
}

// CaseDynamoRepository persists Case entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI client_id-index: client_id (string)
//
// deleted_at is absent on active rows; list reads filter on its absence.
type CaseDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICaseRepository = (*CaseDynamoRepository)(nil)

func NewCaseDynamoRepository(ddb DynamoAPI) *CaseDynamoRepository {
	return &CaseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CASES_TABLE", defaultCasesTableName),
	}
}

func (r *CaseDynamoRepository) Create(ctx context.Context, c entities.Case) (entities.Case, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toCaseItem(c)); err != nil {
		return entities.Case{}, err
	}
	return c, nil
}

func (r *CaseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Case, error) {
	var it caseItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Case{}, err
	}
	return fromCaseItem(it), nil
}

func (r *CaseDynamoRepository) ListActiveByClientID(ctx context.Context, clientID string) ([]entities.Case, error) {
	items, err := queryIndex(ctx, r.ddb, r.tableName, attrClientID, clientID, true)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Case, 0, len(items))
	for _, av := range items {
		var it caseItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromCaseItem(it))
	}
	return out, nil
}

func (r *CaseDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.CaseStatus) (entities.Case, error) {
	return r.update(ctx, id, expression.Set(expression.Name(attrStatus), expression.Value(string(status))))
}

func (r *CaseDynamoRepository) UpdatePriority(ctx context.Context, id string, priority entities.CasePriority) (entities.Case, error) {
	return r.update(ctx, id, expression.Set(expression.Name("priority"), expression.Value(string(priority))))
}

func (r *CaseDynamoRepository) update(ctx context.Context, id string, upd expression.UpdateBuilder) (entities.Case, error) {
	var it caseItem
	found, err := update(ctx, r.ddb, r.tableName, id, upd, nil, &it)
	if err != nil || !found {
		return entities.Case{}, err
	}
	return fromCaseItem(it), nil
}

func toCaseItem(c entities.Case) caseItem {
	return caseItem{
		ID:        c.ID,
		ClientID:  c.ClientID,
		Title:     c.Title,
		Status:    string(c.Status),
		Priority:  string(c.Priority),
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
		DeletedAt: formatTimePtr(c.DeletedAt),
	}
}

func fromCaseItem(it caseItem) entities.Case {
	return entities.Case{
		ID:        it.ID,
		ClientID:  it.ClientID,
		Title:     it.Title,
		Status:    entities.CaseStatus(it.Status),
		Priority:  entities.CasePriority(it.Priority),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
		DeletedAt: parseTimePtr(it.DeletedAt),
	}
}
