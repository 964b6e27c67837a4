package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/usecase/interfaces"
)

const (
	defaultProceduresTableName = "procedures"

	attrProgress  = "progress"
	attrSemaphore = "semaphore"
)

type procedureItem struct {
	ID        string `dynamodbav:"id"`
	ClientID  string `dynamodbav:"client_id"`
	CaseID    string `dynamodbav:"case_id,omitempty"`
	Title     string `dynamodbav:"title"`
	Type      string `dynamodbav:"type,omitempty"`
	Status    string `dynamodbav:"status"`
	Semaphore string `dynamodbav:"semaphore,omitempty"`
	Progress  int    `dynamodbav:"progress"`
	DueDate   string `dynamodbav:"due_date,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	DeletedAt string `dynamodbav:"deleted_at,omitempty"`
}

// ProcedureDynamoRepository persists Procedure entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI client_id-index: client_id (string)
//   - GSI case_id-index: case_id (string), sparse: independent procedures
//     have no case_id attribute
type ProcedureDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProcedureRepository = (*ProcedureDynamoRepository)(nil)

func NewProcedureDynamoRepository(ddb DynamoAPI) *ProcedureDynamoRepository {
	return &ProcedureDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROCEDURES_TABLE", defaultProceduresTableName),
	}
}

func (r *ProcedureDynamoRepository) Create(ctx context.Context, p entities.Procedure) (entities.Procedure, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toProcedureItem(p)); err != nil {
		return entities.Procedure{}, err
	}
	return p, nil
}

func (r *ProcedureDynamoRepository) GetByID(ctx context.Context, id string) (entities.Procedure, error) {
	var it procedureItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Procedure{}, err
	}
	return fromProcedureItem(it), nil
}

func (r *ProcedureDynamoRepository) ListActiveByCaseID(ctx context.Context, caseID string) ([]entities.Procedure, error) {
	return r.list(ctx, attrCaseID, caseID)
}

func (r *ProcedureDynamoRepository) ListActiveByClientID(ctx context.Context, clientID string) ([]entities.Procedure, error) {
	return r.list(ctx, attrClientID, clientID)
}

func (r *ProcedureDynamoRepository) list(ctx context.Context, attr, value string) ([]entities.Procedure, error) {
	items, err := queryIndex(ctx, r.ddb, r.tableName, attr, value, true)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Procedure, 0, len(items))
	for _, av := range items {
		var it procedureItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromProcedureItem(it))
	}
	return out, nil
}

func (r *ProcedureDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ProcedureStatus) (entities.Procedure, error) {
	return r.update(ctx, id, expression.Set(expression.Name(attrStatus), expression.Value(string(status))))
}

func (r *ProcedureDynamoRepository) UpdateProgress(ctx context.Context, id string, progress int) (entities.Procedure, error) {
	return r.update(ctx, id, expression.Set(expression.Name(attrProgress), expression.Value(progress)))
}

func (r *ProcedureDynamoRepository) UpdateSemaphore(ctx context.Context, id string, semaphore *entities.Semaphore) (entities.Procedure, error) {
	if semaphore == nil {
		return r.update(ctx, id, expression.Remove(expression.Name(attrSemaphore)))
	}
	return r.update(ctx, id, expression.Set(expression.Name(attrSemaphore), expression.Value(string(*semaphore))))
}

func (r *ProcedureDynamoRepository) update(ctx context.Context, id string, upd expression.UpdateBuilder) (entities.Procedure, error) {
	var it procedureItem
	found, err := update(ctx, r.ddb, r.tableName, id, upd, nil, &it)
	if err != nil || !found {
		return entities.Procedure{}, err
	}
	return fromProcedureItem(it), nil
}

func toProcedureItem(p entities.Procedure) procedureItem {
	it := procedureItem{
		ID:        p.ID,
		ClientID:  p.ClientID,
		CaseID:    p.CaseID,
		Title:     p.Title,
		Type:      p.Type,
		Status:    string(p.Status),
		Progress:  p.Progress,
		DueDate:   formatTimePtr(p.DueDate),
		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
		DeletedAt: formatTimePtr(p.DeletedAt),
	}
	if p.Semaphore != nil {
		it.Semaphore = string(*p.Semaphore)
	}
	return it
}

func fromProcedureItem(it procedureItem) entities.Procedure {
	p := entities.Procedure{
		ID:        it.ID,
		ClientID:  it.ClientID,
		CaseID:    it.CaseID,
		Title:     it.Title,
		Type:      it.Type,
		Status:    entities.ProcedureStatus(it.Status),
		Progress:  it.Progress,
		DueDate:   parseTimePtr(it.DueDate),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
		DeletedAt: parseTimePtr(it.DeletedAt),
	}
	if it.Semaphore != "" {
		s := entities.Semaphore(it.Semaphore)
		p.Semaphore = &s
	}
	return p
}
