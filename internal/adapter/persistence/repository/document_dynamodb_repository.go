package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/usecase/interfaces"
)

const (
	defaultProcedureDocumentsTableName = "procedure_documents"
	defaultClientDocumentsTableName    = "client_documents"

	attrProcedureID = "procedure_id"
)

type procedureDocumentItem struct {
	ID               string `dynamodbav:"id"`
	ProcedureID      string `dynamodbav:"procedure_id"`
	Name             string `dynamodbav:"name"`
	Status           string `dynamodbav:"status"`
	Mandatory        bool   `dynamodbav:"mandatory"`
	ClientDocumentID string `dynamodbav:"client_document_id,omitempty"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// ProcedureDocumentDynamoRepository persists procedure documents.
//
// Table requirements:
//   - PK: id (string)
//   - GSI procedure_id-index: procedure_id (string)
type ProcedureDocumentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProcedureDocumentRepository = (*ProcedureDocumentDynamoRepository)(nil)

func NewProcedureDocumentDynamoRepository(ddb DynamoAPI) *ProcedureDocumentDynamoRepository {
	return &ProcedureDocumentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROCEDURE_DOCUMENTS_TABLE", defaultProcedureDocumentsTableName),
	}
}

func (r *ProcedureDocumentDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProcedureDocument, error) {
	var it procedureDocumentItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.ProcedureDocument{}, err
	}
	return fromProcedureDocumentItem(it), nil
}

func (r *ProcedureDocumentDynamoRepository) ListByProcedureID(ctx context.Context, procedureID string) ([]entities.ProcedureDocument, error) {
	items, err := queryIndex(ctx, r.ddb, r.tableName, attrProcedureID, procedureID, false)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ProcedureDocument, 0, len(items))
	for _, av := range items {
		var it procedureDocumentItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromProcedureDocumentItem(it))
	}
	return out, nil
}

func (r *ProcedureDocumentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ProcedureDocumentStatus) (entities.ProcedureDocument, error) {
	var it procedureDocumentItem
	upd := expression.Set(expression.Name(attrStatus), expression.Value(string(status)))
	found, err := update(ctx, r.ddb, r.tableName, id, upd, nil, &it)
	if err != nil || !found {
		return entities.ProcedureDocument{}, err
	}
	return fromProcedureDocumentItem(it), nil
}

func (r *ProcedureDocumentDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	return deleteItem(ctx, r.ddb, r.tableName, id)
}

func fromProcedureDocumentItem(it procedureDocumentItem) entities.ProcedureDocument {
	return entities.ProcedureDocument{
		ID:               it.ID,
		ProcedureID:      it.ProcedureID,
		Name:             it.Name,
		Status:           entities.ProcedureDocumentStatus(it.Status),
		Mandatory:        it.Mandatory,
		ClientDocumentID: it.ClientDocumentID,
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}

type clientDocumentItem struct {
	ID        string `dynamodbav:"id"`
	ClientID  string `dynamodbav:"client_id"`
	Name      string `dynamodbav:"name"`
	Status    string `dynamodbav:"status"`
	ExpiresAt string `dynamodbav:"expires_at,omitempty"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ClientDocumentDynamoRepository persists client documents.
//
// Table requirements:
//   - PK: id (string)
//   - GSI client_id-index: client_id (string)
type ClientDocumentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IClientDocumentRepository = (*ClientDocumentDynamoRepository)(nil)

func NewClientDocumentDynamoRepository(ddb DynamoAPI) *ClientDocumentDynamoRepository {
	return &ClientDocumentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENT_DOCUMENTS_TABLE", defaultClientDocumentsTableName),
	}
}

func (r *ClientDocumentDynamoRepository) GetByID(ctx context.Context, id string) (entities.ClientDocument, error) {
	var it clientDocumentItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.ClientDocument{}, err
	}
	return fromClientDocumentItem(it), nil
}

func (r *ClientDocumentDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.ClientDocument, error) {
	items, err := queryIndex(ctx, r.ddb, r.tableName, attrClientID, clientID, false)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ClientDocument, 0, len(items))
	for _, av := range items {
		var it clientDocumentItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromClientDocumentItem(it))
	}
	return out, nil
}

func (r *ClientDocumentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ClientDocumentStatus) (entities.ClientDocument, error) {
	var it clientDocumentItem
	upd := expression.Set(expression.Name(attrStatus), expression.Value(string(status)))
	found, err := update(ctx, r.ddb, r.tableName, id, upd, nil, &it)
	if err != nil || !found {
		return entities.ClientDocument{}, err
	}
	return fromClientDocumentItem(it), nil
}

func fromClientDocumentItem(it clientDocumentItem) entities.ClientDocument {
	return entities.ClientDocument{
		ID:        it.ID,
		ClientID:  it.ClientID,
		Name:      it.Name,
		Status:    entities.ClientDocumentStatus(it.Status),
		ExpiresAt: parseTimePtr(it.ExpiresAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
