package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"gestion_tramites/internal/domain/entities"
	"gestion_tramites/internal/domain/lifecycle"
	"gestion_tramites/internal/usecase/interfaces"
)

// kindTable describes where a soft-deletable kind lives and which attributes
// feed the recycle bin label and detail.
type kindTable struct {
	name   string
	label  string
	detail string
}

type deletedItem struct {
	ID        string `dynamodbav:"id"`
	Label     string `dynamodbav:"label"`
	Detail    string `dynamodbav:"detail"`
	DeletedAt string `dynamodbav:"deleted_at"`
}

// SoftDeleteDynamoStore implements the kind-generic soft-delete port over the
// client, case and procedure tables. Each call is a single-row write; the
// cascade lives in the use case.
type SoftDeleteDynamoStore struct {
	ddb    DynamoAPI
	tables map[entities.EntityKind]kindTable
}

var _ interfaces.ISoftDeleteStore = (*SoftDeleteDynamoStore)(nil)

func NewSoftDeleteDynamoStore(ddb DynamoAPI) *SoftDeleteDynamoStore {
	return &SoftDeleteDynamoStore{
		ddb: ddb,
		tables: map[entities.EntityKind]kindTable{
			entities.EntityKindClient: {
				name:   getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
				label:  "name",
				detail: "tax_id",
			},
			entities.EntityKindCase: {
				name:   getenvDefault("CASES_TABLE", defaultCasesTableName),
				label:  "title",
				detail: attrStatus,
			},
			entities.EntityKindProcedure: {
				name:   getenvDefault("PROCEDURES_TABLE", defaultProceduresTableName),
				label:  "title",
				detail: "type",
			},
		},
	}
}

func (s *SoftDeleteDynamoStore) table(kind entities.EntityKind) (kindTable, error) {
	t, ok := s.tables[kind]
	if !ok {
		return kindTable{}, fmt.Errorf("soft delete store: unsupported kind %q", kind)
	}
	return t, nil
}

func (s *SoftDeleteDynamoStore) Exists(ctx context.Context, kind entities.EntityKind, id string) (bool, error) {
	item, err := s.getProjected(ctx, kind, id)
	if err != nil {
		return false, err
	}
	return len(item) > 0, nil
}

// MarkDeleted only writes when deleted_at is absent, so the first deletion
// timestamp survives repeated cascades.
func (s *SoftDeleteDynamoStore) MarkDeleted(ctx context.Context, kind entities.EntityKind, id string, at time.Time) (bool, error) {
	t, err := s.table(kind)
	if err != nil {
		return false, err
	}
	active := expression.AttributeNotExists(expression.Name(attrDeletedAt))
	upd := expression.Set(expression.Name(attrDeletedAt), expression.Value(formatTime(at)))
	return update(ctx, s.ddb, t.name, id, upd, &active, nil)
}

func (s *SoftDeleteDynamoStore) ClearDeleted(ctx context.Context, kind entities.EntityKind, id string) (bool, error) {
	t, err := s.table(kind)
	if err != nil {
		return false, err
	}
	deleted := expression.AttributeExists(expression.Name(attrDeletedAt))
	upd := expression.Remove(expression.Name(attrDeletedAt))
	return update(ctx, s.ddb, t.name, id, upd, &deleted, nil)
}

func (s *SoftDeleteDynamoStore) ListChildIDs(ctx context.Context, kind entities.EntityKind, foreignKey, parentID string) ([]string, error) {
	t, err := s.table(kind)
	if err != nil {
		return nil, err
	}
	items, err := queryIndex(ctx, s.ddb, t.name, foreignKey, parentID, false, attrID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(items))
	for _, av := range items {
		if v, ok := av[attrID].(*types.AttributeValueMemberS); ok {
			ids = append(ids, v.Value)
		}
	}
	return ids, nil
}

// Owners reads the row's foreign keys. Procedures without a case carry no
// case_id attribute.
func (s *SoftDeleteDynamoStore) Owners(ctx context.Context, kind entities.EntityKind, id string) (map[string]string, error) {
	out := map[string]string{}
	edges := lifecycle.OwnersOf(kind)
	if len(edges) == 0 {
		if _, err := s.table(kind); err != nil {
			return nil, err
		}
		return out, nil
	}
	names := make([]string, 0, len(edges))
	for _, e := range edges {
		names = append(names, e.ForeignKey)
	}
	item, err := s.getProjected(ctx, kind, id, names...)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		if v, ok := item[name].(*types.AttributeValueMemberS); ok && v.Value != "" {
			out[name] = v.Value
		}
	}
	return out, nil
}

func (s *SoftDeleteDynamoStore) IsDeleted(ctx context.Context, kind entities.EntityKind, id string) (bool, error) {
	item, err := s.getProjected(ctx, kind, id, attrDeletedAt)
	if err != nil {
		return false, err
	}
	_, ok := item[attrDeletedAt]
	return ok, nil
}

func (s *SoftDeleteDynamoStore) getProjected(ctx context.Context, kind entities.EntityKind, id string, attrs ...string) (map[string]types.AttributeValue, error) {
	t, err := s.table(kind)
	if err != nil {
		return nil, err
	}
	names := expression.NamesList(expression.Name(attrID))
	for _, a := range attrs {
		names = names.AddNames(expression.Name(a))
	}
	expr, err := expression.NewBuilder().WithProjection(names).Build()
	if err != nil {
		return nil, err
	}
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:                aws.String(t.name),
		Key:                      idKey(id),
		ProjectionExpression:     expr.Projection(),
		ExpressionAttributeNames: expr.Names(),
		ConsistentRead:           aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return out.Item, nil
}

// ListDeleted scans the kind's table for rows carrying deleted_at.
func (s *SoftDeleteDynamoStore) ListDeleted(ctx context.Context, kind entities.EntityKind) ([]entities.DeletedRecord, error) {
	t, err := s.table(kind)
	if err != nil {
		return nil, err
	}
	expr, err := expression.NewBuilder().
		WithFilter(expression.AttributeExists(expression.Name(attrDeletedAt))).
		WithProjection(expression.NamesList(
			expression.Name(attrID),
			expression.Name(t.label),
			expression.Name(t.detail),
			expression.Name(attrDeletedAt),
		)).
		Build()
	if err != nil {
		return nil, err
	}

	p := dynamodb.NewScanPaginator(s.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(t.name),
		FilterExpression:          expr.Filter(),
		ProjectionExpression:      expr.Projection(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	out := []entities.DeletedRecord{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, av := range page.Items {
			rec, err := toDeletedRecord(kind, t, av)
			if err != nil {
				return nil, err
			}
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *SoftDeleteDynamoStore) Purge(ctx context.Context, kind entities.EntityKind, id string) (bool, error) {
	t, err := s.table(kind)
	if err != nil {
		return false, err
	}
	return deleteItem(ctx, s.ddb, t.name, id)
}

func toDeletedRecord(kind entities.EntityKind, t kindTable, av map[string]types.AttributeValue) (entities.DeletedRecord, error) {
	renamed := make(map[string]types.AttributeValue, 4)
	for from, to := range map[string]string{attrID: "id", attrDeletedAt: "deleted_at", t.label: "label", t.detail: "detail"} {
		if v, ok := av[from]; ok && v != nil {
			renamed[to] = v
		}
	}
	var it deletedItem
	if err := attributevalue.UnmarshalMap(renamed, &it); err != nil {
		return entities.DeletedRecord{}, err
	}
	return entities.DeletedRecord{
		Kind:      kind,
		ID:        it.ID,
		Label:     it.Label,
		Detail:    it.Detail,
		DeletedAt: parseTime(it.DeletedAt),
	}, nil
}
