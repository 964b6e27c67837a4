package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

const (
	attrID        = "id"
	attrClientID  = "client_id"
	attrCaseID    = "case_id"
	attrStatus    = "status"
	attrUpdatedAt = "updated_at"
	attrDeletedAt = "deleted_at"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func indexName(attr string) string { return attr + "-index" }

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrID: &types.AttributeValueMemberS{Value: id},
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

func nowString() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// getItem loads one row into out and reports whether it exists.
func getItem(ctx context.Context, ddb DynamoAPI, table, id string, out any) (bool, error) {
	res, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, err
	}
	return true, nil
}

// putNew writes item, failing if a row with the same id exists.
func putNew(ctx context.Context, ddb DynamoAPI, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	expr, err := expression.NewBuilder().
		WithCondition(expression.AttributeNotExists(expression.Name(attrID))).
		Build()
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(table),
		Item:                      av,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	return err
}

// update applies upd to an existing row, stamping updated_at, and decodes the
// new image into out. A missing row, or one failing extra, reports false.
func update(
	ctx context.Context,
	ddb DynamoAPI,
	table, id string,
	upd expression.UpdateBuilder,
	extra *expression.ConditionBuilder,
	out any,
) (bool, error) {
	cond := expression.AttributeExists(expression.Name(attrID))
	if extra != nil {
		cond = cond.And(*extra)
	}
	upd = upd.Set(expression.Name(attrUpdatedAt), expression.Value(nowString()))
	expr, err := expression.NewBuilder().WithCondition(cond).WithUpdate(upd).Build()
	if err != nil {
		return false, err
	}

	res, err := ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       idKey(id),
		ConditionExpression:       expr.Condition(),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	if len(res.Attributes) == 0 {
		return false, nil
	}
	if out == nil {
		return true, nil
	}
	if err := attributevalue.UnmarshalMap(res.Attributes, out); err != nil {
		return false, err
	}
	return true, nil
}

// deleteItem removes a row and reports whether it existed.
func deleteItem(ctx context.Context, ddb DynamoAPI, table, id string) (bool, error) {
	res, err := ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(table),
		Key:          idKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(res.Attributes) > 0, nil
}

// queryIndex reads every page of a GSI query on attr = value. When activeOnly
// is set, soft-deleted rows are filtered out server side.
func queryIndex(
	ctx context.Context,
	ddb DynamoAPI,
	table, attr, value string,
	activeOnly bool,
	projection ...string,
) ([]map[string]types.AttributeValue, error) {
	b := expression.NewBuilder().
		WithKeyCondition(expression.Key(attr).Equal(expression.Value(value)))
	if activeOnly {
		b = b.WithFilter(expression.AttributeNotExists(expression.Name(attrDeletedAt)))
	}
	if len(projection) > 0 {
		b = b.WithProjection(projectionOf(projection))
	}
	expr, err := b.Build()
	if err != nil {
		return nil, err
	}

	p := dynamodb.NewQueryPaginator(ddb, &dynamodb.QueryInput{
		TableName:                 aws.String(table),
		IndexName:                 aws.String(indexName(attr)),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ProjectionExpression:      expr.Projection(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	var items []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		items = append(items, page.Items...)
	}
	return items, nil
}

func projectionOf(attrs []string) expression.ProjectionBuilder {
	names := make([]expression.NameBuilder, 0, len(attrs))
	for _, a := range attrs {
		names = append(names, expression.Name(a))
	}
	return expression.NamesList(names[0], names[1:]...)
}
