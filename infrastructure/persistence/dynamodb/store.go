// Package dynamodb implements the application's persistence ports on
// top of a single DynamoDB table with inverted secondary indexes.
package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"

	"hai-backend/application/ports"
	appErrors "hai-backend/pkg/errors"
)

// API is the slice of the DynamoDB client the store uses.
type API interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// indexKeys maps an index name to its partition and sort attributes.
type indexKeys struct {
	partition string
	sort      string
}

// Store implements ports.Store against one DynamoDB table.
type Store struct {
	client    API
	tableName string
	indexes   map[string]indexKeys
	logger    *zap.Logger
}

// NewStore creates a Store for the given table. Each entry of indexNames
// must follow the `<name>PK`/`<name>SK` attribute convention of the
// table's global secondary indexes.
func NewStore(client API, tableName string, indexNames []string, logger *zap.Logger) *Store {
	indexes := map[string]indexKeys{
		// Empty name queries the base table.
		"": {partition: "PK", sort: "SK"},
	}
	for _, name := range indexNames {
		indexes[name] = indexKeys{partition: name + "PK", sort: name + "SK"}
	}
	return &Store{
		client:    client,
		tableName: tableName,
		indexes:   indexes,
		logger:    logger,
	}
}

// Get returns the item with the given key, or (nil, nil) when absent.
func (s *Store) Get(ctx context.Context, pk, sk string) (ports.Item, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       keyAttributes(pk, sk),
	})
	if err != nil {
		return nil, s.classify("get", err)
	}
	if out.Item == nil {
		return nil, nil
	}
	return out.Item, nil
}

// Put writes a full item.
func (s *Store) Put(ctx context.Context, input ports.PutInput) error {
	req := &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      input.Item,
	}
	if input.IfNotExists {
		req.ConditionExpression = aws.String("attribute_not_exists(PK)")
	}
	if _, err := s.client.PutItem(ctx, req); err != nil {
		return s.classify("put", err)
	}
	return nil
}

// Update applies the assignments to an existing item and returns the
// item as stored after the update. Attribute names go through generated
// placeholders so reserved words never reach the expression verbatim.
func (s *Store) Update(ctx context.Context, input ports.UpdateInput) (ports.Item, error) {
	if len(input.Assignments) == 0 {
		return nil, appErrors.NewValidationError("update requires at least one assignment")
	}

	names := make(map[string]string, len(input.Assignments))
	values := make(map[string]types.AttributeValue, len(input.Assignments)+1)
	clauses := make([]string, 0, len(input.Assignments))
	for i, a := range input.Assignments {
		nameKey := fmt.Sprintf("#n%d", i)
		valueKey := fmt.Sprintf(":v%d", i)
		names[nameKey] = a.Name
		values[valueKey] = a.Value
		clauses = append(clauses, fmt.Sprintf("%s = %s", nameKey, valueKey))
	}

	req := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.tableName),
		Key:                       keyAttributes(input.PK, input.SK),
		UpdateExpression:          aws.String("SET " + strings.Join(clauses, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	}
	if input.ExpectUpdatedAt != "" {
		names["#expectedUpdatedAt"] = "updatedAt"
		values[":expectedUpdatedAt"] = &types.AttributeValueMemberS{Value: input.ExpectUpdatedAt}
		req.ConditionExpression = aws.String("#expectedUpdatedAt = :expectedUpdatedAt")
	}

	out, err := s.client.UpdateItem(ctx, req)
	if err != nil {
		return nil, s.classify("update", err)
	}
	return out.Attributes, nil
}

// Delete removes the item with the given key. Absent items are not an
// error.
func (s *Store) Delete(ctx context.Context, pk, sk string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key:       keyAttributes(pk, sk),
	})
	if err != nil {
		return s.classify("delete", err)
	}
	return nil
}

// Query returns the items matching the partition value and optional
// sort condition, in sort-key order.
func (s *Store) Query(ctx context.Context, input ports.QueryInput) ([]ports.Item, error) {
	keys, ok := s.indexes[input.Index]
	if !ok {
		return nil, appErrors.NewStoreRejectedError("query",
			fmt.Errorf("unknown index %q", input.Index))
	}

	keyCond := expression.Key(keys.partition).Equal(expression.Value(input.PartitionValue))
	if input.Sort != nil {
		sortKey := expression.Key(keys.sort)
		switch input.Sort.Operator {
		case ports.SortEquals:
			keyCond = keyCond.And(sortKey.Equal(expression.Value(input.Sort.Value)))
		case ports.SortBeginsWith:
			keyCond = keyCond.And(sortKey.BeginsWith(input.Sort.Value))
		case ports.SortBetween:
			keyCond = keyCond.And(sortKey.Between(
				expression.Value(input.Sort.Value),
				expression.Value(input.Sort.Upper)))
		default:
			return nil, appErrors.NewStoreRejectedError("query",
				fmt.Errorf("unknown sort operator %q", input.Sort.Operator))
		}
	}

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, appErrors.NewStoreRejectedError("query", err)
	}

	req := &dynamodb.QueryInput{
		TableName:                 aws.String(s.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          input.ScanIndexForward,
	}
	if input.Index != "" {
		req.IndexName = aws.String(input.Index)
	}
	if input.Limit > 0 {
		req.Limit = aws.Int32(input.Limit)
	}

	var items []ports.Item
	for {
		out, err := s.client.Query(ctx, req)
		if err != nil {
			return nil, s.classify("query", err)
		}
		for _, item := range out.Items {
			items = append(items, item)
		}
		if input.Limit > 0 && int32(len(items)) >= input.Limit {
			return items[:input.Limit], nil
		}
		if out.LastEvaluatedKey == nil {
			return items, nil
		}
		req.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// classify maps a DynamoDB call failure to the application error
// taxonomy. Conditional failures become conflicts, throttling and
// transport faults are retryable, everything else is a rejected
// request.
func (s *Store) classify(op string, err error) error {
	var conditional *types.ConditionalCheckFailedException
	if errors.As(err, &conditional) {
		return appErrors.NewConflictError("conditional check failed")
	}

	var throughput *types.ProvisionedThroughputExceededException
	var limit *types.LimitExceededException
	var internal *types.InternalServerError
	if errors.As(err, &throughput) || errors.As(err, &limit) || errors.As(err, &internal) {
		s.logger.Warn("DynamoDB call throttled or failed transiently",
			zap.String("operation", op),
			zap.Error(err),
		)
		return appErrors.NewStoreUnavailableError(op, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		s.logger.Error("DynamoDB call rejected",
			zap.String("operation", op),
			zap.String("code", apiErr.ErrorCode()),
			zap.Error(err),
		)
		return appErrors.NewStoreRejectedError(op, err)
	}

	// No service response at all: a transport-level failure.
	s.logger.Warn("DynamoDB call failed without a service response",
		zap.String("operation", op),
		zap.Error(err),
	)
	return appErrors.NewStoreUnavailableError(op, err)
}

func keyAttributes(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}
}
