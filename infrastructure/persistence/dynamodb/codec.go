package dynamodb

import (
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"hai-backend/application/ports"
)

func marshalItem(v any) (ports.Item, error) {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item: %w", err)
	}
	return item, nil
}

func unmarshalItem[T any](item ports.Item) (*T, error) {
	var out T
	if err := attributevalue.UnmarshalMap(item, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return &out, nil
}

func numberValue(n int) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.Itoa(n)}
}

func floatValue(f float64) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.FormatFloat(f, 'f', -1, 64)}
}

func boolValue(b bool) types.AttributeValue {
	return &types.AttributeValueMemberBOOL{Value: b}
}

func unmarshalItems[T any](items []ports.Item) ([]T, error) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		entity, err := unmarshalItem[T](item)
		if err != nil {
			return nil, err
		}
		out = append(out, *entity)
	}
	return out, nil
}
