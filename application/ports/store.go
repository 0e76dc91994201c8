// Package ports defines the interfaces the application layer depends
// on. Concrete implementations live under infrastructure.
package ports

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Item is a raw key-value record as stored in the table.
type Item = map[string]types.AttributeValue

// Assignment sets one attribute to a value in a partial update.
type Assignment struct {
	Name  string
	Value types.AttributeValue
}

// Assignments is an ordered list of attribute assignments. Order is
// preserved so generated update expressions are deterministic.
type Assignments []Assignment

// Set appends an assignment and returns the extended list.
func (a Assignments) Set(name string, value types.AttributeValue) Assignments {
	return append(a, Assignment{Name: name, Value: value})
}

// SetString appends a string attribute assignment.
func (a Assignments) SetString(name, value string) Assignments {
	return a.Set(name, &types.AttributeValueMemberS{Value: value})
}

// PutInput carries a full item write.
type PutInput struct {
	Item Item
	// IfNotExists makes the write a conditional create: it fails with
	// a conflict error when an item with the same key already exists.
	IfNotExists bool
}

// UpdateInput carries a partial update of an existing item.
type UpdateInput struct {
	PK          string
	SK          string
	Assignments Assignments
	// ExpectUpdatedAt, when non-empty, conditions the update on the
	// item's current updatedAt value. A mismatch fails with a conflict
	// error.
	ExpectUpdatedAt string
}

// SortOperator selects the sort-key condition of a query.
type SortOperator string

const (
	SortEquals     SortOperator = "EQ"
	SortBeginsWith SortOperator = "BEGINS_WITH"
	SortBetween    SortOperator = "BETWEEN"
)

// SortCondition is an optional sort-key constraint. Upper is only used
// with SortBetween.
type SortCondition struct {
	Operator SortOperator
	Value    string
	Upper    string
}

// QueryInput describes a query against the table or one of its
// secondary indexes. An empty Index queries the base table.
type QueryInput struct {
	Index            string
	PartitionValue   string
	Sort             *SortCondition
	Limit            int32
	ScanIndexForward *bool
}

// Store is the key-value contract every repository is written against.
type Store interface {
	// Get returns the item with the given key, or (nil, nil) when no
	// such item exists.
	Get(ctx context.Context, pk, sk string) (Item, error)

	// Put writes a full item, overwriting any existing item with the
	// same key unless IfNotExists is set.
	Put(ctx context.Context, input PutInput) error

	// Update applies the assignments to an existing item and returns
	// the complete item as stored after the update.
	Update(ctx context.Context, input UpdateInput) (Item, error)

	// Delete removes the item with the given key. Deleting an absent
	// item is not an error.
	Delete(ctx context.Context, pk, sk string) error

	// Query returns the items matching the partition value and
	// optional sort condition, in sort-key order.
	Query(ctx context.Context, input QueryInput) ([]Item, error)
}
