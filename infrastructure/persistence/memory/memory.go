// Package memory provides an in-process implementation of the store
// port with the same observable semantics as the DynamoDB adapter.
// It backs repository tests and local development.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"hai-backend/application/ports"
	appErrors "hai-backend/pkg/errors"
)

// Store holds items keyed by PK and SK.
type Store struct {
	mu      sync.RWMutex
	items   map[string]ports.Item
	indexes map[string]indexKeys
}

type indexKeys struct {
	partition string
	sort      string
}

// NewStore creates an empty store. Each entry of indexNames follows
// the `<name>PK`/`<name>SK` attribute convention.
func NewStore(indexNames ...string) *Store {
	indexes := map[string]indexKeys{
		"": {partition: "PK", sort: "SK"},
	}
	for _, name := range indexNames {
		indexes[name] = indexKeys{partition: name + "PK", sort: name + "SK"}
	}
	return &Store{
		items:   make(map[string]ports.Item),
		indexes: indexes,
	}
}

func itemKey(pk, sk string) string {
	return pk + "|" + sk
}

// Get returns the item with the given key, or (nil, nil) when absent.
func (s *Store) Get(_ context.Context, pk, sk string) (ports.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[itemKey(pk, sk)]
	if !ok {
		return nil, nil
	}
	return cloneItem(item), nil
}

// Put writes a full item.
func (s *Store) Put(_ context.Context, input ports.PutInput) error {
	pk := stringAttr(input.Item, "PK")
	sk := stringAttr(input.Item, "SK")
	if pk == "" || sk == "" {
		return appErrors.NewStoreRejectedError("put", fmt.Errorf("item is missing its key"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := itemKey(pk, sk)
	if input.IfNotExists {
		if _, exists := s.items[key]; exists {
			return appErrors.NewConflictError("conditional check failed")
		}
	}
	s.items[key] = cloneItem(input.Item)
	return nil
}

// Update applies the assignments and returns the stored item. An
// absent key is created from the assignments, matching the upsert
// semantics of an unconditioned DynamoDB update.
func (s *Store) Update(_ context.Context, input ports.UpdateInput) (ports.Item, error) {
	if len(input.Assignments) == 0 {
		return nil, appErrors.NewValidationError("update requires at least one assignment")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := itemKey(input.PK, input.SK)
	item, exists := s.items[key]

	if input.ExpectUpdatedAt != "" {
		if !exists || stringAttr(item, "updatedAt") != input.ExpectUpdatedAt {
			return nil, appErrors.NewConflictError("conditional check failed")
		}
	}

	if !exists {
		item = ports.Item{
			"PK": &types.AttributeValueMemberS{Value: input.PK},
			"SK": &types.AttributeValueMemberS{Value: input.SK},
		}
	} else {
		item = cloneItem(item)
	}
	for _, a := range input.Assignments {
		item[a.Name] = a.Value
	}
	s.items[key] = item
	return cloneItem(item), nil
}

// Delete removes the item with the given key. Absent items are not an
// error.
func (s *Store) Delete(_ context.Context, pk, sk string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, itemKey(pk, sk))
	return nil
}

// Query returns the matching items in sort-key order.
func (s *Store) Query(_ context.Context, input ports.QueryInput) ([]ports.Item, error) {
	keys, ok := s.indexes[input.Index]
	if !ok {
		return nil, appErrors.NewStoreRejectedError("query",
			fmt.Errorf("unknown index %q", input.Index))
	}

	s.mu.RLock()
	var matches []ports.Item
	for _, item := range s.items {
		if stringAttr(item, keys.partition) != input.PartitionValue {
			continue
		}
		if input.Sort != nil && !matchesSort(stringAttr(item, keys.sort), input.Sort) {
			continue
		}
		matches = append(matches, cloneItem(item))
	}
	s.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool {
		return stringAttr(matches[i], keys.sort) < stringAttr(matches[j], keys.sort)
	})
	if input.ScanIndexForward != nil && !*input.ScanIndexForward {
		for i, j := 0, len(matches)-1; i < j; i, j = i+1, j-1 {
			matches[i], matches[j] = matches[j], matches[i]
		}
	}
	if input.Limit > 0 && int32(len(matches)) > input.Limit {
		matches = matches[:input.Limit]
	}
	return matches, nil
}

// Len reports the number of stored items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func matchesSort(value string, cond *ports.SortCondition) bool {
	switch cond.Operator {
	case ports.SortEquals:
		return value == cond.Value
	case ports.SortBeginsWith:
		return strings.HasPrefix(value, cond.Value)
	case ports.SortBetween:
		return value >= cond.Value && value <= cond.Upper
	default:
		return false
	}
}

func stringAttr(item ports.Item, name string) string {
	if attr, ok := item[name].(*types.AttributeValueMemberS); ok {
		return attr.Value
	}
	return ""
}

func cloneItem(item ports.Item) ports.Item {
	out := make(ports.Item, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}
