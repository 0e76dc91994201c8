package memory

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hai-backend/application/ports"
	appErrors "hai-backend/pkg/errors"
)

func item(attrs map[string]string) ports.Item {
	out := make(ports.Item, len(attrs))
	for k, v := range attrs {
		out[k] = &types.AttributeValueMemberS{Value: v}
	}
	return out
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	stored := item(map[string]string{"PK": "GUEST#1", "SK": "METADATA", "name": "Maria"})
	require.NoError(t, store.Put(ctx, ports.PutInput{Item: stored}))

	got, err := store.Get(ctx, "GUEST#1", "METADATA")
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestStore_GetAbsentReturnsNil(t *testing.T) {
	store := NewStore()

	got, err := store.Get(context.Background(), "GUEST#missing", "METADATA")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_ConditionalCreate(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	first := item(map[string]string{"PK": "RESERVATION#1", "SK": "METADATA"})
	require.NoError(t, store.Put(ctx, ports.PutInput{Item: first, IfNotExists: true}))

	err := store.Put(ctx, ports.PutInput{Item: first, IfNotExists: true})
	require.Error(t, err)
	assert.True(t, appErrors.IsConflict(err))

	// An unconditional put still overwrites.
	require.NoError(t, store.Put(ctx, ports.PutInput{Item: first}))
}

func TestStore_UpdateAppliesAssignments(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, ports.PutInput{
		Item: item(map[string]string{"PK": "GUEST#1", "SK": "METADATA", "name": "Maria", "updatedAt": "t1"}),
	}))

	out, err := store.Update(ctx, ports.UpdateInput{
		PK: "GUEST#1",
		SK: "METADATA",
		Assignments: ports.Assignments{}.
			SetString("name", "Eleni").
			SetString("updatedAt", "t2"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Eleni", out["name"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "t2", out["updatedAt"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "GUEST#1", out["PK"].(*types.AttributeValueMemberS).Value)
}

func TestStore_UpdateUpsertsAbsentKey(t *testing.T) {
	store := NewStore()

	out, err := store.Update(context.Background(), ports.UpdateInput{
		PK:          "GUEST#new",
		SK:          "METADATA",
		Assignments: ports.Assignments{}.SetString("name", "Maria"),
	})
	require.NoError(t, err)
	assert.Equal(t, "GUEST#new", out["PK"].(*types.AttributeValueMemberS).Value)
	assert.Equal(t, "Maria", out["name"].(*types.AttributeValueMemberS).Value)
}

func TestStore_UpdateConditionedOnUpdatedAt(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, ports.PutInput{
		Item: item(map[string]string{"PK": "RESERVATION#1", "SK": "METADATA", "updatedAt": "t1"}),
	}))

	_, err := store.Update(ctx, ports.UpdateInput{
		PK:              "RESERVATION#1",
		SK:              "METADATA",
		Assignments:     ports.Assignments{}.SetString("updatedAt", "t2"),
		ExpectUpdatedAt: "stale",
	})
	require.Error(t, err)
	assert.True(t, appErrors.IsConflict(err))

	_, err = store.Update(ctx, ports.UpdateInput{
		PK:              "RESERVATION#1",
		SK:              "METADATA",
		Assignments:     ports.Assignments{}.SetString("updatedAt", "t2"),
		ExpectUpdatedAt: "t1",
	})
	require.NoError(t, err)
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, ports.PutInput{
		Item: item(map[string]string{"PK": "TASK#1", "SK": "METADATA"}),
	}))
	require.NoError(t, store.Delete(ctx, "TASK#1", "METADATA"))
	require.NoError(t, store.Delete(ctx, "TASK#1", "METADATA"))
	assert.Equal(t, 0, store.Len())
}

func TestStore_QuerySortsAndFilters(t *testing.T) {
	store := NewStore("GSI1")
	ctx := context.Background()

	for _, row := range []map[string]string{
		{"PK": "RESERVATION#b", "SK": "METADATA", "GSI1PK": "RESERVATION", "GSI1SK": "20251120"},
		{"PK": "RESERVATION#a", "SK": "METADATA", "GSI1PK": "RESERVATION", "GSI1SK": "20251001"},
		{"PK": "RESERVATION#c", "SK": "METADATA", "GSI1PK": "RESERVATION", "GSI1SK": "20260101"},
		{"PK": "GUEST#1", "SK": "METADATA", "GSI1PK": "GUEST", "GSI1SK": "1"},
	} {
		require.NoError(t, store.Put(ctx, ports.PutInput{Item: item(row)}))
	}

	t.Run("partition only, ascending", func(t *testing.T) {
		got, err := store.Query(ctx, ports.QueryInput{Index: "GSI1", PartitionValue: "RESERVATION"})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "20251001", got[0]["GSI1SK"].(*types.AttributeValueMemberS).Value)
		assert.Equal(t, "20260101", got[2]["GSI1SK"].(*types.AttributeValueMemberS).Value)
	})

	t.Run("descending", func(t *testing.T) {
		got, err := store.Query(ctx, ports.QueryInput{
			Index:            "GSI1",
			PartitionValue:   "RESERVATION",
			ScanIndexForward: aws.Bool(false),
		})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "20260101", got[0]["GSI1SK"].(*types.AttributeValueMemberS).Value)
	})

	t.Run("between is inclusive", func(t *testing.T) {
		got, err := store.Query(ctx, ports.QueryInput{
			Index:          "GSI1",
			PartitionValue: "RESERVATION",
			Sort:           &ports.SortCondition{Operator: ports.SortBetween, Value: "20251001", Upper: "20251130"},
		})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("begins with", func(t *testing.T) {
		got, err := store.Query(ctx, ports.QueryInput{
			Index:          "GSI1",
			PartitionValue: "RESERVATION",
			Sort:           &ports.SortCondition{Operator: ports.SortBeginsWith, Value: "2025"},
		})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("equals with limit", func(t *testing.T) {
		got, err := store.Query(ctx, ports.QueryInput{
			Index:          "GSI1",
			PartitionValue: "RESERVATION",
			Sort:           &ports.SortCondition{Operator: ports.SortEquals, Value: "20251120"},
			Limit:          1,
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "RESERVATION#b", got[0]["PK"].(*types.AttributeValueMemberS).Value)
	})

	t.Run("unknown index is rejected", func(t *testing.T) {
		_, err := store.Query(ctx, ports.QueryInput{Index: "GSI9", PartitionValue: "RESERVATION"})
		require.Error(t, err)
		assert.True(t, appErrors.IsType(err, appErrors.ErrorTypeStoreRejected))
	})
}
