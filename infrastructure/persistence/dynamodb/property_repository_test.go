package dynamodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hai-backend/domain/entities"
	"hai-backend/infrastructure/persistence/memory"
	"hai-backend/pkg/dates"
	appErrors "hai-backend/pkg/errors"
)

func newPropertyRepo(t *testing.T) (*PropertyRepository, *ReservationRepository) {
	t.Helper()
	store := memory.NewStore("GSI1", "GSI2", "GSI3")
	properties := NewPropertyRepository(store, dates.FormatDdmmyyyy, zap.NewNop())
	reservations := NewReservationRepository(store, dates.FormatDdmmyyyy, false, zap.NewNop())
	return properties, reservations
}

func TestPropertyRepository_CreateThenGetRoundTrip(t *testing.T) {
	repo, _ := newPropertyRepo(t)

	created, err := repo.Create(context.Background(), entities.CreatePropertyRequest{
		RoomNumber:      "101",
		RoomName:        "Ocean Suite",
		SeaView:         true,
		NumOfDoubleBeds: 1,
		Floor:           3,
		RoomCount:       2,
	})
	require.NoError(t, err)
	assert.Equal(t, "PROPERTY#"+created.ID, created.PK)
	assert.Equal(t, "METADATA", created.SK)
	assert.Equal(t, "PROPERTY", created.GSI1PK)
	assert.Equal(t, created.ID, created.GSI1SK)

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestPropertyRepository_UpdatePartialFields(t *testing.T) {
	repo, _ := newPropertyRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, entities.CreatePropertyRequest{
		RoomNumber: "101",
		RoomName:   "Ocean Suite",
		Floor:      3,
	})
	require.NoError(t, err)

	name := "Garden Suite"
	seaView := false
	updated, err := repo.Update(ctx, created.ID, entities.UpdatePropertyRequest{
		RoomName: &name,
		SeaView:  &seaView,
	})
	require.NoError(t, err)
	assert.Equal(t, "Garden Suite", updated.RoomName)
	assert.False(t, updated.SeaView)
	assert.Equal(t, "101", updated.RoomNumber)
	assert.Equal(t, 3, updated.Floor)
}

func TestPropertyRepository_List(t *testing.T) {
	repo, _ := newPropertyRepo(t)
	ctx := context.Background()

	for _, number := range []string{"101", "102", "103"} {
		_, err := repo.Create(ctx, entities.CreatePropertyRequest{
			RoomNumber: number,
			RoomName:   "Room " + number,
		})
		require.NoError(t, err)
	}

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 3)
}

func TestPropertyRepository_SearchByDateRange(t *testing.T) {
	properties, reservations := newPropertyRepo(t)
	ctx := context.Background()

	booked, err := properties.Create(ctx, entities.CreatePropertyRequest{
		RoomNumber: "101",
		RoomName:   "Ocean Suite",
	})
	require.NoError(t, err)
	free, err := properties.Create(ctx, entities.CreatePropertyRequest{
		RoomNumber: "102",
		RoomName:   "Garden Suite",
	})
	require.NoError(t, err)

	_, err = reservations.Create(ctx, entities.CreateReservationRequest{
		RoomID:       booked.ID,
		CheckinDate:  "15112025",
		CheckoutDate: "20112025",
		GuestID:      "guest-1",
	})
	require.NoError(t, err)

	t.Run("overlapping window excludes the booked property", func(t *testing.T) {
		available, err := properties.SearchByDateRange(ctx, "17112025", "22112025")
		require.NoError(t, err)
		require.Len(t, available, 1)
		assert.Equal(t, free.ID, available[0].ID)
	})

	t.Run("window starting on checkout day keeps the property", func(t *testing.T) {
		available, err := properties.SearchByDateRange(ctx, "20112025", "25112025")
		require.NoError(t, err)
		assert.Len(t, available, 2)
	})

	t.Run("invalid date is rejected", func(t *testing.T) {
		_, err := properties.SearchByDateRange(ctx, "99999999", "20112025")
		require.Error(t, err)
		assert.True(t, appErrors.IsValidation(err))
	})
}

func TestPropertyRepository_Delete(t *testing.T) {
	repo, _ := newPropertyRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, entities.CreatePropertyRequest{
		RoomNumber: "101",
		RoomName:   "Ocean Suite",
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.True(t, appErrors.IsNotFound(err))
}
