package dynamodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hai-backend/application/ports"
	"hai-backend/domain/entities"
	"hai-backend/infrastructure/persistence/memory"
	"hai-backend/pkg/dates"
	appErrors "hai-backend/pkg/errors"
)

func newReservationRepo(t *testing.T, naturalKeys bool) (*ReservationRepository, *memory.Store) {
	t.Helper()
	store := memory.NewStore("GSI1", "GSI2", "GSI3")
	repo := NewReservationRepository(store, dates.FormatDdmmyyyy, naturalKeys, zap.NewNop())
	return repo, store
}

func TestReservationRepository_CreateDerivesKeys(t *testing.T) {
	repo, _ := newReservationRepo(t, false)

	created, err := repo.Create(context.Background(), entities.CreateReservationRequest{
		RoomID:       "101",
		CheckinDate:  "15112025",
		CheckoutDate: "20112025",
		GuestID:      "guest-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "RESERVATION#"+created.ID, created.PK)
	assert.Equal(t, "METADATA", created.SK)
	assert.Equal(t, "RESERVATION", created.GSI1PK)
	assert.Equal(t, "20251115", created.GSI1SK)
	assert.Equal(t, "GUEST#guest-1", created.GSI2PK)
	assert.Equal(t, "RESERVATION#"+created.ID, created.GSI2SK)
	assert.Equal(t, "PROPERTY#101", created.GSI3PK)
	assert.Equal(t, "20251115#20251120", created.GSI3SK)
	assert.Equal(t, "15112025", created.CheckinDate)
	assert.Equal(t, "20112025", created.CheckoutDate)
	assert.NotEmpty(t, created.CreatedAt)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestReservationRepository_CreateThenGetRoundTrip(t *testing.T) {
	repo, _ := newReservationRepo(t, false)

	created, err := repo.Create(context.Background(), entities.CreateReservationRequest{
		RoomID:          "101",
		CheckinDate:     "15112025",
		CheckoutDate:    "20112025",
		GuestID:         "guest-1",
		NumberOfGuests:  2,
		Origin:          "booking.com",
		RequiredCrib:    true,
		SpecialRequests: "late arrival",
	})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestReservationRepository_CreateValidation(t *testing.T) {
	repo, _ := newReservationRepo(t, false)

	tests := []struct {
		name     string
		checkin  string
		checkout string
	}{
		{"bad checkin", "15132025", "20112025"},
		{"bad checkout", "15112025", "2025"},
		{"checkout before checkin", "20112025", "15112025"},
		{"zero length stay", "15112025", "15112025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Create(context.Background(), entities.CreateReservationRequest{
				RoomID:       "101",
				CheckinDate:  tt.checkin,
				CheckoutDate: tt.checkout,
				GuestID:      "guest-1",
			})
			require.Error(t, err)
			assert.True(t, appErrors.IsValidation(err))
		})
	}
}

func TestReservationRepository_NaturalKeyConflict(t *testing.T) {
	repo, _ := newReservationRepo(t, true)

	req := entities.CreateReservationRequest{
		RoomID:       "101",
		CheckinDate:  "15112025",
		CheckoutDate: "20112025",
		GuestID:      "guest-1",
	}
	created, err := repo.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "101-15112025-20112025", created.ID)

	req.GuestID = "guest-2"
	_, err = repo.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, appErrors.IsConflict(err))
}

func TestReservationRepository_GetByIDNotFound(t *testing.T) {
	repo, _ := newReservationRepo(t, false)

	_, err := repo.GetByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
}

func TestReservationRepository_UpdateCheckinRebuildsStayKey(t *testing.T) {
	repo, _ := newReservationRepo(t, false)
	ctx := context.Background()

	created, err := repo.Create(ctx, entities.CreateReservationRequest{
		RoomID:       "101",
		CheckinDate:  "15112025",
		CheckoutDate: "20112025",
		GuestID:      "guest-1",
	})
	require.NoError(t, err)

	newCheckin := "16112025"
	updated, err := repo.Update(ctx, created.ID, entities.UpdateReservationRequest{
		CheckinDate: &newCheckin,
	})
	require.NoError(t, err)
	assert.Equal(t, "16112025", updated.CheckinDate)
	assert.Equal(t, "20112025", updated.CheckoutDate)
	assert.Equal(t, "20251116#20251120", updated.GSI3SK)
	assert.Equal(t, "20251116", updated.GSI1SK)

	// The reservation is reachable only under the rebuilt composite.
	found, err := repo.GetByPropertyAndDates(ctx, "101", "16112025", "20112025")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	stale, err := repo.GetByPropertyAndDates(ctx, "101", "15112025", "20112025")
	require.NoError(t, err)
	assert.Nil(t, stale)
}

func TestReservationRepository_EmptyUpdateRefreshesUpdatedAt(t *testing.T) {
	repo, _ := newReservationRepo(t, false)
	ctx := context.Background()

	created, err := repo.Create(ctx, entities.CreateReservationRequest{
		RoomID:       "101",
		CheckinDate:  "15112025",
		CheckoutDate: "20112025",
		GuestID:      "guest-1",
	})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	updated, err := repo.Update(ctx, created.ID, entities.UpdateReservationRequest{})
	require.NoError(t, err)

	assert.NotEqual(t, created.UpdatedAt, updated.UpdatedAt)
	assert.Equal(t, created.CheckinDate, updated.CheckinDate)
	assert.Equal(t, created.CheckoutDate, updated.CheckoutDate)
	assert.Equal(t, created.GSI3SK, updated.GSI3SK)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestReservationRepository_UpdateMissingReservation(t *testing.T) {
	repo, _ := newReservationRepo(t, false)

	origin := "direct"
	_, err := repo.Update(context.Background(), "missing", entities.UpdateReservationRequest{
		Origin: &origin,
	})
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
}

// conflictingStore wraps a store and fails the first n updates with a
// conflict, as a concurrent writer would.
type conflictingStore struct {
	*memory.Store
	remaining int
}

func (s *conflictingStore) Update(ctx context.Context, input ports.UpdateInput) (ports.Item, error) {
	if s.remaining > 0 {
		s.remaining--
		return nil, appErrors.NewConflictError("conditional check failed")
	}
	return s.Store.Update(ctx, input)
}

func TestReservationRepository_UpdateRetriesOnConflict(t *testing.T) {
	inner := memory.NewStore("GSI1", "GSI2", "GSI3")
	store := &conflictingStore{Store: inner, remaining: 2}
	repo := NewReservationRepository(store, dates.FormatDdmmyyyy, false, zap.NewNop())
	ctx := context.Background()

	seed := NewReservationRepository(inner, dates.FormatDdmmyyyy, false, zap.NewNop())
	created, err := seed.Create(ctx, entities.CreateReservationRequest{
		RoomID:       "101",
		CheckinDate:  "15112025",
		CheckoutDate: "20112025",
		GuestID:      "guest-1",
	})
	require.NoError(t, err)

	origin := "direct"
	updated, err := repo.Update(ctx, created.ID, entities.UpdateReservationRequest{Origin: &origin})
	require.NoError(t, err)
	assert.Equal(t, "direct", updated.Origin)
	assert.Equal(t, 0, store.remaining)
}

func TestReservationRepository_UpdateGivesUpAfterRetries(t *testing.T) {
	inner := memory.NewStore("GSI1", "GSI2", "GSI3")
	store := &conflictingStore{Store: inner, remaining: 10}
	repo := NewReservationRepository(store, dates.FormatDdmmyyyy, false, zap.NewNop())
	ctx := context.Background()

	seed := NewReservationRepository(inner, dates.FormatDdmmyyyy, false, zap.NewNop())
	created, err := seed.Create(ctx, entities.CreateReservationRequest{
		RoomID:       "101",
		CheckinDate:  "15112025",
		CheckoutDate: "20112025",
		GuestID:      "guest-1",
	})
	require.NoError(t, err)

	origin := "direct"
	_, err = repo.Update(ctx, created.ID, entities.UpdateReservationRequest{Origin: &origin})
	require.Error(t, err)
	assert.True(t, appErrors.IsConflict(err))
	assert.Equal(t, 10-updateRetryAttempts, store.remaining)
}

func TestReservationRepository_ListOrdersByCheckinDate(t *testing.T) {
	repo, _ := newReservationRepo(t, false)
	ctx := context.Background()

	// Created out of chronological order on purpose.
	for _, stay := range [][2]string{
		{"20112025", "25112025"},
		{"01102025", "05102025"},
		{"15112025", "20112025"},
	} {
		_, err := repo.Create(ctx, entities.CreateReservationRequest{
			RoomID:       "101",
			CheckinDate:  stay[0],
			CheckoutDate: stay[1],
			GuestID:      "guest-1",
		})
		require.NoError(t, err)
	}

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "01102025", listed[0].CheckinDate)
	assert.Equal(t, "15112025", listed[1].CheckinDate)
	assert.Equal(t, "20112025", listed[2].CheckinDate)
}

func TestReservationRepository_ListByGuest(t *testing.T) {
	repo, _ := newReservationRepo(t, false)
	ctx := context.Background()

	_, err := repo.Create(ctx, entities.CreateReservationRequest{
		RoomID: "101", CheckinDate: "15112025", CheckoutDate: "20112025", GuestID: "guest-1",
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.CreateReservationRequest{
		RoomID: "102", CheckinDate: "01122025", CheckoutDate: "05122025", GuestID: "guest-1",
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.CreateReservationRequest{
		RoomID: "103", CheckinDate: "01122025", CheckoutDate: "05122025", GuestID: "guest-2",
	})
	require.NoError(t, err)

	mine, err := repo.ListByGuest(ctx, "guest-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, reservation := range mine {
		assert.Equal(t, "guest-1", reservation.GuestID)
	}
}

func TestReservationRepository_ListByProperty(t *testing.T) {
	repo, _ := newReservationRepo(t, false)
	ctx := context.Background()

	_, err := repo.Create(ctx, entities.CreateReservationRequest{
		RoomID: "101", CheckinDate: "15112025", CheckoutDate: "20112025", GuestID: "guest-1",
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.CreateReservationRequest{
		RoomID: "101", CheckinDate: "01102025", CheckoutDate: "05102025", GuestID: "guest-2",
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.CreateReservationRequest{
		RoomID: "102", CheckinDate: "15112025", CheckoutDate: "20112025", GuestID: "guest-3",
	})
	require.NoError(t, err)

	stays, err := repo.ListByProperty(ctx, "101")
	require.NoError(t, err)
	require.Len(t, stays, 2)
	// GSI3 orders a property's reservations by stay window.
	assert.Equal(t, "01102025", stays[0].CheckinDate)
	assert.Equal(t, "15112025", stays[1].CheckinDate)
}

func TestReservationRepository_ListByDateRange(t *testing.T) {
	repo, _ := newReservationRepo(t, false)
	ctx := context.Background()

	for _, stay := range [][2]string{
		{"01102025", "05102025"},
		{"15112025", "20112025"},
		{"01012026", "05012026"},
	} {
		_, err := repo.Create(ctx, entities.CreateReservationRequest{
			RoomID:       "101",
			CheckinDate:  stay[0],
			CheckoutDate: stay[1],
			GuestID:      "guest-1",
		})
		require.NoError(t, err)
	}

	inRange, err := repo.ListByDateRange(ctx, "01112025", "30112025")
	require.NoError(t, err)
	require.Len(t, inRange, 1)
	assert.Equal(t, "15112025", inRange[0].CheckinDate)
}

func TestReservationRepository_Delete(t *testing.T) {
	repo, _ := newReservationRepo(t, false)
	ctx := context.Background()

	created, err := repo.Create(ctx, entities.CreateReservationRequest{
		RoomID: "101", CheckinDate: "15112025", CheckoutDate: "20112025", GuestID: "guest-1",
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.True(t, appErrors.IsNotFound(err))

	// Deleting again is not an error.
	require.NoError(t, repo.Delete(ctx, created.ID))
}
