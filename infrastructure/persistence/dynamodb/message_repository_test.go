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

func newMessageRepo(t *testing.T) *MessageRepository {
	t.Helper()
	store := memory.NewStore("GSI1", "GSI2", "GSI3")
	return NewMessageRepository(store, dates.FormatDdmmyyyy, zap.NewNop())
}

func TestMessageRepository_CreateDerivesKeys(t *testing.T) {
	repo := newMessageRepo(t)

	created, err := repo.Create(context.Background(), entities.CreateMessageRequest{
		GuestID:              "guest-1",
		ReservationID:        "res-1",
		CommunicationChannel: "email",
		Message:              "What time is check-in?",
		Date:                 "15112025",
	})
	require.NoError(t, err)

	assert.Equal(t, "MESSAGE#"+created.ID, created.PK)
	assert.Equal(t, "METADATA", created.SK)
	assert.Equal(t, "MESSAGE", created.GSI1PK)
	assert.Equal(t, "20251115", created.GSI1SK)
	assert.Equal(t, "RESERVATION#res-1", created.GSI2PK)
	assert.Equal(t, "MESSAGE#"+created.ID, created.GSI2SK)
	assert.Equal(t, "15112025", created.Date)
}

func TestMessageRepository_CreateRejectsBadDate(t *testing.T) {
	repo := newMessageRepo(t)

	_, err := repo.Create(context.Background(), entities.CreateMessageRequest{
		GuestID:              "guest-1",
		ReservationID:        "res-1",
		CommunicationChannel: "email",
		Message:              "hello",
		Date:                 "15132025",
	})
	require.Error(t, err)
	assert.True(t, appErrors.IsValidation(err))
}

func TestMessageRepository_ListByReservation(t *testing.T) {
	repo := newMessageRepo(t)
	ctx := context.Background()

	for _, res := range []string{"res-1", "res-1", "res-2"} {
		_, err := repo.Create(ctx, entities.CreateMessageRequest{
			GuestID:              "guest-1",
			ReservationID:        res,
			CommunicationChannel: "email",
			Message:              "hello",
			Date:                 "15112025",
		})
		require.NoError(t, err)
	}

	messages, err := repo.ListByReservation(ctx, "res-1")
	require.NoError(t, err)
	assert.Len(t, messages, 2)
	for _, message := range messages {
		assert.Equal(t, "res-1", message.ReservationID)
	}
}

func TestMessageRepository_ListByDate(t *testing.T) {
	repo := newMessageRepo(t)
	ctx := context.Background()

	for _, date := range []string{"15112025", "16112025", "15112025"} {
		_, err := repo.Create(ctx, entities.CreateMessageRequest{
			GuestID:              "guest-1",
			ReservationID:        "res-1",
			CommunicationChannel: "whatsapp",
			Message:              "hello",
			Date:                 date,
		})
		require.NoError(t, err)
	}

	messages, err := repo.ListByDate(ctx, "15112025")
	require.NoError(t, err)
	assert.Len(t, messages, 2)
}

func TestMessageRepository_UpdateDateRewritesListingKey(t *testing.T) {
	repo := newMessageRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, entities.CreateMessageRequest{
		GuestID:              "guest-1",
		ReservationID:        "res-1",
		CommunicationChannel: "email",
		Message:              "hello",
		Date:                 "15112025",
	})
	require.NoError(t, err)

	newDate := "16112025"
	updated, err := repo.Update(ctx, created.ID, entities.UpdateMessageRequest{Date: &newDate})
	require.NoError(t, err)
	assert.Equal(t, "16112025", updated.Date)
	assert.Equal(t, "20251116", updated.GSI1SK)

	onNewDate, err := repo.ListByDate(ctx, "16112025")
	require.NoError(t, err)
	require.Len(t, onNewDate, 1)
	assert.Equal(t, created.ID, onNewDate[0].ID)

	onOldDate, err := repo.ListByDate(ctx, "15112025")
	require.NoError(t, err)
	assert.Empty(t, onOldDate)
}

func TestMessageRepository_List(t *testing.T) {
	repo := newMessageRepo(t)
	ctx := context.Background()

	// Messages list chronologically because GSI1SK is the date.
	for _, date := range []string{"16112025", "14112025", "15112025"} {
		_, err := repo.Create(ctx, entities.CreateMessageRequest{
			GuestID:              "guest-1",
			ReservationID:        "res-1",
			CommunicationChannel: "email",
			Message:              "hello",
			Date:                 date,
		})
		require.NoError(t, err)
	}

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "14112025", listed[0].Date)
	assert.Equal(t, "15112025", listed[1].Date)
	assert.Equal(t, "16112025", listed[2].Date)
}
