package dynamodb

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hai-backend/application/ports"
	"hai-backend/domain/entities"
	"hai-backend/pkg/dates"
	appErrors "hai-backend/pkg/errors"
	"hai-backend/pkg/utils"
)

// MessageRepository implements ports.MessageRepository on the store.
type MessageRepository struct {
	store      ports.Store
	wireFormat dates.Format
	logger     *zap.Logger
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(store ports.Store, wireFormat dates.Format, logger *zap.Logger) *MessageRepository {
	return &MessageRepository{store: store, wireFormat: wireFormat, logger: logger}
}

// Create persists a new message with a generated id. The message date
// lands in GSI1SK in sortable form so listing by type is chronological.
func (r *MessageRepository) Create(ctx context.Context, req entities.CreateMessageRequest) (*entities.Message, error) {
	dateSortable, err := r.wireFormat.ToYyyymmdd(req.Date)
	if err != nil {
		return nil, appErrors.NewValidationError("invalid date: " + err.Error())
	}

	id := uuid.NewString()
	now := utils.NowRFC3339()
	message := entities.Message{
		ItemKeys:             entities.MessageKeys(id, req.ReservationID, dateSortable),
		ID:                   id,
		GuestID:              req.GuestID,
		ReservationID:        req.ReservationID,
		CommunicationChannel: req.CommunicationChannel,
		Message:              req.Message,
		Date:                 req.Date,
		Timestamps:           entities.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	item, err := marshalItem(message)
	if err != nil {
		return nil, appErrors.Wrap(err, "failed to marshal message")
	}
	if err := r.store.Put(ctx, ports.PutInput{Item: item}); err != nil {
		return nil, err
	}

	r.logger.Info("Created message",
		zap.String("messageID", message.ID),
		zap.String("reservationID", message.ReservationID),
	)
	return &message, nil
}

// GetByID returns the message with the given id.
func (r *MessageRepository) GetByID(ctx context.Context, id string) (*entities.Message, error) {
	item, err := r.store.Get(ctx, entities.PartitionKey(entities.TypeMessage, id), entities.SortKeyMetadata)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, appErrors.NewNotFoundError("message")
	}
	return unmarshalItem[entities.Message](item)
}

// Update applies the present fields of the request. A date change
// rewrites GSI1SK; a reservation change rewrites GSI2PK.
func (r *MessageRepository) Update(ctx context.Context, id string, req entities.UpdateMessageRequest) (*entities.Message, error) {
	var assignments ports.Assignments
	if req.GuestID != nil {
		assignments = assignments.SetString("guest_id", *req.GuestID)
	}
	if req.ReservationID != nil {
		assignments = assignments.SetString("reservation_id", *req.ReservationID)
		assignments = assignments.SetString("GSI2PK", entities.PartitionKey(entities.TypeReservation, *req.ReservationID))
	}
	if req.CommunicationChannel != nil {
		assignments = assignments.SetString("communication_channel", *req.CommunicationChannel)
	}
	if req.Message != nil {
		assignments = assignments.SetString("message", *req.Message)
	}
	if req.Date != nil {
		dateSortable, err := r.wireFormat.ToYyyymmdd(*req.Date)
		if err != nil {
			return nil, appErrors.NewValidationError("invalid date: " + err.Error())
		}
		assignments = assignments.SetString("date", *req.Date)
		assignments = assignments.SetString("GSI1SK", dateSortable)
	}
	assignments = assignments.SetString("updatedAt", utils.NowRFC3339())

	item, err := r.store.Update(ctx, ports.UpdateInput{
		PK:          entities.PartitionKey(entities.TypeMessage, id),
		SK:          entities.SortKeyMetadata,
		Assignments: assignments,
	})
	if err != nil {
		return nil, err
	}
	return unmarshalItem[entities.Message](item)
}

// Delete removes the message with the given id.
func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, entities.PartitionKey(entities.TypeMessage, id), entities.SortKeyMetadata)
}

// List returns all messages in date order.
func (r *MessageRepository) List(ctx context.Context) ([]entities.Message, error) {
	items, err := r.store.Query(ctx, ports.QueryInput{
		Index:          "GSI1",
		PartitionValue: entities.TypeMessage,
	})
	if err != nil {
		return nil, err
	}
	return unmarshalItems[entities.Message](items)
}

// ListByReservation returns a reservation's messages via the inverted
// parent index.
func (r *MessageRepository) ListByReservation(ctx context.Context, reservationID string) ([]entities.Message, error) {
	items, err := r.store.Query(ctx, ports.QueryInput{
		Index:          "GSI2",
		PartitionValue: entities.PartitionKey(entities.TypeReservation, reservationID),
		Sort: &ports.SortCondition{
			Operator: ports.SortBeginsWith,
			Value:    entities.TypeMessage + "#",
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalItems[entities.Message](items)
}

// ListByDate returns the messages sent on one day. The date arrives in
// the wire format.
func (r *MessageRepository) ListByDate(ctx context.Context, date string) ([]entities.Message, error) {
	dateSortable, err := r.wireFormat.ToYyyymmdd(date)
	if err != nil {
		return nil, appErrors.NewValidationError("invalid date: " + err.Error())
	}
	items, err := r.store.Query(ctx, ports.QueryInput{
		Index:          "GSI1",
		PartitionValue: entities.TypeMessage,
		Sort: &ports.SortCondition{
			Operator: ports.SortEquals,
			Value:    dateSortable,
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalItems[entities.Message](items)
}
