package dynamodb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hai-backend/application/ports"
	"hai-backend/domain/entities"
	"hai-backend/pkg/dates"
	appErrors "hai-backend/pkg/errors"
	"hai-backend/pkg/utils"
)

// updateRetryAttempts bounds the optimistic-concurrency retry loop on
// reservation updates.
const updateRetryAttempts = 3

// ReservationRepository implements ports.ReservationRepository on the
// store.
type ReservationRepository struct {
	store      ports.Store
	wireFormat dates.Format
	// naturalKeys switches id generation from random uuids to the
	// deterministic `{room_id}-{checkin}-{checkout}` composite, with a
	// conditional create guarding against double booking.
	naturalKeys bool
	logger      *zap.Logger
}

// NewReservationRepository creates a new ReservationRepository.
func NewReservationRepository(store ports.Store, wireFormat dates.Format, naturalKeys bool, logger *zap.Logger) *ReservationRepository {
	return &ReservationRepository{
		store:       store,
		wireFormat:  wireFormat,
		naturalKeys: naturalKeys,
		logger:      logger,
	}
}

// Create persists a new reservation. With natural keys enabled the
// write is conditional, so a second reservation for the same room and
// stay window fails with a conflict.
func (r *ReservationRepository) Create(ctx context.Context, req entities.CreateReservationRequest) (*entities.Reservation, error) {
	checkinSortable, err := r.wireFormat.ToYyyymmdd(req.CheckinDate)
	if err != nil {
		return nil, appErrors.NewValidationError("invalid checkin_date: " + err.Error())
	}
	checkoutSortable, err := r.wireFormat.ToYyyymmdd(req.CheckoutDate)
	if err != nil {
		return nil, appErrors.NewValidationError("invalid checkout_date: " + err.Error())
	}
	if checkoutSortable <= checkinSortable {
		return nil, appErrors.NewValidationError("checkout_date must be after checkin_date")
	}

	id := uuid.NewString()
	if r.naturalKeys {
		id = fmt.Sprintf("%s-%s-%s", req.RoomID, req.CheckinDate, req.CheckoutDate)
	}

	now := utils.NowRFC3339()
	reservation := entities.Reservation{
		ItemKeys:             entities.ReservationKeys(id, req.GuestID, req.RoomID, checkinSortable, checkoutSortable),
		ID:                   id,
		RoomID:               req.RoomID,
		CheckinDate:          req.CheckinDate,
		CheckoutDate:         req.CheckoutDate,
		GuestID:              req.GuestID,
		NumberOfGuests:       req.NumberOfGuests,
		Origin:               req.Origin,
		OriginConfirmationID: req.OriginConfirmationID,
		RequiredCrib:         req.RequiredCrib,
		RequiredHighChair:    req.RequiredHighChair,
		RequiredParking:      req.RequiredParking,
		DepartureET:          req.DepartureET,
		ArrivalET:            req.ArrivalET,
		FlightNumber:         req.FlightNumber,
		DiateryRequests:      req.DiateryRequests,
		SpecialRequests:      req.SpecialRequests,
		RequiredTaxi:         req.RequiredTaxi,
		Timestamps:           entities.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	item, err := marshalItem(reservation)
	if err != nil {
		return nil, appErrors.Wrap(err, "failed to marshal reservation")
	}
	if err := r.store.Put(ctx, ports.PutInput{Item: item, IfNotExists: r.naturalKeys}); err != nil {
		if appErrors.IsConflict(err) {
			return nil, appErrors.NewConflictError("reservation already exists for this room and stay")
		}
		return nil, err
	}

	r.logger.Info("Created reservation",
		zap.String("reservationID", reservation.ID),
		zap.String("roomID", reservation.RoomID),
		zap.String("stay", reservation.GSI3SK),
	)
	return &reservation, nil
}

// GetByID returns the reservation with the given id.
func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*entities.Reservation, error) {
	item, err := r.store.Get(ctx, entities.PartitionKey(entities.TypeReservation, id), entities.SortKeyMetadata)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, appErrors.NewNotFoundError("reservation")
	}
	return unmarshalItem[entities.Reservation](item)
}

// Update applies the present fields of the request. Changing the room
// or either stay date rebuilds the full GSI3 composite from the merged
// state, so a partial date change never leaves a stale half in the
// index. The write is conditioned on the updatedAt value that was
// read; a concurrent writer triggers a re-read and retry.
func (r *ReservationRepository) Update(ctx context.Context, id string, req entities.UpdateReservationRequest) (*entities.Reservation, error) {
	var lastErr error
	for attempt := 0; attempt < updateRetryAttempts; attempt++ {
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		assignments, err := r.updateAssignments(current, req)
		if err != nil {
			return nil, err
		}

		item, err := r.store.Update(ctx, ports.UpdateInput{
			PK:              entities.PartitionKey(entities.TypeReservation, id),
			SK:              entities.SortKeyMetadata,
			Assignments:     assignments,
			ExpectUpdatedAt: current.UpdatedAt,
		})
		if err != nil {
			if appErrors.IsConflict(err) {
				lastErr = err
				r.logger.Warn("Concurrent reservation update, retrying",
					zap.String("reservationID", id),
					zap.Int("attempt", attempt+1),
				)
				continue
			}
			return nil, err
		}
		return unmarshalItem[entities.Reservation](item)
	}
	return nil, appErrors.NewConflictError("reservation was modified concurrently").
		WithCause(lastErr)
}

// updateAssignments builds the assignment list for an update against
// the current stored state.
func (r *ReservationRepository) updateAssignments(current *entities.Reservation, req entities.UpdateReservationRequest) (ports.Assignments, error) {
	var assignments ports.Assignments

	roomID := current.RoomID
	checkin := current.CheckinDate
	checkout := current.CheckoutDate
	guestID := current.GuestID

	if req.RoomID != nil {
		roomID = *req.RoomID
		assignments = assignments.SetString("room_id", roomID)
	}
	if req.CheckinDate != nil {
		checkin = *req.CheckinDate
		assignments = assignments.SetString("checkin_date", checkin)
	}
	if req.CheckoutDate != nil {
		checkout = *req.CheckoutDate
		assignments = assignments.SetString("checkout_date", checkout)
	}
	if req.GuestID != nil {
		guestID = *req.GuestID
		assignments = assignments.SetString("guest_id", guestID)
	}
	if req.NumberOfGuests != nil {
		assignments = assignments.Set("number_of_guests", numberValue(*req.NumberOfGuests))
	}
	if req.Origin != nil {
		assignments = assignments.SetString("origin", *req.Origin)
	}
	if req.OriginConfirmationID != nil {
		assignments = assignments.SetString("origin_confirmation_id", *req.OriginConfirmationID)
	}
	if req.RequiredCrib != nil {
		assignments = assignments.Set("required_crib", boolValue(*req.RequiredCrib))
	}
	if req.RequiredHighChair != nil {
		assignments = assignments.Set("required_high_chair", boolValue(*req.RequiredHighChair))
	}
	if req.RequiredParking != nil {
		assignments = assignments.Set("required_parking", boolValue(*req.RequiredParking))
	}
	if req.DepartureET != nil {
		assignments = assignments.SetString("departure_ET", *req.DepartureET)
	}
	if req.ArrivalET != nil {
		assignments = assignments.SetString("arrival_ET", *req.ArrivalET)
	}
	if req.FlightNumber != nil {
		assignments = assignments.SetString("flight_number", *req.FlightNumber)
	}
	if req.DiateryRequests != nil {
		assignments = assignments.SetString("diatery_requests", *req.DiateryRequests)
	}
	if req.SpecialRequests != nil {
		assignments = assignments.SetString("special_requests", *req.SpecialRequests)
	}
	if req.RequiredTaxi != nil {
		assignments = assignments.Set("required_taxi", boolValue(*req.RequiredTaxi))
	}

	if req.RoomID != nil || req.CheckinDate != nil || req.CheckoutDate != nil || req.GuestID != nil {
		checkinSortable, err := r.wireFormat.ToYyyymmdd(checkin)
		if err != nil {
			return nil, appErrors.NewValidationError("invalid checkin_date: " + err.Error())
		}
		checkoutSortable, err := r.wireFormat.ToYyyymmdd(checkout)
		if err != nil {
			return nil, appErrors.NewValidationError("invalid checkout_date: " + err.Error())
		}
		assignments = assignments.SetString("GSI1SK", checkinSortable)
		assignments = assignments.SetString("GSI2PK", entities.PartitionKey(entities.TypeGuest, guestID))
		assignments = assignments.SetString("GSI3PK", entities.PartitionKey(entities.TypeProperty, roomID))
		assignments = assignments.SetString("GSI3SK", fmt.Sprintf("%s#%s", checkinSortable, checkoutSortable))
	}

	return assignments.SetString("updatedAt", utils.NowRFC3339()), nil
}

// Delete removes the reservation with the given id.
func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, entities.PartitionKey(entities.TypeReservation, id), entities.SortKeyMetadata)
}

// List returns all reservations in check-in date order.
func (r *ReservationRepository) List(ctx context.Context) ([]entities.Reservation, error) {
	items, err := r.store.Query(ctx, ports.QueryInput{
		Index:          "GSI1",
		PartitionValue: entities.TypeReservation,
	})
	if err != nil {
		return nil, err
	}
	return unmarshalItems[entities.Reservation](items)
}

// ListByGuest returns a guest's reservations via the inverted parent
// index.
func (r *ReservationRepository) ListByGuest(ctx context.Context, guestID string) ([]entities.Reservation, error) {
	items, err := r.store.Query(ctx, ports.QueryInput{
		Index:          "GSI2",
		PartitionValue: entities.PartitionKey(entities.TypeGuest, guestID),
		Sort: &ports.SortCondition{
			Operator: ports.SortBeginsWith,
			Value:    entities.TypeReservation + "#",
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalItems[entities.Reservation](items)
}

// GetByPropertyAndDates returns the reservation with the exact stay
// window on the property, or nil when none exists. Dates arrive in the
// wire format.
func (r *ReservationRepository) GetByPropertyAndDates(ctx context.Context, propertyID, checkin, checkout string) (*entities.Reservation, error) {
	checkinSortable, err := r.wireFormat.ToYyyymmdd(checkin)
	if err != nil {
		return nil, appErrors.NewValidationError("invalid checkin date: " + err.Error())
	}
	checkoutSortable, err := r.wireFormat.ToYyyymmdd(checkout)
	if err != nil {
		return nil, appErrors.NewValidationError("invalid checkout date: " + err.Error())
	}

	items, err := r.store.Query(ctx, ports.QueryInput{
		Index:          "GSI3",
		PartitionValue: entities.PartitionKey(entities.TypeProperty, propertyID),
		Sort: &ports.SortCondition{
			Operator: ports.SortEquals,
			Value:    fmt.Sprintf("%s#%s", checkinSortable, checkoutSortable),
		},
		Limit: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return unmarshalItem[entities.Reservation](items[0])
}

// ListByDateRange returns the reservations checking in inside
// [from, to]. Dates arrive in the wire format.
func (r *ReservationRepository) ListByDateRange(ctx context.Context, from, to string) ([]entities.Reservation, error) {
	fromSortable, err := r.wireFormat.ToYyyymmdd(from)
	if err != nil {
		return nil, appErrors.NewValidationError("invalid from date: " + err.Error())
	}
	toSortable, err := r.wireFormat.ToYyyymmdd(to)
	if err != nil {
		return nil, appErrors.NewValidationError("invalid to date: " + err.Error())
	}

	items, err := r.store.Query(ctx, ports.QueryInput{
		Index:          "GSI1",
		PartitionValue: entities.TypeReservation,
		Sort: &ports.SortCondition{
			Operator: ports.SortBetween,
			Value:    fromSortable,
			Upper:    toSortable,
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalItems[entities.Reservation](items)
}

// ListByProperty returns a property's reservations ordered by stay
// window.
func (r *ReservationRepository) ListByProperty(ctx context.Context, propertyID string) ([]entities.Reservation, error) {
	items, err := r.store.Query(ctx, ports.QueryInput{
		Index:          "GSI3",
		PartitionValue: entities.PartitionKey(entities.TypeProperty, propertyID),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalItems[entities.Reservation](items)
}
