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

// PropertyRepository implements ports.PropertyRepository on the store.
type PropertyRepository struct {
	store      ports.Store
	wireFormat dates.Format
	logger     *zap.Logger
}

// NewPropertyRepository creates a new PropertyRepository.
func NewPropertyRepository(store ports.Store, wireFormat dates.Format, logger *zap.Logger) *PropertyRepository {
	return &PropertyRepository{
		store:      store,
		wireFormat: wireFormat,
		logger:     logger,
	}
}

// Create persists a new property with a generated id.
func (r *PropertyRepository) Create(ctx context.Context, req entities.CreatePropertyRequest) (*entities.Property, error) {
	id := uuid.NewString()
	now := utils.NowRFC3339()
	property := entities.Property{
		ItemKeys:                 entities.PropertyKeys(id),
		ID:                       id,
		RoomNumber:               req.RoomNumber,
		RoomName:                 req.RoomName,
		SeaView:                  req.SeaView,
		NumOfSingleBeds:          req.NumOfSingleBeds,
		NumOfDoubleBeds:          req.NumOfDoubleBeds,
		NumOfSplitableDoubleBeds: req.NumOfSplitableDoubleBeds,
		Floor:                    req.Floor,
		RoomCount:                req.RoomCount,
		Timestamps:               entities.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	item, err := marshalItem(property)
	if err != nil {
		return nil, appErrors.Wrap(err, "failed to marshal property")
	}
	if err := r.store.Put(ctx, ports.PutInput{Item: item}); err != nil {
		return nil, err
	}

	r.logger.Info("Created property",
		zap.String("propertyID", property.ID),
		zap.String("roomNumber", property.RoomNumber),
	)
	return &property, nil
}

// GetByID returns the property with the given id.
func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*entities.Property, error) {
	item, err := r.store.Get(ctx, entities.PartitionKey(entities.TypeProperty, id), entities.SortKeyMetadata)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, appErrors.NewNotFoundError("property")
	}
	return unmarshalItem[entities.Property](item)
}

// Update applies the present fields of the request to the property.
func (r *PropertyRepository) Update(ctx context.Context, id string, req entities.UpdatePropertyRequest) (*entities.Property, error) {
	var assignments ports.Assignments
	if req.RoomNumber != nil {
		assignments = assignments.SetString("room_number", *req.RoomNumber)
	}
	if req.RoomName != nil {
		assignments = assignments.SetString("room_name", *req.RoomName)
	}
	if req.SeaView != nil {
		assignments = assignments.Set("sea_view", boolValue(*req.SeaView))
	}
	if req.NumOfSingleBeds != nil {
		assignments = assignments.Set("num_of_single_beds", numberValue(*req.NumOfSingleBeds))
	}
	if req.NumOfDoubleBeds != nil {
		assignments = assignments.Set("num_of_double_beds", numberValue(*req.NumOfDoubleBeds))
	}
	if req.NumOfSplitableDoubleBeds != nil {
		assignments = assignments.Set("num_of_splitable_double_beds", numberValue(*req.NumOfSplitableDoubleBeds))
	}
	if req.Floor != nil {
		assignments = assignments.Set("floor", numberValue(*req.Floor))
	}
	if req.RoomCount != nil {
		assignments = assignments.Set("room_count", numberValue(*req.RoomCount))
	}
	assignments = assignments.SetString("updatedAt", utils.NowRFC3339())

	item, err := r.store.Update(ctx, ports.UpdateInput{
		PK:          entities.PartitionKey(entities.TypeProperty, id),
		SK:          entities.SortKeyMetadata,
		Assignments: assignments,
	})
	if err != nil {
		return nil, err
	}
	return unmarshalItem[entities.Property](item)
}

// Delete removes the property with the given id.
func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, entities.PartitionKey(entities.TypeProperty, id), entities.SortKeyMetadata)
}

// List returns all properties ordered by id.
func (r *PropertyRepository) List(ctx context.Context) ([]entities.Property, error) {
	items, err := r.store.Query(ctx, ports.QueryInput{
		Index:          "GSI1",
		PartitionValue: entities.TypeProperty,
	})
	if err != nil {
		return nil, err
	}
	return unmarshalItems[entities.Property](items)
}

// SearchByDateRange returns the properties with no reservation
// overlapping the [from, to] stay window. Dates arrive in the wire
// format and are compared in sortable form.
func (r *PropertyRepository) SearchByDateRange(ctx context.Context, from, to string) ([]entities.Property, error) {
	fromSortable, err := r.wireFormat.ToYyyymmdd(from)
	if err != nil {
		return nil, appErrors.NewValidationError("invalid from date: " + err.Error())
	}
	toSortable, err := r.wireFormat.ToYyyymmdd(to)
	if err != nil {
		return nil, appErrors.NewValidationError("invalid to date: " + err.Error())
	}

	properties, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	available := make([]entities.Property, 0, len(properties))
	for _, property := range properties {
		occupied, err := r.hasOverlap(ctx, property.ID, fromSortable, toSortable)
		if err != nil {
			return nil, err
		}
		if !occupied {
			available = append(available, property)
		}
	}
	return available, nil
}

// hasOverlap reports whether any reservation on the property overlaps
// the window. Checkout day counts as free: a stay ending on the window
// start does not block it.
func (r *PropertyRepository) hasOverlap(ctx context.Context, propertyID, fromSortable, toSortable string) (bool, error) {
	items, err := r.store.Query(ctx, ports.QueryInput{
		Index:          "GSI3",
		PartitionValue: entities.PartitionKey(entities.TypeProperty, propertyID),
	})
	if err != nil {
		return false, err
	}
	reservations, err := unmarshalItems[entities.Reservation](items)
	if err != nil {
		return false, err
	}
	for _, reservation := range reservations {
		checkin, err := r.wireFormat.ToYyyymmdd(reservation.CheckinDate)
		if err != nil {
			continue
		}
		checkout, err := r.wireFormat.ToYyyymmdd(reservation.CheckoutDate)
		if err != nil {
			continue
		}
		if checkin < toSortable && checkout > fromSortable {
			return true, nil
		}
	}
	return false, nil
}
