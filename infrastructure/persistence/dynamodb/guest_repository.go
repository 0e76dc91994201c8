package dynamodb

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hai-backend/application/ports"
	"hai-backend/domain/entities"
	appErrors "hai-backend/pkg/errors"
	"hai-backend/pkg/utils"
)

// GuestRepository implements ports.GuestRepository on the store.
type GuestRepository struct {
	store  ports.Store
	logger *zap.Logger
}

// NewGuestRepository creates a new GuestRepository.
func NewGuestRepository(store ports.Store, logger *zap.Logger) *GuestRepository {
	return &GuestRepository{store: store, logger: logger}
}

// Create persists a new guest with a generated id.
func (r *GuestRepository) Create(ctx context.Context, req entities.CreateGuestRequest) (*entities.Guest, error) {
	id := uuid.NewString()
	now := utils.NowRFC3339()
	guest := entities.Guest{
		ItemKeys:    entities.GuestKeys(id),
		ID:          id,
		Name:        req.Name,
		Surname:     req.Surname,
		Country:     req.Country,
		City:        req.City,
		Region:      req.Region,
		DateBirth:   req.DateBirth,
		Language:    req.Language,
		Nationality: req.Nationality,
		Timestamps:  entities.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	item, err := marshalItem(guest)
	if err != nil {
		return nil, appErrors.Wrap(err, "failed to marshal guest")
	}
	if err := r.store.Put(ctx, ports.PutInput{Item: item}); err != nil {
		return nil, err
	}

	r.logger.Info("Created guest", zap.String("guestID", guest.ID))
	return &guest, nil
}

// GetByID returns the guest with the given id.
func (r *GuestRepository) GetByID(ctx context.Context, id string) (*entities.Guest, error) {
	item, err := r.store.Get(ctx, entities.PartitionKey(entities.TypeGuest, id), entities.SortKeyMetadata)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, appErrors.NewNotFoundError("guest")
	}
	return unmarshalItem[entities.Guest](item)
}

// Update applies the present fields of the request to the guest.
func (r *GuestRepository) Update(ctx context.Context, id string, req entities.UpdateGuestRequest) (*entities.Guest, error) {
	var assignments ports.Assignments
	if req.Name != nil {
		assignments = assignments.SetString("name", *req.Name)
	}
	if req.Surname != nil {
		assignments = assignments.SetString("surname", *req.Surname)
	}
	if req.Country != nil {
		assignments = assignments.SetString("country", *req.Country)
	}
	if req.City != nil {
		assignments = assignments.SetString("city", *req.City)
	}
	if req.Region != nil {
		assignments = assignments.SetString("region", *req.Region)
	}
	if req.DateBirth != nil {
		assignments = assignments.SetString("date_birth", *req.DateBirth)
	}
	if req.Language != nil {
		assignments = assignments.SetString("language", *req.Language)
	}
	if req.Nationality != nil {
		assignments = assignments.SetString("nationality", *req.Nationality)
	}
	assignments = assignments.SetString("updatedAt", utils.NowRFC3339())

	item, err := r.store.Update(ctx, ports.UpdateInput{
		PK:          entities.PartitionKey(entities.TypeGuest, id),
		SK:          entities.SortKeyMetadata,
		Assignments: assignments,
	})
	if err != nil {
		return nil, err
	}
	return unmarshalItem[entities.Guest](item)
}

// Delete removes the guest with the given id.
func (r *GuestRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, entities.PartitionKey(entities.TypeGuest, id), entities.SortKeyMetadata)
}

// List returns all guests ordered by id.
func (r *GuestRepository) List(ctx context.Context) ([]entities.Guest, error) {
	items, err := r.store.Query(ctx, ports.QueryInput{
		Index:          "GSI1",
		PartitionValue: entities.TypeGuest,
	})
	if err != nil {
		return nil, err
	}
	return unmarshalItems[entities.Guest](items)
}

// ListByReservation returns the guests attached to a reservation via
// the inverted parent index.
func (r *GuestRepository) ListByReservation(ctx context.Context, reservationID string) ([]entities.Guest, error) {
	items, err := r.store.Query(ctx, ports.QueryInput{
		Index:          "GSI2",
		PartitionValue: entities.PartitionKey(entities.TypeReservation, reservationID),
		Sort: &ports.SortCondition{
			Operator: ports.SortBeginsWith,
			Value:    entities.TypeGuest + "#",
		},
	})
	if err != nil {
		return nil, err
	}
	guests := make([]entities.Guest, 0, len(items))
	for _, item := range items {
		guest, err := unmarshalItem[entities.Guest](item)
		if err != nil {
			return nil, err
		}
		// Guard against other entity types sharing the prefix.
		if !strings.HasPrefix(guest.PK, entities.TypeGuest+"#") {
			continue
		}
		guests = append(guests, *guest)
	}
	return guests, nil
}
