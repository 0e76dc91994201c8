package dynamodb

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hai-backend/application/ports"
	"hai-backend/domain/entities"
	appErrors "hai-backend/pkg/errors"
	"hai-backend/pkg/utils"
)

// StaffRepository implements ports.StaffRepository on the store.
type StaffRepository struct {
	store  ports.Store
	logger *zap.Logger
}

// NewStaffRepository creates a new StaffRepository.
func NewStaffRepository(store ports.Store, logger *zap.Logger) *StaffRepository {
	return &StaffRepository{store: store, logger: logger}
}

// Create persists a new staff member with a generated id.
func (r *StaffRepository) Create(ctx context.Context, req entities.CreateStaffRequest) (*entities.Staff, error) {
	id := uuid.NewString()
	now := utils.NowRFC3339()
	staff := entities.Staff{
		ItemKeys:        entities.StaffKeys(id),
		ID:              id,
		Name:            req.Name,
		Surname:         req.Surname,
		Type:            req.Type,
		ContactDetails:  req.ContactDetails,
		EfficiencyScore: req.EfficiencyScore,
		OverallQuality:  req.OverallQuality,
		Timestamps:      entities.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	item, err := marshalItem(staff)
	if err != nil {
		return nil, appErrors.Wrap(err, "failed to marshal staff")
	}
	if err := r.store.Put(ctx, ports.PutInput{Item: item}); err != nil {
		return nil, err
	}

	r.logger.Info("Created staff member", zap.String("staffID", staff.ID))
	return &staff, nil
}

// GetByID returns the staff member with the given id.
func (r *StaffRepository) GetByID(ctx context.Context, id string) (*entities.Staff, error) {
	item, err := r.store.Get(ctx, entities.PartitionKey(entities.TypeStaff, id), entities.SortKeyMetadata)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, appErrors.NewNotFoundError("staff member")
	}
	return unmarshalItem[entities.Staff](item)
}

// Update applies the present fields of the request to the staff member.
func (r *StaffRepository) Update(ctx context.Context, id string, req entities.UpdateStaffRequest) (*entities.Staff, error) {
	var assignments ports.Assignments
	if req.Name != nil {
		assignments = assignments.SetString("name", *req.Name)
	}
	if req.Surname != nil {
		assignments = assignments.SetString("surname", *req.Surname)
	}
	if req.Type != nil {
		assignments = assignments.SetString("type", *req.Type)
	}
	if req.ContactDetails != nil {
		assignments = assignments.SetString("contact_details", *req.ContactDetails)
	}
	if req.EfficiencyScore != nil {
		assignments = assignments.Set("efficiency_score", floatValue(*req.EfficiencyScore))
	}
	if req.OverallQuality != nil {
		assignments = assignments.Set("overall_quality", floatValue(*req.OverallQuality))
	}
	assignments = assignments.SetString("updatedAt", utils.NowRFC3339())

	item, err := r.store.Update(ctx, ports.UpdateInput{
		PK:          entities.PartitionKey(entities.TypeStaff, id),
		SK:          entities.SortKeyMetadata,
		Assignments: assignments,
	})
	if err != nil {
		return nil, err
	}
	return unmarshalItem[entities.Staff](item)
}

// Delete removes the staff member with the given id.
func (r *StaffRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, entities.PartitionKey(entities.TypeStaff, id), entities.SortKeyMetadata)
}

// List returns all staff members ordered by id.
func (r *StaffRepository) List(ctx context.Context) ([]entities.Staff, error) {
	items, err := r.store.Query(ctx, ports.QueryInput{
		Index:          "GSI1",
		PartitionValue: entities.TypeStaff,
	})
	if err != nil {
		return nil, err
	}
	return unmarshalItems[entities.Staff](items)
}
