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

// TaskRepository implements ports.TaskRepository on the store.
type TaskRepository struct {
	store  ports.Store
	logger *zap.Logger
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(store ports.Store, logger *zap.Logger) *TaskRepository {
	return &TaskRepository{store: store, logger: logger}
}

// Create persists a new task with a generated id.
func (r *TaskRepository) Create(ctx context.Context, req entities.CreateTaskRequest) (*entities.Task, error) {
	id := uuid.NewString()
	now := utils.NowRFC3339()
	task := entities.Task{
		ItemKeys:          entities.TaskKeys(id, req.ReservationInfoID),
		ID:                id,
		StaffID:           req.StaffID,
		ReservationInfoID: req.ReservationInfoID,
		TaskName:          req.TaskName,
		TaskDescription:   req.TaskDescription,
		Timestamps:        entities.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	item, err := marshalItem(task)
	if err != nil {
		return nil, appErrors.Wrap(err, "failed to marshal task")
	}
	if err := r.store.Put(ctx, ports.PutInput{Item: item}); err != nil {
		return nil, err
	}

	r.logger.Info("Created task",
		zap.String("taskID", task.ID),
		zap.String("staffID", task.StaffID),
	)
	return &task, nil
}

// GetByID returns the task with the given id.
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*entities.Task, error) {
	item, err := r.store.Get(ctx, entities.PartitionKey(entities.TypeTask, id), entities.SortKeyMetadata)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, appErrors.NewNotFoundError("task")
	}
	return unmarshalItem[entities.Task](item)
}

// Update applies the present fields of the request. Re-parenting a
// task rewrites its inverted index key.
func (r *TaskRepository) Update(ctx context.Context, id string, req entities.UpdateTaskRequest) (*entities.Task, error) {
	var assignments ports.Assignments
	if req.StaffID != nil {
		assignments = assignments.SetString("staff_id", *req.StaffID)
	}
	if req.ReservationInfoID != nil {
		assignments = assignments.SetString("reservation_info_id", *req.ReservationInfoID)
		assignments = assignments.SetString("GSI2PK", entities.PartitionKey(entities.TypeReservation, *req.ReservationInfoID))
	}
	if req.TaskName != nil {
		assignments = assignments.SetString("task_name", *req.TaskName)
	}
	if req.TaskDescription != nil {
		assignments = assignments.SetString("task_description", *req.TaskDescription)
	}
	if req.TaskResolutionDescription != nil {
		assignments = assignments.SetString("task_resolution_description", *req.TaskResolutionDescription)
	}
	assignments = assignments.SetString("updatedAt", utils.NowRFC3339())

	item, err := r.store.Update(ctx, ports.UpdateInput{
		PK:          entities.PartitionKey(entities.TypeTask, id),
		SK:          entities.SortKeyMetadata,
		Assignments: assignments,
	})
	if err != nil {
		return nil, err
	}
	return unmarshalItem[entities.Task](item)
}

// Delete removes the task with the given id.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, entities.PartitionKey(entities.TypeTask, id), entities.SortKeyMetadata)
}

// List returns all tasks ordered by id.
func (r *TaskRepository) List(ctx context.Context) ([]entities.Task, error) {
	items, err := r.store.Query(ctx, ports.QueryInput{
		Index:          "GSI1",
		PartitionValue: entities.TypeTask,
	})
	if err != nil {
		return nil, err
	}
	return unmarshalItems[entities.Task](items)
}

// ListByReservation returns a reservation's tasks via the inverted
// parent index.
func (r *TaskRepository) ListByReservation(ctx context.Context, reservationID string) ([]entities.Task, error) {
	items, err := r.store.Query(ctx, ports.QueryInput{
		Index:          "GSI2",
		PartitionValue: entities.PartitionKey(entities.TypeReservation, reservationID),
		Sort: &ports.SortCondition{
			Operator: ports.SortBeginsWith,
			Value:    entities.TypeTask + "#",
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalItems[entities.Task](items)
}
