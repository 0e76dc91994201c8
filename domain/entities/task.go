package entities

// Task is a unit of work assigned to a staff member, optionally tied
// to a reservation.
type Task struct {
	ItemKeys
	ID                        string `dynamodbav:"id" json:"id"`
	StaffID                   string `dynamodbav:"staff_id" json:"staff_id"`
	ReservationInfoID         string `dynamodbav:"reservation_info_id" json:"reservation_info_id"`
	TaskName                  string `dynamodbav:"task_name" json:"task_name"`
	TaskDescription           string `dynamodbav:"task_description" json:"task_description"`
	TaskResolutionDescription string `dynamodbav:"task_resolution_description" json:"task_resolution_description"`
	Timestamps
}

// CreateTaskRequest is the POST /tasks body.
type CreateTaskRequest struct {
	StaffID           string `json:"staff_id" validate:"required"`
	ReservationInfoID string `json:"reservation_info_id"`
	TaskName          string `json:"task_name" validate:"required"`
	TaskDescription   string `json:"task_description"`
}

// UpdateTaskRequest is the PUT /tasks/{id} body.
type UpdateTaskRequest struct {
	StaffID                   *string `json:"staff_id,omitempty"`
	ReservationInfoID         *string `json:"reservation_info_id,omitempty"`
	TaskName                  *string `json:"task_name,omitempty"`
	TaskDescription           *string `json:"task_description,omitempty"`
	TaskResolutionDescription *string `json:"task_resolution_description,omitempty"`
}
