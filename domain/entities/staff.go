package entities

// Staff is a member of the operations team.
type Staff struct {
	ItemKeys
	ID              string  `dynamodbav:"id" json:"id"`
	Name            string  `dynamodbav:"name" json:"name"`
	Surname         string  `dynamodbav:"surname" json:"surname"`
	Type            string  `dynamodbav:"type" json:"type"`
	ContactDetails  string  `dynamodbav:"contact_details" json:"contact_details"`
	EfficiencyScore float64 `dynamodbav:"efficiency_score" json:"efficiency_score"`
	OverallQuality  float64 `dynamodbav:"overall_quality" json:"overall_quality"`
	Timestamps
}

// CreateStaffRequest is the POST /staff body.
type CreateStaffRequest struct {
	Name            string  `json:"name" validate:"required"`
	Surname         string  `json:"surname" validate:"required"`
	Type            string  `json:"type" validate:"required"`
	ContactDetails  string  `json:"contact_details"`
	EfficiencyScore float64 `json:"efficiency_score" validate:"min=0"`
	OverallQuality  float64 `json:"overall_quality" validate:"min=0"`
}

// UpdateStaffRequest is the PUT /staff/{id} body.
type UpdateStaffRequest struct {
	Name            *string  `json:"name,omitempty"`
	Surname         *string  `json:"surname,omitempty"`
	Type            *string  `json:"type,omitempty"`
	ContactDetails  *string  `json:"contact_details,omitempty"`
	EfficiencyScore *float64 `json:"efficiency_score,omitempty" validate:"omitempty,min=0"`
	OverallQuality  *float64 `json:"overall_quality,omitempty" validate:"omitempty,min=0"`
}
