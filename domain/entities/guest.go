package entities

// Guest is a person who has, or had, a reservation.
type Guest struct {
	ItemKeys
	ID          string `dynamodbav:"id" json:"id"`
	Name        string `dynamodbav:"name" json:"name"`
	Surname     string `dynamodbav:"surname" json:"surname"`
	Country     string `dynamodbav:"country" json:"country"`
	City        string `dynamodbav:"city" json:"city"`
	Region      string `dynamodbav:"region" json:"region"`
	DateBirth   string `dynamodbav:"date_birth" json:"date_birth"`
	Language    string `dynamodbav:"language" json:"language"`
	Nationality string `dynamodbav:"nationality" json:"nationality"`
	Timestamps
}

// CreateGuestRequest is the POST /guests body.
type CreateGuestRequest struct {
	Name        string `json:"name" validate:"required"`
	Surname     string `json:"surname" validate:"required"`
	Country     string `json:"country"`
	City        string `json:"city"`
	Region      string `json:"region"`
	DateBirth   string `json:"date_birth"`
	Language    string `json:"language"`
	Nationality string `json:"nationality"`
}

// UpdateGuestRequest is the PUT /guests/{id} body.
type UpdateGuestRequest struct {
	Name        *string `json:"name,omitempty"`
	Surname     *string `json:"surname,omitempty"`
	Country     *string `json:"country,omitempty"`
	City        *string `json:"city,omitempty"`
	Region      *string `json:"region,omitempty"`
	DateBirth   *string `json:"date_birth,omitempty"`
	Language    *string `json:"language,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
}
