package entities

// Message is a guest communication attached to a reservation.
type Message struct {
	ItemKeys
	ID                   string `dynamodbav:"id" json:"id"`
	GuestID              string `dynamodbav:"guest_id" json:"guest_id"`
	ReservationID        string `dynamodbav:"reservation_id" json:"reservation_id"`
	CommunicationChannel string `dynamodbav:"communication_channel" json:"communication_channel"`
	Message              string `dynamodbav:"message" json:"message"`
	Date                 string `dynamodbav:"date" json:"date"`
	Timestamps
}

// CreateMessageRequest is the POST /messages body.
type CreateMessageRequest struct {
	GuestID              string `json:"guest_id" validate:"required"`
	ReservationID        string `json:"reservation_id" validate:"required"`
	CommunicationChannel string `json:"communication_channel" validate:"required"`
	Message              string `json:"message" validate:"required"`
	Date                 string `json:"date" validate:"required,len=8,numeric"`
}

// UpdateMessageRequest is the PUT /messages/{id} body.
type UpdateMessageRequest struct {
	GuestID              *string `json:"guest_id,omitempty"`
	ReservationID        *string `json:"reservation_id,omitempty"`
	CommunicationChannel *string `json:"communication_channel,omitempty"`
	Message              *string `json:"message,omitempty"`
	Date                 *string `json:"date,omitempty" validate:"omitempty,len=8,numeric"`
}
