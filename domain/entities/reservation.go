package entities

// Reservation is a guest's stay in a property. The date fields keep the
// wire format they were received in; only the index sort keys use the
// sortable YYYYMMDD form.
type Reservation struct {
	ItemKeys
	ID                   string `dynamodbav:"id" json:"id"`
	RoomID               string `dynamodbav:"room_id" json:"room_id"`
	CheckinDate          string `dynamodbav:"checkin_date" json:"checkin_date"`
	CheckoutDate         string `dynamodbav:"checkout_date" json:"checkout_date"`
	GuestID              string `dynamodbav:"guest_id" json:"guest_id"`
	NumberOfGuests       int    `dynamodbav:"number_of_guests" json:"number_of_guests"`
	Origin               string `dynamodbav:"origin" json:"origin"`
	OriginConfirmationID string `dynamodbav:"origin_confirmation_id" json:"origin_confirmation_id"`
	RequiredCrib         bool   `dynamodbav:"required_crib" json:"required_crib"`
	RequiredHighChair    bool   `dynamodbav:"required_high_chair" json:"required_high_chair"`
	RequiredParking      bool   `dynamodbav:"required_parking" json:"required_parking"`
	DepartureET          string `dynamodbav:"departure_ET" json:"departure_ET"`
	ArrivalET            string `dynamodbav:"arrival_ET" json:"arrival_ET"`
	FlightNumber         string `dynamodbav:"flight_number" json:"flight_number"`
	DiateryRequests      string `dynamodbav:"diatery_requests" json:"diatery_requests"`
	SpecialRequests      string `dynamodbav:"special_requests" json:"special_requests"`
	RequiredTaxi         bool   `dynamodbav:"required_taxi" json:"required_taxi"`
	Timestamps
}

// CreateReservationRequest is the POST /reservations body. Date format
// validation happens at the HTTP boundary against the configured wire
// format.
type CreateReservationRequest struct {
	RoomID               string `json:"room_id" validate:"required"`
	CheckinDate          string `json:"checkin_date" validate:"required,len=8,numeric"`
	CheckoutDate         string `json:"checkout_date" validate:"required,len=8,numeric"`
	GuestID              string `json:"guest_id" validate:"required"`
	NumberOfGuests       int    `json:"number_of_guests" validate:"min=0"`
	Origin               string `json:"origin"`
	OriginConfirmationID string `json:"origin_confirmation_id"`
	RequiredCrib         bool   `json:"required_crib"`
	RequiredHighChair    bool   `json:"required_high_chair"`
	RequiredParking      bool   `json:"required_parking"`
	DepartureET          string `json:"departure_ET"`
	ArrivalET            string `json:"arrival_ET"`
	FlightNumber         string `json:"flight_number"`
	DiateryRequests      string `json:"diatery_requests"`
	SpecialRequests      string `json:"special_requests"`
	RequiredTaxi         bool   `json:"required_taxi"`
}

// UpdateReservationRequest is the PUT /reservations/{id} body.
type UpdateReservationRequest struct {
	RoomID               *string `json:"room_id,omitempty"`
	CheckinDate          *string `json:"checkin_date,omitempty" validate:"omitempty,len=8,numeric"`
	CheckoutDate         *string `json:"checkout_date,omitempty" validate:"omitempty,len=8,numeric"`
	GuestID              *string `json:"guest_id,omitempty"`
	NumberOfGuests       *int    `json:"number_of_guests,omitempty" validate:"omitempty,min=0"`
	Origin               *string `json:"origin,omitempty"`
	OriginConfirmationID *string `json:"origin_confirmation_id,omitempty"`
	RequiredCrib         *bool   `json:"required_crib,omitempty"`
	RequiredHighChair    *bool   `json:"required_high_chair,omitempty"`
	RequiredParking      *bool   `json:"required_parking,omitempty"`
	DepartureET          *string `json:"departure_ET,omitempty"`
	ArrivalET            *string `json:"arrival_ET,omitempty"`
	FlightNumber         *string `json:"flight_number,omitempty"`
	DiateryRequests      *string `json:"diatery_requests,omitempty"`
	SpecialRequests      *string `json:"special_requests,omitempty"`
	RequiredTaxi         *bool   `json:"required_taxi,omitempty"`
}
