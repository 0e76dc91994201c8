package ports

import (
	"context"

	"hai-backend/domain/entities"
)

// PropertyRepository manages property records.
type PropertyRepository interface {
	Create(ctx context.Context, req entities.CreatePropertyRequest) (*entities.Property, error)
	GetByID(ctx context.Context, id string) (*entities.Property, error)
	Update(ctx context.Context, id string, req entities.UpdatePropertyRequest) (*entities.Property, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Property, error)
	// SearchByDateRange returns the properties with no reservation
	// overlapping the given stay window. Dates are in the configured
	// wire format.
	SearchByDateRange(ctx context.Context, from, to string) ([]entities.Property, error)
}

// GuestRepository manages guest records.
type GuestRepository interface {
	Create(ctx context.Context, req entities.CreateGuestRequest) (*entities.Guest, error)
	GetByID(ctx context.Context, id string) (*entities.Guest, error)
	Update(ctx context.Context, id string, req entities.UpdateGuestRequest) (*entities.Guest, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Guest, error)
	ListByReservation(ctx context.Context, reservationID string) ([]entities.Guest, error)
}

// ReservationRepository manages reservation records.
type ReservationRepository interface {
	Create(ctx context.Context, req entities.CreateReservationRequest) (*entities.Reservation, error)
	GetByID(ctx context.Context, id string) (*entities.Reservation, error)
	Update(ctx context.Context, id string, req entities.UpdateReservationRequest) (*entities.Reservation, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Reservation, error)
	ListByGuest(ctx context.Context, guestID string) ([]entities.Reservation, error)
	// GetByPropertyAndDates returns the reservation with the exact
	// stay window on the property, or nil when none exists.
	GetByPropertyAndDates(ctx context.Context, propertyID, checkin, checkout string) (*entities.Reservation, error)
	// ListByDateRange returns the reservations whose check-in date
	// falls inside [from, to].
	ListByDateRange(ctx context.Context, from, to string) ([]entities.Reservation, error)
	// ListByProperty returns the reservations on a property ordered by
	// stay window.
	ListByProperty(ctx context.Context, propertyID string) ([]entities.Reservation, error)
}

// MessageRepository manages guest communication records.
type MessageRepository interface {
	Create(ctx context.Context, req entities.CreateMessageRequest) (*entities.Message, error)
	GetByID(ctx context.Context, id string) (*entities.Message, error)
	Update(ctx context.Context, id string, req entities.UpdateMessageRequest) (*entities.Message, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Message, error)
	ListByReservation(ctx context.Context, reservationID string) ([]entities.Message, error)
	ListByDate(ctx context.Context, date string) ([]entities.Message, error)
}

// StaffRepository manages staff records.
type StaffRepository interface {
	Create(ctx context.Context, req entities.CreateStaffRequest) (*entities.Staff, error)
	GetByID(ctx context.Context, id string) (*entities.Staff, error)
	Update(ctx context.Context, id string, req entities.UpdateStaffRequest) (*entities.Staff, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Staff, error)
}

// TaskRepository manages task records.
type TaskRepository interface {
	Create(ctx context.Context, req entities.CreateTaskRequest) (*entities.Task, error)
	GetByID(ctx context.Context, id string) (*entities.Task, error)
	Update(ctx context.Context, id string, req entities.UpdateTaskRequest) (*entities.Task, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Task, error)
	ListByReservation(ctx context.Context, reservationID string) ([]entities.Task, error)
}

// EmailPublisher forwards parsed inbound email to downstream consumers.
type EmailPublisher interface {
	Publish(ctx context.Context, email InboundEmail) error
}

// InboundEmail is the parsed form of a received email message.
type InboundEmail struct {
	From    string `json:"from"`
	Subject string `json:"subject"`
	Date    string `json:"date"`
	Body    string `json:"body"`
}
