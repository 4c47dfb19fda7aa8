package booking

import (
	"context"
	"time"

	"bostonsuites/internal/domain"
	"bostonsuites/internal/repository"
)

// BookingRepository defines the persistence operations the lifecycle manager needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	Update(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	CountConflicts(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeID int64) (int64, error)
	ConflictingRoomIDs(ctx context.Context, checkIn, checkOut time.Time) ([]int64, error)
	ListWithDetails(ctx context.Context) ([]repository.BookingDetails, error)
}

// RoomRepository defines the room reads the booking engine needs.
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListActive(ctx context.Context, typeID int64) ([]domain.Room, error)
}

// ClientRepository owns guest records; bookings only trigger the phone-keyed upsert.
type ClientRepository interface {
	FindOrCreateByPhone(ctx context.Context, c *domain.Client) error
}

// EventPublisher receives lifecycle events for the dashboard feed. May be nil.
type EventPublisher interface {
	Publish(event string, b *domain.Booking)
}

// Event names sent to the EventPublisher.
const (
	EventCreated    = "booking.created"
	EventUpdated    = "booking.updated"
	EventPayment    = "booking.payment"
	EventCheckedIn  = "booking.checked_in"
	EventCheckedOut = "booking.checked_out"
	EventCancelled  = "booking.cancelled"
)
