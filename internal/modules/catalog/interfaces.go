package catalog

import (
	"context"

	"bostonsuites/internal/domain"
)

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context, status domain.RoomStatus, typeID int64) ([]domain.Room, error)
}

type RoomTypeRepository interface {
	List(ctx context.Context) ([]domain.RoomType, error)
	GetByID(ctx context.Context, id int64) (*domain.RoomType, error)
}

// BookingGuard answers whether a room still has live bookings; room deletion
// is refused while it does.
type BookingGuard interface {
	HasActiveForRoom(ctx context.Context, roomID int64) (bool, error)
}
