package stats

import (
	"context"
	"time"

	"bostonsuites/internal/domain"
)

type BookingRepository interface {
	CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error)
	CountActualOn(ctx context.Context, column string, dayStart, dayEnd time.Time) (int64, error)
	CountScheduledOn(ctx context.Context, column string, day time.Time) (int64, error)
	ListForRoomInWindow(ctx context.Context, roomID int64, start, end time.Time) ([]domain.Booking, error)
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context, status domain.RoomStatus, typeID int64) ([]domain.Room, error)
	CountActive(ctx context.Context) (int64, error)
}
