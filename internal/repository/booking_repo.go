package repository

import (
	"context"
	"errors"
	"time"

	"bostonsuites/internal/domain"

	"gorm.io/gorm"
)

// NoOverlapConstraint names the Postgres exclusion constraint that rejects
// overlapping stays per room at the database level.
const NoOverlapConstraint = "bookings_no_overlap"

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).First(&b, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &b, nil
}

// CountConflicts returns the number of non-cancelled bookings on roomID whose
// [check_in, check_out) range overlaps [checkIn, checkOut). excludeID removes
// one booking from the conflict set, used when editing a booking so it does
// not conflict with itself; pass 0 to exclude nothing.
func (r *BookingRepository) CountConflicts(ctx context.Context, roomID int64, checkIn, checkOut time.Time, excludeID int64) (int64, error) {
	var cnt int64
	q := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("room_id = ?", roomID).
		Where("status <> ?", domain.BookingCancelled).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&cnt).Error; err != nil {
		return 0, err
	}
	return cnt, nil
}

// ConflictingRoomIDs returns the ids of rooms that have at least one
// non-cancelled booking overlapping [checkIn, checkOut).
func (r *BookingRepository) ConflictingRoomIDs(ctx context.Context, checkIn, checkOut time.Time) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Distinct("room_id").
		Where("status <> ?", domain.BookingCancelled).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Pluck("room_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// BookingDetails is a booking row joined with room and client display fields.
type BookingDetails struct {
	domain.Booking
	RoomNumber  string `json:"room_number"`
	RoomName    string `json:"room_name"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
}

func (r *BookingRepository) ListWithDetails(ctx context.Context) ([]BookingDetails, error) {
	var rows []BookingDetails
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select(`bookings.*,
			rooms.number AS room_number,
			rooms.name AS room_name,
			clients.first_name || ' ' || clients.last_name AS client_name,
			clients.phone AS client_phone`).
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Joins("JOIN clients ON clients.id = bookings.client_id").
		Order("bookings.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BookingRepository) CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("status = ?", status).
		Count(&cnt).Error
	return cnt, err
}

// CountActualOn counts bookings whose actual check-in or check-out timestamp
// falls within [dayStart, dayEnd). column must be one of the two timestamp
// columns; the caller controls it, never request input.
func (r *BookingRepository) CountActualOn(ctx context.Context, column string, dayStart, dayEnd time.Time) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where(column+" >= ? AND "+column+" < ?", dayStart, dayEnd).
		Count(&cnt).Error
	return cnt, err
}

// CountScheduledOn counts bookings whose scheduled date column equals the day,
// regardless of whether the actual event happened. Cancelled bookings are
// excluded.
func (r *BookingRepository) CountScheduledOn(ctx context.Context, column string, day time.Time) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("status <> ?", domain.BookingCancelled).
		Where(column+" = ?", day).
		Count(&cnt).Error
	return cnt, err
}

// ListForRoomInWindow returns revenue-eligible bookings on roomID overlapping
// [start, end). Eligible means the guest committed to the stay: CONFIRMED,
// CHECKED_IN or CHECKED_OUT.
func (r *BookingRepository) ListForRoomInWindow(ctx context.Context, roomID int64, start, end time.Time) ([]domain.Booking, error) {
	var rows []domain.Booking
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Where("status IN ?", []domain.BookingStatus{
			domain.BookingConfirmed,
			domain.BookingCheckedIn,
			domain.BookingCheckedOut,
		}).
		Where("check_in < ? AND check_out > ?", end, start).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// HasActiveForRoom reports whether any non-cancelled booking references roomID.
func (r *BookingRepository) HasActiveForRoom(ctx context.Context, roomID int64) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("room_id = ?", roomID).
		Where("status <> ?", domain.BookingCancelled).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}
