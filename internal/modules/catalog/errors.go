package catalog

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("room not found")
	ErrTypeNotFound    = errors.New("room type not found")
	ErrRoomHasBookings = errors.New("room has bookings and cannot be deleted")
)
