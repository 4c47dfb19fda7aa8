package booking

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrConflict        = errors.New("booking dates conflict with an existing booking")
	ErrInvalidState    = errors.New("operation not allowed in current booking state")
	ErrNotFound        = errors.New("booking not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomUnavailable = errors.New("room is not available for booking")
)
