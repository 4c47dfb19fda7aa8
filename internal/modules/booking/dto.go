package booking

import "bostonsuites/internal/domain"

type GuestInfo struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"required"`
}

type CreateBookingRequest struct {
	RoomID  int64     `json:"room_id" validate:"required"`
	Guest   GuestInfo `json:"guest" validate:"required"`
	CheckIn string    `json:"check_in" validate:"required"`
	Nights  int       `json:"nights" validate:"required,gte=1"`

	// Optional price overrides. Zero PricePerNight means use the room's
	// current rate; zero FinalPrice means use the computed base price.
	PricePerNight float64 `json:"price_per_night" validate:"gte=0"`
	FinalPrice    float64 `json:"final_price" validate:"gte=0"`
}

// EditBookingRequest carries the same fields as creation; every field is
// applied in place to the pending booking.
type EditBookingRequest = CreateBookingRequest

type CheckAvailabilityRequest struct {
	RoomTypeID int64  `json:"room_type_id"`
	CheckIn    string `json:"check_in" validate:"required"`
	Nights     int    `json:"nights" validate:"required,gte=1"`
}

type AvailabilityMeta struct {
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Nights   int    `json:"nights"`
}

type AvailabilityResult struct {
	AvailableRooms []domain.Room    `json:"available_rooms"`
	Meta           AvailabilityMeta `json:"meta"`
}

type SetPaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required"`
}
