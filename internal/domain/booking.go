package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingPendingPayment BookingStatus = "PENDING_PAYMENT"
	BookingConfirmed      BookingStatus = "CONFIRMED"
	BookingCheckedIn      BookingStatus = "CHECKED_IN"
	BookingCheckedOut     BookingStatus = "CHECKED_OUT"
	BookingCancelled      BookingStatus = "CANCELLED"
)

// validTransitions defines the lifecycle state machine for bookings.
// CONFIRMED can move back to PENDING_PAYMENT when a payment is put on hold.
var validTransitions = map[BookingStatus][]BookingStatus{
	BookingPendingPayment: {BookingConfirmed, BookingCancelled},
	BookingConfirmed:      {BookingCheckedIn, BookingPendingPayment, BookingCancelled},
	BookingCheckedIn:      {BookingCheckedOut},
	BookingCheckedOut:     {},
	BookingCancelled:      {},
}

func (s BookingStatus) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s BookingStatus) IsTerminal() bool {
	allowed, ok := validTransitions[s]
	if !ok {
		return true
	}
	return len(allowed) == 0
}

func (s BookingStatus) CanBeCancelled() bool {
	return s.CanTransitionTo(BookingCancelled)
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "UNPAID"
	PaymentPaid   PaymentStatus = "PAID"
	PaymentOnHold PaymentStatus = "ON_HOLD"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentUnpaid, PaymentPaid, PaymentOnHold:
		return PaymentStatus(s), nil
	}
	return "", fmt.Errorf("invalid payment status: %s", s)
}

// Booking holds a stay on a single room over [CheckIn, CheckOut).
// CheckOut is always CheckIn + Nights calendar days; both are stored at UTC
// midnight. PricePerNight and TotalAmount are snapshots taken at create/edit
// time and are not affected by later room price changes.
type Booking struct {
	ID             int64         `json:"id"`
	Reference      string        `json:"reference" gorm:"uniqueIndex;size:16"`
	RoomID         int64         `json:"room_id" gorm:"index:idx_bookings_room_dates"`
	ClientID       int64         `json:"client_id" gorm:"index"`
	CheckIn        time.Time     `json:"check_in" gorm:"index:idx_bookings_room_dates"`
	CheckOut       time.Time     `json:"check_out" gorm:"index:idx_bookings_room_dates"`
	Nights         int           `json:"nights"`
	PricePerNight  float64       `json:"price_per_night"`
	BasePrice      float64       `json:"base_price"`
	TotalAmount    float64       `json:"total_amount"`
	Status         BookingStatus `json:"status" gorm:"index;size:24"`
	PaymentStatus  PaymentStatus `json:"payment_status" gorm:"size:16"`
	ActualCheckIn  *time.Time    `json:"actual_check_in,omitempty"`
	ActualCheckOut *time.Time    `json:"actual_check_out,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	CancelledAt    *time.Time    `json:"cancelled_at,omitempty"`

	Room   *Room   `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	Client *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
}

// Overlaps applies the half-open interval test against another date range.
// Adjacent stays (one's check-out equal to the other's check-in) do not overlap.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return checkIn.Before(b.CheckOut) && checkOut.After(b.CheckIn)
}
