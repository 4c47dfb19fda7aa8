package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBookingOverlaps(t *testing.T) {
	b := &Booking{CheckIn: day("2025-06-01"), CheckOut: day("2025-06-04")}

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{"inside", "2025-06-02", "2025-06-03", true},
		{"covers", "2025-05-30", "2025-06-10", true},
		{"starts during", "2025-06-03", "2025-06-05", true},
		{"ends during", "2025-05-30", "2025-06-02", true},
		{"identical", "2025-06-01", "2025-06-04", true},
		{"before", "2025-05-28", "2025-05-31", false},
		{"after", "2025-06-05", "2025-06-07", false},
		{"adjacent after", "2025-06-04", "2025-06-06", false},
		{"adjacent before", "2025-05-30", "2025-06-01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Overlaps(day(tt.checkIn), day(tt.checkOut)))
		})
	}
}

func TestBookingStatusTransitions(t *testing.T) {
	assert.True(t, BookingPendingPayment.CanTransitionTo(BookingConfirmed))
	assert.True(t, BookingPendingPayment.CanTransitionTo(BookingCancelled))
	assert.False(t, BookingPendingPayment.CanTransitionTo(BookingCheckedIn))

	assert.True(t, BookingConfirmed.CanTransitionTo(BookingCheckedIn))
	assert.True(t, BookingConfirmed.CanTransitionTo(BookingPendingPayment))
	assert.True(t, BookingConfirmed.CanTransitionTo(BookingCancelled))

	assert.True(t, BookingCheckedIn.CanTransitionTo(BookingCheckedOut))
	assert.False(t, BookingCheckedIn.CanTransitionTo(BookingCancelled))

	assert.True(t, BookingCheckedOut.IsTerminal())
	assert.True(t, BookingCancelled.IsTerminal())
	assert.False(t, BookingConfirmed.IsTerminal())
}

func TestParseStatuses(t *testing.T) {
	s, err := ParseBookingStatus("CONFIRMED")
	assert.NoError(t, err)
	assert.Equal(t, BookingConfirmed, s)

	_, err = ParseBookingStatus("RESERVED")
	assert.Error(t, err)

	p, err := ParsePaymentStatus("ON_HOLD")
	assert.NoError(t, err)
	assert.Equal(t, PaymentOnHold, p)

	_, err = ParsePaymentStatus("REFUNDED")
	assert.Error(t, err)
}
