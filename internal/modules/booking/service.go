package booking

import (
	"context"
	"math"
	"strings"
	"time"

	"bostonsuites/internal/domain"
	"bostonsuites/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const dateLayout = "2006-01-02"

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	clients  ClientRepository
	events   EventPublisher
	locks    *roomLocks
}

func NewService(bookings BookingRepository, rooms RoomRepository, clients ClientRepository, events EventPublisher) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		clients:  clients,
		events:   events,
		locks:    newRoomLocks(),
	}
}

// parseStay converts a check-in date string and a nights count into the
// half-open stay interval [checkIn, checkOut). Nights are whole calendar
// days, not elapsed time.
func parseStay(checkIn string, nights int) (time.Time, time.Time, error) {
	if nights < 1 {
		return time.Time{}, time.Time{}, ErrValidation
	}
	in, err := time.ParseInLocation(dateLayout, checkIn, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidation
	}
	return in, in.AddDate(0, 0, nights), nil
}

// CheckAvailability returns every ACTIVE room (optionally filtered by type)
// with no overlapping non-cancelled booking over the requested range.
func (s *Service) CheckAvailability(ctx context.Context, req CheckAvailabilityRequest) (*AvailabilityResult, error) {
	checkIn, checkOut, err := parseStay(req.CheckIn, req.Nights)
	if err != nil {
		return nil, err
	}

	rooms, err := s.rooms.ListActive(ctx, req.RoomTypeID)
	if err != nil {
		return nil, err
	}

	busyIDs, err := s.bookings.ConflictingRoomIDs(ctx, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	busy := make(map[int64]struct{}, len(busyIDs))
	for _, id := range busyIDs {
		busy[id] = struct{}{}
	}

	available := make([]domain.Room, 0, len(rooms))
	for _, r := range rooms {
		if _, taken := busy[r.ID]; !taken {
			available = append(available, r)
		}
	}

	return &AvailabilityResult{
		AvailableRooms: available,
		Meta: AvailabilityMeta{
			CheckIn:  checkIn.Format(dateLayout),
			CheckOut: checkOut.Format(dateLayout),
			Nights:   req.Nights,
		},
	}, nil
}

// Create reserves a room. The overlap check runs again here under the room's
// lock, independent of any earlier availability query the caller made, so a
// room cannot be double-booked by racing submissions.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	checkIn, checkOut, err := parseStay(req.CheckIn, req.Nights)
	if err != nil {
		return nil, err
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if room.Status != domain.RoomActive {
		return nil, ErrRoomUnavailable
	}

	unlock := s.locks.lock(room.ID)
	defer unlock()

	conflicts, err := s.bookings.CountConflicts(ctx, room.ID, checkIn, checkOut, 0)
	if err != nil {
		return nil, err
	}
	if conflicts > 0 {
		return nil, ErrConflict
	}

	client := &domain.Client{
		FirstName: req.Guest.FirstName,
		LastName:  req.Guest.LastName,
		Email:     req.Guest.Email,
		Phone:     req.Guest.Phone,
	}
	if err := s.clients.FindOrCreateByPhone(ctx, client); err != nil {
		return nil, err
	}

	pricePerNight := req.PricePerNight
	if pricePerNight == 0 {
		pricePerNight = room.PricePerNight
	}
	basePrice := roundCents(pricePerNight * float64(req.Nights))
	total := basePrice
	if req.FinalPrice > 0 {
		total = roundCents(req.FinalPrice)
	}

	b := &domain.Booking{
		Reference:     newReference(),
		RoomID:        room.ID,
		ClientID:      client.ID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Nights:        req.Nights,
		PricePerNight: pricePerNight,
		BasePrice:     basePrice,
		TotalAmount:   total,
		Status:        domain.BookingPendingPayment,
		PaymentStatus: domain.PaymentUnpaid,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, mapConstraintError(err)
	}

	s.publish(EventCreated, b)
	return b, nil
}

// Edit rewrites a pending booking in place: room, dates, guest info and the
// price snapshot. Only PENDING_PAYMENT bookings may be edited. The conflict
// check excludes the booking itself so a no-op edit never self-conflicts.
func (s *Service) Edit(ctx context.Context, bookingID int64, req EditBookingRequest) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	if b.Status != domain.BookingPendingPayment {
		return nil, ErrInvalidState
	}

	checkIn, checkOut, err := parseStay(req.CheckIn, req.Nights)
	if err != nil {
		return nil, err
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if room.Status != domain.RoomActive {
		return nil, ErrRoomUnavailable
	}

	b, unlock, err := s.lockBooking(ctx, bookingID, room.ID)
	if err != nil {
		return nil, err
	}
	defer unlock()
	if b.Status != domain.BookingPendingPayment {
		return nil, ErrInvalidState
	}

	conflicts, err := s.bookings.CountConflicts(ctx, room.ID, checkIn, checkOut, b.ID)
	if err != nil {
		return nil, err
	}
	if conflicts > 0 {
		return nil, ErrConflict
	}

	client := &domain.Client{
		FirstName: req.Guest.FirstName,
		LastName:  req.Guest.LastName,
		Email:     req.Guest.Email,
		Phone:     req.Guest.Phone,
	}
	if err := s.clients.FindOrCreateByPhone(ctx, client); err != nil {
		return nil, err
	}

	pricePerNight := req.PricePerNight
	if pricePerNight == 0 {
		pricePerNight = room.PricePerNight
	}
	basePrice := roundCents(pricePerNight * float64(req.Nights))
	total := basePrice
	if req.FinalPrice > 0 {
		total = roundCents(req.FinalPrice)
	}

	b.RoomID = room.ID
	b.ClientID = client.ID
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	b.Nights = req.Nights
	b.PricePerNight = pricePerNight
	b.BasePrice = basePrice
	b.TotalAmount = total

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, mapConstraintError(err)
	}

	s.publish(EventUpdated, b)
	return b, nil
}

// SetPaymentStatus moves the payment axis and applies the coupled lifecycle
// transition: PAID confirms a pending booking, ON_HOLD demotes a confirmed one
// back to pending. Payment changes are rejected once the booking is cancelled,
// and a hold is rejected once the guest has checked in.
func (s *Service) SetPaymentStatus(ctx context.Context, bookingID int64, status domain.PaymentStatus) (*domain.Booking, error) {
	if status != domain.PaymentPaid && status != domain.PaymentOnHold {
		return nil, ErrValidation
	}

	b, unlock, err := s.lockBooking(ctx, bookingID, 0)
	if err != nil {
		return nil, err
	}
	defer unlock()
	if b.Status == domain.BookingCancelled {
		return nil, ErrInvalidState
	}

	switch status {
	case domain.PaymentPaid:
		b.PaymentStatus = domain.PaymentPaid
		if b.Status == domain.BookingPendingPayment {
			b.Status = domain.BookingConfirmed
		}
	case domain.PaymentOnHold:
		if b.Status == domain.BookingCheckedIn || b.Status == domain.BookingCheckedOut {
			return nil, ErrInvalidState
		}
		b.PaymentStatus = domain.PaymentOnHold
		if b.Status == domain.BookingConfirmed {
			b.Status = domain.BookingPendingPayment
		}
	}

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	s.publish(EventPayment, b)
	return b, nil
}

// CheckIn is legal only from CONFIRMED and stamps the actual arrival instant.
func (s *Service) CheckIn(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, unlock, err := s.lockBooking(ctx, bookingID, 0)
	if err != nil {
		return nil, err
	}
	defer unlock()
	if !b.Status.CanTransitionTo(domain.BookingCheckedIn) {
		return nil, ErrInvalidState
	}

	now := time.Now().UTC()
	b.Status = domain.BookingCheckedIn
	b.ActualCheckIn = &now

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	s.publish(EventCheckedIn, b)
	return b, nil
}

// CheckOut is legal only from CHECKED_IN and stamps the actual departure instant.
func (s *Service) CheckOut(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, unlock, err := s.lockBooking(ctx, bookingID, 0)
	if err != nil {
		return nil, err
	}
	defer unlock()
	if !b.Status.CanTransitionTo(domain.BookingCheckedOut) {
		return nil, ErrInvalidState
	}

	now := time.Now().UTC()
	b.Status = domain.BookingCheckedOut
	b.ActualCheckOut = &now

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	s.publish(EventCheckedOut, b)
	return b, nil
}

// Cancel ends a booking from any non-terminal state. Cancelled bookings drop
// out of every conflict query, so the room frees up immediately.
func (s *Service) Cancel(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, unlock, err := s.lockBooking(ctx, bookingID, 0)
	if err != nil {
		return nil, err
	}
	defer unlock()
	if !b.Status.CanBeCancelled() {
		return nil, ErrInvalidState
	}

	now := time.Now().UTC()
	b.Status = domain.BookingCancelled
	b.CancelledAt = &now

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	s.publish(EventCancelled, b)
	return b, nil
}

func (s *Service) Get(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *Service) List(ctx context.Context) ([]repository.BookingDetails, error) {
	return s.bookings.ListWithDetails(ctx)
}

// lockBooking takes the mutex for the booking's room and re-reads the row
// under it, so state checks and the write run against the latest version and
// serialize with every other mutation on that room. withRoomID additionally
// locks a second room (the target of an edit); zero means only the booking's
// own. The loop restarts when a concurrent edit moved the booking to another
// room between the read and the lock.
func (s *Service) lockBooking(ctx context.Context, bookingID, withRoomID int64) (*domain.Booking, func(), error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	if b == nil {
		return nil, nil, ErrNotFound
	}

	for {
		other := withRoomID
		if other == 0 {
			other = b.RoomID
		}
		unlock := s.locks.lockPair(b.RoomID, other)

		fresh, err := s.bookings.GetByID(ctx, bookingID)
		if err != nil {
			unlock()
			return nil, nil, err
		}
		if fresh == nil {
			unlock()
			return nil, nil, ErrNotFound
		}
		if fresh.RoomID == b.RoomID {
			return fresh, unlock, nil
		}

		unlock()
		b = fresh
	}
}

func (s *Service) publish(event string, b *domain.Booking) {
	if s.events != nil {
		s.events.Publish(event, b)
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// newReference builds the short booking code shown on the dashboard.
func newReference() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}

// mapConstraintError converts a violation of the Postgres overlap constraint
// into ErrConflict. Other constraint failures, such as a duplicate reference,
// pass through unchanged. SQLite has no exclusion constraints; there the
// per-room lock alone guarantees no overlap lands.
func mapConstraintError(err error) error {
	if pgErr, ok := err.(*pgconn.PgError); ok {
		if pgErr.Code == "23P01" && pgErr.ConstraintName == repository.NoOverlapConstraint {
			return ErrConflict
		}
	}
	return err
}
