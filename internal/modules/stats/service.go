package stats

import (
	"context"
	"errors"
	"math"
	"time"

	"bostonsuites/internal/domain"
)

const dateLayout = "2006-01-02"

var (
	ErrValidation   = errors.New("validation error")
	ErrRoomNotFound = errors.New("room not found")
)

// Service derives reporting figures from booking and room state. Pure
// read-side computation; nothing here mutates.
type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	now      func() time.Time
}

func NewService(bookings BookingRepository, rooms RoomRepository) *Service {
	return &Service{bookings: bookings, rooms: rooms, now: time.Now}
}

// Dashboard computes the landing-page counters. A room counts as occupied
// only once its guest has physically checked in, not while merely reserved.
func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	totalRooms, err := s.countRooms(ctx)
	if err != nil {
		return nil, err
	}

	activeRooms, err := s.rooms.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	occupied, err := s.bookings.CountByStatus(ctx, domain.BookingCheckedIn)
	if err != nil {
		return nil, err
	}

	checkIns, err := s.bookings.CountActualOn(ctx, "actual_check_in", today, tomorrow)
	if err != nil {
		return nil, err
	}
	checkOuts, err := s.bookings.CountActualOn(ctx, "actual_check_out", today, tomorrow)
	if err != nil {
		return nil, err
	}

	expIns, err := s.bookings.CountScheduledOn(ctx, "check_in", today)
	if err != nil {
		return nil, err
	}
	expOuts, err := s.bookings.CountScheduledOn(ctx, "check_out", today)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalRooms:             totalRooms,
		Occupied:               occupied,
		Available:              activeRooms - occupied,
		CheckInsToday:          checkIns,
		CheckOutsToday:         checkOuts,
		ExpectedCheckInsToday:  expIns,
		ExpectedCheckOutsToday: expOuts,
	}, nil
}

// Revenue sums overlap-clamped nights per room over [start, end) across its
// revenue-eligible bookings. Revenue is priced at the room's current nightly
// rate, not the booking's historical snapshot, so reports track a room's
// current valuation; the snapshot stays authoritative for what the guest owes.
func (s *Service) Revenue(ctx context.Context, roomID int64, startStr, endStr string) ([]RevenueRow, error) {
	start, err := time.ParseInLocation(dateLayout, startStr, time.UTC)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := time.ParseInLocation(dateLayout, endStr, time.UTC)
	if err != nil {
		return nil, ErrValidation
	}
	if !end.After(start) {
		return nil, ErrValidation
	}

	rooms, err := s.roomsForReport(ctx, roomID)
	if err != nil {
		return nil, err
	}

	rows := make([]RevenueRow, 0, len(rooms))
	for _, room := range rooms {
		bookings, err := s.bookings.ListForRoomInWindow(ctx, room.ID, start, end)
		if err != nil {
			return nil, err
		}

		nights := 0
		for _, b := range bookings {
			nights += overlapNights(b.CheckIn, b.CheckOut, start, end)
		}

		name := room.Number
		if room.Name != "" {
			name = room.Number + " - " + room.Name
		}

		rows = append(rows, RevenueRow{
			RoomID:         room.ID,
			RoomName:       name,
			PricePerNight:  room.PricePerNight,
			NightsOccupied: nights,
			TotalRevenue:   math.Round(float64(nights)*room.PricePerNight*100) / 100,
		})
	}

	return rows, nil
}

func (s *Service) countRooms(ctx context.Context) (int64, error) {
	rooms, err := s.rooms.List(ctx, "", 0)
	if err != nil {
		return 0, err
	}
	return int64(len(rooms)), nil
}

func (s *Service) roomsForReport(ctx context.Context, roomID int64) ([]roomRef, error) {
	if roomID > 0 {
		room, err := s.rooms.GetByID(ctx, roomID)
		if err != nil {
			return nil, err
		}
		if room == nil {
			return nil, ErrRoomNotFound
		}
		return []roomRef{{room.ID, room.Number, room.Name, room.PricePerNight}}, nil
	}

	all, err := s.rooms.List(ctx, "", 0)
	if err != nil {
		return nil, err
	}
	refs := make([]roomRef, 0, len(all))
	for _, r := range all {
		refs = append(refs, roomRef{r.ID, r.Number, r.Name, r.PricePerNight})
	}
	return refs, nil
}

type roomRef struct {
	ID            int64
	Number        string
	Name          string
	PricePerNight float64
}

// overlapNights counts the whole days shared by [checkIn, checkOut) and
// [start, end). Dates are midnight-aligned so the division is exact.
func overlapNights(checkIn, checkOut, start, end time.Time) int {
	from := checkIn
	if start.After(from) {
		from = start
	}
	to := checkOut
	if end.Before(to) {
		to = end
	}
	if !to.After(from) {
		return 0
	}
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}
