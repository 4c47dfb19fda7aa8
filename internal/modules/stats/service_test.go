package stats

import (
	"context"
	"testing"
	"time"

	"bostonsuites/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) CountActualOn(ctx context.Context, column string, dayStart, dayEnd time.Time) (int64, error) {
	args := m.Called(ctx, column, dayStart, dayEnd)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) CountScheduledOn(ctx context.Context, column string, day time.Time) (int64, error) {
	args := m.Called(ctx, column, day)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) ListForRoomInWindow(ctx context.Context, roomID int64, start, end time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, roomID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) List(ctx context.Context, status domain.RoomStatus, typeID int64) ([]domain.Room, error) {
	args := m.Called(ctx, status, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func date(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestService_Dashboard(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms)
	svc.now = func() time.Time { return time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC) }

	today := date("2025-06-02")
	tomorrow := date("2025-06-03")

	allRooms := []domain.Room{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}, {ID: 6}}
	rooms.On("List", mock.Anything, domain.RoomStatus(""), int64(0)).Return(allRooms, nil)
	rooms.On("CountActive", mock.Anything).Return(int64(5), nil)
	bookings.On("CountByStatus", mock.Anything, domain.BookingCheckedIn).Return(int64(2), nil)
	bookings.On("CountActualOn", mock.Anything, "actual_check_in", today, tomorrow).Return(int64(2), nil)
	bookings.On("CountActualOn", mock.Anything, "actual_check_out", today, tomorrow).Return(int64(1), nil)
	bookings.On("CountScheduledOn", mock.Anything, "check_in", today).Return(int64(3), nil)
	bookings.On("CountScheduledOn", mock.Anything, "check_out", today).Return(int64(1), nil)

	s, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(6), s.TotalRooms)
	assert.Equal(t, int64(2), s.Occupied)
	assert.Equal(t, int64(3), s.Available)
	assert.Equal(t, int64(2), s.CheckInsToday)
	assert.Equal(t, int64(1), s.CheckOutsToday)
	assert.Equal(t, int64(3), s.ExpectedCheckInsToday)
	assert.Equal(t, int64(1), s.ExpectedCheckOutsToday)
}

func TestService_Revenue_SingleRoom(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms)

	room := &domain.Room{ID: 1, Number: "101", PricePerNight: 100}
	rooms.On("GetByID", mock.Anything, int64(1)).Return(room, nil)
	bookings.On("ListForRoomInWindow", mock.Anything, int64(1), date("2025-06-01"), date("2025-06-04")).
		Return([]domain.Booking{
			{CheckIn: date("2025-06-01"), CheckOut: date("2025-06-04"), Status: domain.BookingConfirmed},
		}, nil)

	rows, err := svc.Revenue(context.Background(), 1, "2025-06-01", "2025-06-04")

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].NightsOccupied)
	assert.Equal(t, 300.0, rows[0].TotalRevenue)
	assert.Equal(t, "101", rows[0].RoomName)
}

func TestService_Revenue_ClampsToWindow(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms)

	room := &domain.Room{ID: 1, Number: "101", PricePerNight: 80}
	rooms.On("GetByID", mock.Anything, int64(1)).Return(room, nil)
	// Stay 06-01..06-10 clipped by window 06-03..06-05 leaves 2 nights.
	bookings.On("ListForRoomInWindow", mock.Anything, int64(1), date("2025-06-03"), date("2025-06-05")).
		Return([]domain.Booking{
			{CheckIn: date("2025-06-01"), CheckOut: date("2025-06-10"), Status: domain.BookingCheckedIn},
		}, nil)

	rows, err := svc.Revenue(context.Background(), 1, "2025-06-03", "2025-06-05")

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].NightsOccupied)
	assert.Equal(t, 160.0, rows[0].TotalRevenue)
}

func TestService_Revenue_UsesCurrentRoomPrice(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms)

	// Booking snapshot was 100/night; the room now costs 150.
	room := &domain.Room{ID: 1, Number: "101", PricePerNight: 150}
	rooms.On("GetByID", mock.Anything, int64(1)).Return(room, nil)
	bookings.On("ListForRoomInWindow", mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return([]domain.Booking{
			{CheckIn: date("2025-06-01"), CheckOut: date("2025-06-03"), PricePerNight: 100, Status: domain.BookingCheckedOut},
		}, nil)

	rows, err := svc.Revenue(context.Background(), 1, "2025-06-01", "2025-06-04")

	require.NoError(t, err)
	assert.Equal(t, 300.0, rows[0].TotalRevenue)
}

func TestService_Revenue_AllRooms(t *testing.T) {
	bookings := new(MockBookingRepository)
	rooms := new(MockRoomRepository)
	svc := NewService(bookings, rooms)

	all := []domain.Room{
		{ID: 1, Number: "101", Name: "Harbor Suite", PricePerNight: 250},
		{ID: 2, Number: "301", PricePerNight: 80},
	}
	rooms.On("List", mock.Anything, domain.RoomStatus(""), int64(0)).Return(all, nil)
	bookings.On("ListForRoomInWindow", mock.Anything, int64(1), mock.Anything, mock.Anything).
		Return([]domain.Booking{
			{CheckIn: date("2025-06-01"), CheckOut: date("2025-06-03"), Status: domain.BookingConfirmed},
		}, nil)
	bookings.On("ListForRoomInWindow", mock.Anything, int64(2), mock.Anything, mock.Anything).
		Return([]domain.Booking{}, nil)

	rows, err := svc.Revenue(context.Background(), 0, "2025-06-01", "2025-06-08")

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "101 - Harbor Suite", rows[0].RoomName)
	assert.Equal(t, 500.0, rows[0].TotalRevenue)
	assert.Equal(t, 0, rows[1].NightsOccupied)
	assert.Equal(t, 0.0, rows[1].TotalRevenue)
}

func TestService_Revenue_InvalidRange(t *testing.T) {
	svc := NewService(new(MockBookingRepository), new(MockRoomRepository))

	_, err := svc.Revenue(context.Background(), 0, "junk", "2025-06-04")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Revenue(context.Background(), 0, "2025-06-04", "2025-06-04")
	assert.ErrorIs(t, err, ErrValidation)
}
