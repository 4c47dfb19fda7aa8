package catalog

import (
	"context"
	"testing"

	"bostonsuites/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	if room != nil {
		room.ID = 11
	}
	return args.Error(0)
}

func (m *MockRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockRoomRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
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

type MockRoomTypeRepository struct {
	mock.Mock
}

func (m *MockRoomTypeRepository) List(ctx context.Context) ([]domain.RoomType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoomType), args.Error(1)
}

func (m *MockRoomTypeRepository) GetByID(ctx context.Context, id int64) (*domain.RoomType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomType), args.Error(1)
}

type MockBookingGuard struct {
	mock.Mock
}

func (m *MockBookingGuard) HasActiveForRoom(ctx context.Context, roomID int64) (bool, error) {
	args := m.Called(ctx, roomID)
	return args.Bool(0), args.Error(1)
}

func TestService_CreateRoom_InheritsTypeBasePrice(t *testing.T) {
	rooms := new(MockRoomRepository)
	types := new(MockRoomTypeRepository)
	svc := NewService(rooms, types, new(MockBookingGuard))

	types.On("GetByID", mock.Anything, int64(2)).Return(&domain.RoomType{ID: 2, Name: "Double Room", BasePrice: 120}, nil)
	rooms.On("Create", mock.Anything, mock.Anything).Return(nil)

	room, err := svc.CreateRoom(context.Background(), CreateRoomRequest{
		Number: "207",
		TypeID: 2,
		Beds:   2,
	})

	require.NoError(t, err)
	assert.Equal(t, 120.0, room.PricePerNight)
	assert.Equal(t, domain.RoomActive, room.Status)
}

func TestService_CreateRoom_UnknownType(t *testing.T) {
	rooms := new(MockRoomRepository)
	types := new(MockRoomTypeRepository)
	svc := NewService(rooms, types, new(MockBookingGuard))

	types.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	_, err := svc.CreateRoom(context.Background(), CreateRoomRequest{Number: "X", TypeID: 99})
	assert.ErrorIs(t, err, ErrTypeNotFound)
	rooms.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_UpdateRoom_PartialFields(t *testing.T) {
	rooms := new(MockRoomRepository)
	types := new(MockRoomTypeRepository)
	svc := NewService(rooms, types, new(MockBookingGuard))

	existing := &domain.Room{ID: 1, Number: "101", PricePerNight: 250, Status: domain.RoomActive}
	rooms.On("GetByID", mock.Anything, int64(1)).Return(existing, nil)
	rooms.On("Update", mock.Anything, mock.Anything).Return(nil)

	newPrice := 275.0
	newStatus := "MAINTENANCE"
	room, err := svc.UpdateRoom(context.Background(), 1, UpdateRoomRequest{
		PricePerNight: &newPrice,
		Status:        &newStatus,
	})

	require.NoError(t, err)
	assert.Equal(t, "101", room.Number)
	assert.Equal(t, 275.0, room.PricePerNight)
	assert.Equal(t, domain.RoomMaintenance, room.Status)
}

func TestService_UpdateRoom_InvalidStatus(t *testing.T) {
	rooms := new(MockRoomRepository)
	svc := NewService(rooms, new(MockRoomTypeRepository), new(MockBookingGuard))

	rooms.On("GetByID", mock.Anything, int64(1)).Return(&domain.Room{ID: 1}, nil)

	bad := "CLOSED"
	_, err := svc.UpdateRoom(context.Background(), 1, UpdateRoomRequest{Status: &bad})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_DeleteRoom_RefusedWithBookings(t *testing.T) {
	rooms := new(MockRoomRepository)
	guard := new(MockBookingGuard)
	svc := NewService(rooms, new(MockRoomTypeRepository), guard)

	rooms.On("GetByID", mock.Anything, int64(1)).Return(&domain.Room{ID: 1}, nil)
	guard.On("HasActiveForRoom", mock.Anything, int64(1)).Return(true, nil)

	err := svc.DeleteRoom(context.Background(), 1)
	assert.ErrorIs(t, err, ErrRoomHasBookings)
	rooms.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_DeleteRoom_Allowed(t *testing.T) {
	rooms := new(MockRoomRepository)
	guard := new(MockBookingGuard)
	svc := NewService(rooms, new(MockRoomTypeRepository), guard)

	rooms.On("GetByID", mock.Anything, int64(1)).Return(&domain.Room{ID: 1}, nil)
	guard.On("HasActiveForRoom", mock.Anything, int64(1)).Return(false, nil)
	rooms.On("Delete", mock.Anything, int64(1)).Return(nil)

	err := svc.DeleteRoom(context.Background(), 1)
	assert.NoError(t, err)
	rooms.AssertExpectations(t)
}

func TestService_ListRooms_InvalidStatus(t *testing.T) {
	svc := NewService(new(MockRoomRepository), new(MockRoomTypeRepository), new(MockBookingGuard))

	_, err := svc.ListRooms(context.Background(), "BROKEN", 0)
	assert.ErrorIs(t, err, ErrValidation)
}
