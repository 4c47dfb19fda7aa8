package catalog

import (
	"context"

	"bostonsuites/internal/domain"
)

type Service struct {
	rooms    RoomRepository
	types    RoomTypeRepository
	bookings BookingGuard
}

func NewService(rooms RoomRepository, types RoomTypeRepository, bookings BookingGuard) *Service {
	return &Service{rooms: rooms, types: types, bookings: bookings}
}

func (s *Service) ListRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	return s.types.List(ctx)
}

func (s *Service) ListRooms(ctx context.Context, status string, typeID int64) ([]domain.Room, error) {
	var st domain.RoomStatus
	if status != "" {
		st = domain.RoomStatus(status)
		if !st.IsValid() {
			return nil, ErrValidation
		}
	}
	return s.rooms.List(ctx, st, typeID)
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrNotFound
	}
	return room, nil
}

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	rt, err := s.types.GetByID(ctx, req.TypeID)
	if err != nil {
		return nil, err
	}
	if rt == nil {
		return nil, ErrTypeNotFound
	}

	status := domain.RoomActive
	if req.Status != "" {
		status = domain.RoomStatus(req.Status)
		if !status.IsValid() {
			return nil, ErrValidation
		}
	}

	price := req.PricePerNight
	if price == 0 {
		price = rt.BasePrice
	}

	room := &domain.Room{
		Number:        req.Number,
		Name:          req.Name,
		TypeID:        rt.ID,
		Beds:          req.Beds,
		PricePerNight: price,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		Status:        status,
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	room.Type = rt
	return room, nil
}

// UpdateRoom applies only the supplied fields. A price change never touches
// existing bookings: their snapshots stay as taken at creation or edit time.
func (s *Service) UpdateRoom(ctx context.Context, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrNotFound
	}

	if req.Number != nil {
		room.Number = *req.Number
	}
	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.TypeID != nil {
		rt, err := s.types.GetByID(ctx, *req.TypeID)
		if err != nil {
			return nil, err
		}
		if rt == nil {
			return nil, ErrTypeNotFound
		}
		room.TypeID = rt.ID
		room.Type = rt
	}
	if req.Beds != nil && *req.Beds >= 0 {
		room.Beds = *req.Beds
	}
	if req.PricePerNight != nil && *req.PricePerNight >= 0 {
		room.PricePerNight = *req.PricePerNight
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.ImageURL != nil {
		room.ImageURL = *req.ImageURL
	}
	if req.Status != nil {
		st := domain.RoomStatus(*req.Status)
		if !st.IsValid() {
			return nil, ErrValidation
		}
		room.Status = st
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// DeleteRoom refuses while any non-cancelled booking references the room.
func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if room == nil {
		return ErrNotFound
	}

	has, err := s.bookings.HasActiveForRoom(ctx, id)
	if err != nil {
		return err
	}
	if has {
		return ErrRoomHasBookings
	}

	return s.rooms.Delete(ctx, id)
}
