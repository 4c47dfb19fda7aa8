package repository

import (
	"context"
	"errors"

	"bostonsuites/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Room{}, id).Error
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	tx := r.db.WithContext(ctx).Preload("Type").First(&room, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &room, nil
}

// List returns rooms filtered by status and/or type; zero values skip the filter.
func (r *RoomRepository) List(ctx context.Context, status domain.RoomStatus, typeID int64) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).Preload("Type").Order("number")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if typeID > 0 {
		q = q.Where("type_id = ?", typeID)
	}

	var rooms []domain.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// ListActive returns ACTIVE rooms, optionally restricted to one room type.
func (r *RoomRepository) ListActive(ctx context.Context, typeID int64) ([]domain.Room, error) {
	return r.List(ctx, domain.RoomActive, typeID)
}

func (r *RoomRepository) CountActive(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Room{}).
		Where("status = ?", domain.RoomActive).
		Count(&cnt).Error
	return cnt, err
}
