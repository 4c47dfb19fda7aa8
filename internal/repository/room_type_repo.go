package repository

import (
	"context"
	"errors"

	"bostonsuites/internal/domain"

	"gorm.io/gorm"
)

type RoomTypeRepository struct {
	db *gorm.DB
}

func NewRoomTypeRepository(db *gorm.DB) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

func (r *RoomTypeRepository) List(ctx context.Context) ([]domain.RoomType, error) {
	var types []domain.RoomType
	if err := r.db.WithContext(ctx).Order("base_price").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *RoomTypeRepository) GetByID(ctx context.Context, id int64) (*domain.RoomType, error) {
	var rt domain.RoomType
	tx := r.db.WithContext(ctx).First(&rt, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &rt, nil
}
