package repository

import (
	"context"
	"errors"

	"bostonsuites/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// FindOrCreateByPhone upserts a client keyed by phone number. An existing
// client gets its name and email refreshed from the supplied record; a new
// phone creates one. Idempotent under the unique index on phone.
func (r *ClientRepository) FindOrCreateByPhone(ctx context.Context, c *domain.Client) error {
	var existing domain.Client
	tx := r.db.WithContext(ctx).Where("phone = ?", c.Phone).First(&existing)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return r.db.WithContext(ctx).
				Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "phone"}},
					DoUpdates: clause.AssignmentColumns([]string{"first_name", "last_name", "email", "updated_at"}),
				}).
				Create(c).Error
		}
		return tx.Error
	}

	existing.FirstName = c.FirstName
	existing.LastName = c.LastName
	if c.Email != "" {
		existing.Email = c.Email
	}
	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return err
	}
	*c = existing
	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	var c domain.Client
	tx := r.db.WithContext(ctx).First(&c, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &c, nil
}

func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	var clients []domain.Client
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}
