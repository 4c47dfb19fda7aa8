package domain

import "time"

// Client is a hotel guest. Phone acts as the natural dedup key: booking
// creation reuses an existing client with the same phone instead of
// inserting a duplicate.
type Client struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name" validate:"required"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone" gorm:"uniqueIndex;size:32" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
