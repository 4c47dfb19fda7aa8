package domain

import "time"

// User is a dashboard account. The system runs with a single seeded admin;
// there is no self-registration.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:64"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role" gorm:"size:16"`
	CreatedAt    time.Time `json:"created_at"`
}

const RoleAdmin = "admin"
