package domain

import "time"

type RoomStatus string

const (
	RoomActive      RoomStatus = "ACTIVE"
	RoomMaintenance RoomStatus = "MAINTENANCE"
)

func (s RoomStatus) IsValid() bool {
	return s == RoomActive || s == RoomMaintenance
}

// RoomType is reference data shared by rooms of the same category.
// BasePrice is the default nightly rate for new rooms of this type.
type RoomType struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name" validate:"required"`
	BasePrice        float64   `json:"base_price" validate:"gte=0"`
	CapacityAdults   int       `json:"capacity_adults"`
	CapacityChildren int       `json:"capacity_children"`
	Features         string    `json:"features,omitempty" gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at"`
}

type Room struct {
	ID            int64      `json:"id"`
	Number        string     `json:"number" validate:"required"`
	Name          string     `json:"name,omitempty"`
	TypeID        int64      `json:"type_id" gorm:"index"`
	Beds          int        `json:"beds"`
	PricePerNight float64    `json:"price_per_night" validate:"gte=0"`
	Description   string     `json:"description,omitempty" gorm:"type:text"`
	ImageURL      string     `json:"image_url,omitempty"`
	Status        RoomStatus `json:"status" gorm:"index;size:16"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	Type *RoomType `json:"type,omitempty" gorm:"foreignKey:TypeID"`
}
