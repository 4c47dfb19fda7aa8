package catalog

type CreateRoomRequest struct {
	Number      string  `json:"number" validate:"required"`
	Name        string  `json:"name"`
	TypeID      int64   `json:"type_id" validate:"required"`
	Beds        int     `json:"beds" validate:"gte=0"`
	// Zero means inherit the room type's base price.
	PricePerNight float64 `json:"price_per_night" validate:"gte=0"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"image_url"`
	Status        string  `json:"status"`
}

type UpdateRoomRequest struct {
	Number        *string  `json:"number,omitempty"`
	Name          *string  `json:"name,omitempty"`
	TypeID        *int64   `json:"type_id,omitempty"`
	Beds          *int     `json:"beds,omitempty"`
	PricePerNight *float64 `json:"price_per_night,omitempty"`
	Description   *string  `json:"description,omitempty"`
	ImageURL      *string  `json:"image_url,omitempty"`
	Status        *string  `json:"status,omitempty"`
}
