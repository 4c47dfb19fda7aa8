package stats

type DashboardStats struct {
	TotalRooms     int64 `json:"total_rooms"`
	Occupied       int64 `json:"occupied"`
	Available      int64 `json:"available"`
	CheckInsToday  int64 `json:"checkins_today"`
	CheckOutsToday int64 `json:"checkouts_today"`

	// Expected counts go by scheduled date, regardless of whether the guest
	// actually arrived or left yet.
	ExpectedCheckInsToday  int64 `json:"expected_checkins_today"`
	ExpectedCheckOutsToday int64 `json:"expected_checkouts_today"`
}

type RevenueRow struct {
	RoomID         int64   `json:"room_id"`
	RoomName       string  `json:"room_name"`
	PricePerNight  float64 `json:"price_per_night"`
	NightsOccupied int     `json:"nights_occupied"`
	TotalRevenue   float64 `json:"total_revenue"`
}
