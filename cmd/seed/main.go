package main

import (
	"log"
	"os"

	"bostonsuites/internal/database"
	"bostonsuites/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// Seeds the Boston Suites property: room types, the initial rooms and the
// admin account. Safe to re-run; existing data is wiped first.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "boston_suites.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM clients")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM room_types")
	db.Exec("DELETE FROM users")

	log.Println("Creating admin user...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Username:     "admin",
		PasswordHash: string(adminHash),
		FullName:     "Front Desk Admin",
		Role:         domain.RoleAdmin,
	}
	db.Create(&admin)
	log.Println("Admin created: admin / admin123")

	log.Println("Creating room types...")
	luxury := domain.RoomType{Name: "Luxury Suite", BasePrice: 250, CapacityAdults: 2, CapacityChildren: 1, Features: `["Ocean View","King Bed"]`}
	double := domain.RoomType{Name: "Double Room", BasePrice: 120, CapacityAdults: 2, CapacityChildren: 2, Features: `["City View","2 Queen Beds"]`}
	single := domain.RoomType{Name: "Single Room", BasePrice: 80, CapacityAdults: 1, CapacityChildren: 0, Features: `["Standard","Single Bed"]`}
	db.Create(&luxury)
	db.Create(&double)
	db.Create(&single)

	log.Println("Creating rooms...")
	rooms := []domain.Room{
		{Number: "101", TypeID: luxury.ID, Beds: 1, PricePerNight: luxury.BasePrice, Status: domain.RoomActive},
		{Number: "104", TypeID: luxury.ID, Beds: 1, PricePerNight: luxury.BasePrice, Status: domain.RoomActive},
		{Number: "205", TypeID: double.ID, Beds: 2, PricePerNight: double.BasePrice, Status: domain.RoomActive},
		{Number: "206", TypeID: double.ID, Beds: 2, PricePerNight: double.BasePrice, Status: domain.RoomMaintenance},
		{Number: "301", TypeID: single.ID, Beds: 1, PricePerNight: single.BasePrice, Status: domain.RoomActive},
		{Number: "302", TypeID: single.ID, Beds: 1, PricePerNight: single.BasePrice, Status: domain.RoomActive},
	}
	for i := range rooms {
		db.Create(&rooms[i])
	}

	log.Printf("Seed complete: %d room types, %d rooms", 3, len(rooms))
}
