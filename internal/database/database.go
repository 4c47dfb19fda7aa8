package database

import (
	"fmt"
	"log"
	"strings"

	"bostonsuites/internal/domain"
	"bostonsuites/internal/repository"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates or updates the schema for every entity. On Postgres it also
// installs the exclusion constraint that rejects overlapping stays at the
// database level, behind the per-room serialization in the booking service.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.RoomType{},
		&domain.Room{},
		&domain.Client{},
		&domain.Booking{},
	); err != nil {
		return err
	}

	if db.Dialector.Name() == "postgres" {
		return overlapConstraint(db)
	}
	return nil
}

// overlapConstraint creates bookings_no_overlap once. btree_gist supplies the
// equality operator for room_id inside the gist index; cancelled bookings are
// excluded so their dates free up immediately.
func overlapConstraint(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	return db.Exec(fmt.Sprintf(`
DO $$ BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%[1]s') THEN
		ALTER TABLE bookings ADD CONSTRAINT %[1]s
			EXCLUDE USING gist (room_id WITH =, tsrange(check_in, check_out) WITH &&)
			WHERE (status <> 'CANCELLED');
	END IF;
END $$`, repository.NoOverlapConstraint)).Error
}
