package config

import (
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := os.Getenv("DB_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Failed to connect database")
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxIdleConns(25)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(time.Minute)
	}

	DB = db
}

// EnsureBookingConstraints installs the partial exclusion constraint that
// makes check-then-insert race-proof: no two PENDING/CONFIRMED bookings for
// the same salon may hold overlapping [start_time, end_time) ranges, even
// when both requests pass the in-transaction overlap check on different
// connections. Call after AutoMigrate.
func EnsureBookingConstraints() error {
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}
	if DB.Migrator().HasConstraint("bookings", "bookings_no_active_overlap") {
		return nil
	}
	return DB.Exec(`
		ALTER TABLE bookings
		ADD CONSTRAINT bookings_no_active_overlap
		EXCLUDE USING gist (
			salon_id WITH =,
			tstzrange(start_time, end_time) WITH &&
		)
		WHERE (status IN ('PENDING', 'CONFIRMED') AND deleted_at IS NULL)
	`).Error
}
