//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"time"

	"rembayung-api/internal/pkg/password"

	"github.com/google/uuid"
)

const (
	TestAdminEmail    = "admin@rembayung.example"
	TestAdminPassword = "password123"
)

// SeedTestAdmin inserts the staff account the e2e suites sign in with.
func SeedTestAdmin(db DBLike) (uuid.UUID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	hash, err := password.HashPassword(TestAdminPassword)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to hash fixture password: %w", err)
	}

	var id uuid.UUID
	err = db.QueryRow(ctx,
		`INSERT INTO admins (email, password_hash, is_active) VALUES ($1, $2, true) RETURNING id`,
		TestAdminEmail, hash,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to seed test admin: %w", err)
	}

	return id, nil
}

// ResetDB truncates all mutable tables and reseeds the fixture admin so each
// subtest starts from the same state.
func ResetDB(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.Exec(ctx, `TRUNCATE TABLE bookings, admins`); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}

	if _, err := SeedTestAdmin(db); err != nil {
		return err
	}

	return nil
}

// CreateTestBooking inserts a booking row directly, bypassing the API, for
// tests that need preexisting data.
func CreateTestBooking(db DBLike, bookingDate, timeSlot string, guestCount int, status string) (uuid.UUID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var id uuid.UUID
	err := db.QueryRow(ctx,
		`INSERT INTO bookings (booking_date, time_slot, guest_count, name, phone, email, status)
		 VALUES ($1, $2, $3, 'Fixture Guest', '+60123456789', 'guest@example.com', $4)
		 RETURNING id`,
		bookingDate, timeSlot, guestCount, status,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create test booking: %w", err)
	}

	return id, nil
}
