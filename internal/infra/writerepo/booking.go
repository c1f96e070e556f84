package writerepo

import (
	"context"
	"errors"
	"time"

	"rembayung-api/internal/domain/booking"
	"rembayung-api/internal/infra"
	"rembayung-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts a pending booking. The status column is written from the
// entity, which only ever produces pending for new bookings; created_at is
// assigned by the database.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO bookings (id, booking_date, time_slot, guest_count, name, phone, email, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, booking_date, time_slot, guest_count, name, phone, email, status, created_at`,
		b.ID(),
		b.Date().Value(),
		b.Slot().String(),
		b.GuestCount().Value(),
		b.Contact().Name(),
		b.Contact().Phone(),
		b.Contact().Email(),
		b.Status().String(),
	)

	view, err := scanBookingView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return view, nil
}

// UpdateStatusIfPending is the compare-and-swap transition: the row moves
// only if it is still pending, so concurrent admins cannot overwrite a
// terminal status.
func (r *BookingRepository) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status booking.Status) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE bookings SET status = $2
		WHERE id = $1 AND status = 'pending'
		RETURNING id, booking_date, time_slot, guest_count, name, phone, email, status, created_at`,
		id, status.String(),
	)

	view, err := scanBookingView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("no pending booking matched", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update booking status", err)
	}

	return view, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		view        queries.BookingView
		bookingDate time.Time
	)
	err := row.Scan(
		&view.ID,
		&bookingDate,
		&view.TimeSlot,
		&view.GuestCount,
		&view.Name,
		&view.Phone,
		&view.Email,
		&view.Status,
		&view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.BookingDate = bookingDate.Format(time.DateOnly)
	return &view, nil
}
