package readstore

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

const bookingColumns = `id, booking_date, time_slot, guest_count, name, phone, email, status, created_at`

type BookingReadStore struct {
	db *pgxpool.Pool
}

func NewBookingReadStore(db *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{db: db}
}

// FindAll returns every booking ordered by booking_date ascending with
// insertion order as the tiebreak, optionally narrowed to one status.
func (r *BookingReadStore) FindAll(ctx context.Context, status *booking.Status) ([]*queries.BookingView, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, status.String())
	}
	query += ` ORDER BY booking_date ASC, created_at ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}

	return views, nil
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)

	view, err := scanBookingView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return view, nil
}

func (r *BookingReadStore) CountByStatus(ctx context.Context) (*queries.DashboardStatsView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT count(*),
		       count(*) FILTER (WHERE status = 'pending'),
		       count(*) FILTER (WHERE status = 'confirmed'),
		       count(*) FILTER (WHERE status = 'cancelled'),
		       count(*) FILTER (WHERE booking_date = CURRENT_DATE)
		FROM bookings`)

	var stats queries.DashboardStatsView
	if err := row.Scan(&stats.Total, &stats.Pending, &stats.Confirmed, &stats.Cancelled, &stats.Today); err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings", err)
	}

	return &stats, nil
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
