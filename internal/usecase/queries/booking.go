package queries

import (
	"context"
	"time"

	"rembayung-api/internal/domain/booking"
	"rembayung-api/internal/infra"
	"rembayung-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrStoreUnavailable = errs.New("booking store unavailable")
)

// BookingView is the read model returned to both the public submitter
// (echoing exactly what was stored) and the admin dashboard.
type BookingView struct {
	ID          uuid.UUID `json:"id"`
	BookingDate string    `json:"booking_date"`
	TimeSlot    string    `json:"time_slot"`
	GuestCount  int32     `json:"guest_count"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type DashboardStatsView struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Cancelled int64 `json:"cancelled"`
	Today     int64 `json:"today"`
}

type BookingQueries interface {
	ListBookings(ctx context.Context, status *booking.Status) ([]*BookingView, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
	DashboardStats(ctx context.Context) (*DashboardStatsView, error)
}

type BookingReadStore interface {
	FindAll(ctx context.Context, status *booking.Status) ([]*BookingView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	CountByStatus(ctx context.Context) (*DashboardStatsView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{
		readStore: readStore,
	}
}

// ListBookings returns the full collection ordered by booking_date ascending,
// insertion order breaking ties. No pagination: a single restaurant's booking
// volume does not warrant it.
func (q *bookingQueriesImpl) ListBookings(ctx context.Context, status *booking.Status) ([]*BookingView, error) {
	views, err := q.readStore.FindAll(ctx, status)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return views, nil
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return view, nil
}

func (q *bookingQueriesImpl) DashboardStats(ctx context.Context) (*DashboardStatsView, error) {
	stats, err := q.readStore.CountByStatus(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	return stats, nil
}
