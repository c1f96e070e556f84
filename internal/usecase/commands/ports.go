package commands

import (
	"context"

	"rembayung-api/internal/domain/booking"
	"rembayung-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingRepository is the write side of the booking store. The public
// principal reaches only Create; UpdateStatusIfPending is admin-scoped and
// guarded by the routing layer.
type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (*queries.BookingView, error)
	// UpdateStatusIfPending applies the transition only when the stored row
	// is still pending (compare-and-swap); it reports KindNotFound when no
	// row matched.
	UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status booking.Status) (*queries.BookingView, error)
}

type AdminRepository interface {
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}
