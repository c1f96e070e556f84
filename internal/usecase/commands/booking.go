package commands

import (
	"context"
	"time"

	"rembayung-api/internal/domain/booking"
	"rembayung-api/internal/infra"
	"rembayung-api/internal/pkg/errs"
	"rembayung-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidDraft       = errs.New("invalid booking draft")
	ErrInvalidStatusValue = errs.New("status must be confirmed or cancelled")
	ErrBookingNotFound    = errs.New("booking not found")
	ErrInvalidTransition  = errs.New("booking is not pending")
	ErrStoreUnavailable   = errs.New("booking store unavailable")
)

type BookingCommands interface {
	// CreateBooking is the only unauthenticated write. It returns the
	// persisted record so the caller sees the server-assigned fields.
	CreateBooking(ctx context.Context, draft booking.Draft) (*queries.BookingView, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, newStatus string) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	repo      BookingRepository
	readStore queries.BookingReadStore
	factory   *booking.Factory
}

func NewBookingCommands(
	repo BookingRepository,
	readStore queries.BookingReadStore,
	factory *booking.Factory,
) BookingCommands {
	return &bookingCommandsImpl{
		repo:      repo,
		readStore: readStore,
		factory:   factory,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, draft booking.Draft) (*queries.BookingView, error) {
	entity, err := c.factory.CreateBooking(draft)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDraft)
	}

	view, err := c.repo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	return view, nil
}

func (c *bookingCommandsImpl) UpdateBookingStatus(ctx context.Context, id uuid.UUID, newStatus string) (*queries.BookingView, error) {
	target, err := booking.NewStatus(newStatus)
	if err != nil || !target.IsTerminal() {
		return nil, ErrInvalidStatusValue
	}

	entity, err := c.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	// Enforce the transition rule on the entity first so the rule lives in
	// one place; the conditional update below re-checks it at the store so
	// a racing admin loses with InvalidTransition instead of silently
	// overwriting.
	switch target {
	case booking.StatusConfirmed:
		err = entity.Confirm()
	case booking.StatusCancelled:
		err = entity.Cancel()
	}
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTransition)
	}

	view, err := c.repo.UpdateStatusIfPending(ctx, id, target)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Zero rows matched: either the booking vanished or it was
			// flipped out of pending between our read and the update.
			return nil, c.classifyMissedUpdate(ctx, id)
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	return view, nil
}

func (c *bookingCommandsImpl) loadBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	view, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	return viewToEntity(view)
}

func (c *bookingCommandsImpl) classifyMissedUpdate(ctx context.Context, id uuid.UUID) error {
	if _, err := c.readStore.FindByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrStoreUnavailable)
	}
	return ErrInvalidTransition
}

func viewToEntity(view *queries.BookingView) (*booking.Booking, error) {
	date, err := parseBookingDate(view.BookingDate)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	slot, err := booking.NewTimeSlot(view.TimeSlot)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	guestCount, err := booking.NewGuestCount(int(view.GuestCount))
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	contact, err := booking.NewContact(view.Name, view.Phone, view.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	status, err := booking.NewStatus(view.Status)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	return booking.ReconstructBooking(view.ID, date, slot, guestCount, contact, status, view.CreatedAt), nil
}

func parseBookingDate(s string) (booking.BookingDate, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return booking.BookingDate{}, err
	}
	return booking.ReconstructBookingDate(t), nil
}
