package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidTimeSlot      = errors.New("invalid time slot")
	ErrDateNotInFuture      = errors.New("booking date must be after today")
	ErrGuestCountOutOfRange = errors.New("guest count must be between 2 and 8")
	ErrContactRequired      = errors.New("name and phone are required")
	ErrInvalidEmail         = errors.New("invalid email format")
	ErrNotPending           = errors.New("booking is no longer pending")
)

type Booking struct {
	id         uuid.UUID
	date       BookingDate
	slot       TimeSlot
	guestCount GuestCount
	contact    Contact
	status     Status
	createdAt  time.Time
}

// NewBooking builds a pending booking from an already-validated draft.
// The id is assigned here; created_at is assigned by the store on insert.
func NewBooking(date BookingDate, slot TimeSlot, guestCount GuestCount, contact Contact) *Booking {
	return &Booking{
		id:         uuid.New(),
		date:       date,
		slot:       slot,
		guestCount: guestCount,
		contact:    contact,
		status:     StatusPending,
	}
}

func ReconstructBooking(
	id uuid.UUID,
	date BookingDate,
	slot TimeSlot,
	guestCount GuestCount,
	contact Contact,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		date:       date,
		slot:       slot,
		guestCount: guestCount,
		contact:    contact,
		status:     status,
		createdAt:  createdAt,
	}
}

// Confirm transitions pending → confirmed. Terminal states never move again.
func (b *Booking) Confirm() error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusConfirmed
	return nil
}

// Cancel transitions pending → cancelled. There is no confirmed → cancelled
// path; a confirmed table is released by staff outside this system.
func (b *Booking) Cancel() error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) IsPending() bool {
	return b.status == StatusPending
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) Date() BookingDate      { return b.date }
func (b *Booking) Slot() TimeSlot         { return b.slot }
func (b *Booking) GuestCount() GuestCount { return b.guestCount }
func (b *Booking) Contact() Contact       { return b.contact }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
