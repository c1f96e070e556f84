package booking

import (
	"time"

	"rembayung-api/internal/pkg/clock"
)

// Draft is the raw public submission before validation.
type Draft struct {
	Date       time.Time
	Slot       string
	GuestCount int
	Name       string
	Phone      string
	Email      string
}

type Factory struct {
	clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{clock: clk}
}

// CreateBooking validates every draft constraint against the factory clock
// and returns a pending booking. Any violation is returned as one of the
// package sentinel errors.
func (f *Factory) CreateBooking(draft Draft) (*Booking, error) {
	date, err := NewBookingDate(draft.Date, f.clock.Now())
	if err != nil {
		return nil, err
	}

	slot, err := NewTimeSlot(draft.Slot)
	if err != nil {
		return nil, err
	}

	guestCount, err := NewGuestCount(draft.GuestCount)
	if err != nil {
		return nil, err
	}

	contact, err := NewContact(draft.Name, draft.Phone, draft.Email)
	if err != nil {
		return nil, err
	}

	return NewBooking(date, slot, guestCount, contact), nil
}
