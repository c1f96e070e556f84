package request

import (
	"time"

	"rembayung-api/internal/domain/booking"
)

type CreateBookingRequest struct {
	BookingDate string `json:"booking_date" binding:"required,datetime=2006-01-02"`
	TimeSlot    string `json:"time_slot" binding:"required"`
	GuestCount  int    `json:"guest_count" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
}

// ToDraft converts the request into a raw draft; range and enum rules are
// enforced by the domain so they live in exactly one place.
func (r CreateBookingRequest) ToDraft() (booking.Draft, error) {
	date, err := time.Parse(time.DateOnly, r.BookingDate)
	if err != nil {
		return booking.Draft{}, err
	}

	return booking.Draft{
		Date:       date,
		Slot:       r.TimeSlot,
		GuestCount: r.GuestCount,
		Name:       r.Name,
		Phone:      r.Phone,
		Email:      r.Email,
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
