//go:build unit || e2e

package builder

import (
	"time"

	"rembayung-api/internal/domain/booking"
	reqdto "rembayung-api/internal/handler/dto/request"
	"rembayung-api/internal/pkg/clock"
	"rembayung-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// Frozen "now" used by unit tests so booking-date validation is deterministic.
var TestNow = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	BookingDate string
	TimeSlot    string
	GuestCount  int
	Name        string
	Phone       string
	Email       string
	Status      string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		BookingDate: "2026-03-01",
		TimeSlot:    "dinner",
		GuestCount:  4,
		Name:        "Aisyah Rahman",
		Phone:       "+60123456789",
		Email:       "aisyah@example.com",
		Status:      "pending",
	}
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.BookingDate = date
	return b
}

func (b *BookingBuilder) WithTimeSlot(slot string) *BookingBuilder {
	b.TimeSlot = slot
	return b
}

func (b *BookingBuilder) WithGuestCount(n int) *BookingBuilder {
	b.GuestCount = n
	return b
}

func (b *BookingBuilder) WithName(name string) *BookingBuilder {
	b.Name = name
	return b
}

func (b *BookingBuilder) WithPhone(phone string) *BookingBuilder {
	b.Phone = phone
	return b
}

func (b *BookingBuilder) WithEmail(email string) *BookingBuilder {
	b.Email = email
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		BookingDate: b.BookingDate,
		TimeSlot:    b.TimeSlot,
		GuestCount:  b.GuestCount,
		Name:        b.Name,
		Phone:       b.Phone,
		Email:       b.Email,
	}
}

func (b *BookingBuilder) BuildDraft() booking.Draft {
	date, _ := time.Parse(time.DateOnly, b.BookingDate)
	return booking.Draft{
		Date:       date,
		Slot:       b.TimeSlot,
		GuestCount: b.GuestCount,
		Name:       b.Name,
		Phone:      b.Phone,
		Email:      b.Email,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	factory := booking.NewFactory(clock.NewMockClock(TestNow))
	return factory.CreateBooking(b.BuildDraft())
}

func (b *BookingBuilder) BuildReadModel() *queries.BookingView {
	return &queries.BookingView{
		ID:          uuid.New(),
		BookingDate: b.BookingDate,
		TimeSlot:    b.TimeSlot,
		GuestCount:  int32(b.GuestCount),
		Name:        b.Name,
		Phone:       b.Phone,
		Email:       b.Email,
		Status:      b.Status,
		CreatedAt:   TestNow,
	}
}
