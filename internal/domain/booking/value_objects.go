package booking

import (
	"regexp"
	"strings"
	"time"
)

const (
	MinGuestCount = 2
	MaxGuestCount = 8
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// BookingDate is a calendar date with no time component.
type BookingDate struct {
	value time.Time
}

// NewBookingDate truncates the input to a date and enforces that it is
// strictly after "today" in the server's clock: no same-day or past bookings.
func NewBookingDate(date, now time.Time) (BookingDate, error) {
	d := truncateToDate(date)
	today := truncateToDate(now)
	if !d.After(today) {
		return BookingDate{}, ErrDateNotInFuture
	}
	return BookingDate{value: d}, nil
}

func ReconstructBookingDate(date time.Time) BookingDate {
	return BookingDate{value: truncateToDate(date)}
}

func (d BookingDate) Value() time.Time {
	return d.value
}

func (d BookingDate) String() string {
	return d.value.Format(time.DateOnly)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type GuestCount struct {
	value int
}

func NewGuestCount(n int) (GuestCount, error) {
	if n < MinGuestCount || n > MaxGuestCount {
		return GuestCount{}, ErrGuestCountOutOfRange
	}
	return GuestCount{value: n}, nil
}

func (g GuestCount) Value() int {
	return g.value
}

// Contact holds the submitter's details. All three fields are required; the
// email only needs to be email-shaped, matching what the form control enforces.
type Contact struct {
	name  string
	phone string
	email string
}

func NewContact(name, phone, email string) (Contact, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	email = strings.TrimSpace(email)

	if name == "" || phone == "" {
		return Contact{}, ErrContactRequired
	}
	if !emailRegex.MatchString(email) {
		return Contact{}, ErrInvalidEmail
	}

	return Contact{name: name, phone: phone, email: email}, nil
}

func (c Contact) Name() string  { return c.name }
func (c Contact) Phone() string { return c.phone }
func (c Contact) Email() string { return c.email }
