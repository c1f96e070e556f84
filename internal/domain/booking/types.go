package booking

// Status is the booking lifecycle state. Pending is the only initial state;
// confirmed and cancelled are terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// TimeSlot is the seating the restaurant offers. There are exactly two.
type TimeSlot string

const (
	TimeSlotLunch  TimeSlot = "lunch"
	TimeSlotDinner TimeSlot = "dinner"
)

func NewTimeSlot(s string) (TimeSlot, error) {
	slot := TimeSlot(s)
	if !slot.IsValid() {
		return "", ErrInvalidTimeSlot
	}
	return slot, nil
}

func (t TimeSlot) String() string {
	return string(t)
}

func (t TimeSlot) IsValid() bool {
	switch t {
	case TimeSlotLunch, TimeSlotDinner:
		return true
	default:
		return false
	}
}
