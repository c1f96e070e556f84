package response

import (
	"time"

	"rembayung-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	BookingDate string    `json:"bookingDate"`
	TimeSlot    string    `json:"timeSlot"`
	GuestCount  int32     `json:"guestCount"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Count    int                `json:"count"`
}

type DashboardStatsResponse struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Cancelled int64 `json:"cancelled"`
	Today     int64 `json:"today"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingViews(views []*queries.BookingView) *BookingListResponse {
	bookings := make([]*BookingResponse, len(views))
	for i, view := range views {
		bookings[i] = FromBookingView(view)
	}
	return &BookingListResponse{
		Bookings: bookings,
		Count:    len(bookings),
	}
}

func FromDashboardStatsView(view *queries.DashboardStatsView) *DashboardStatsResponse {
	var resp DashboardStatsResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
