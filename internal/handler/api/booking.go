package api

import (
	"net/http"

	"rembayung-api/internal/domain/booking"
	reqdto "rembayung-api/internal/handler/dto/request"
	resdto "rembayung-api/internal/handler/dto/response"
	"rembayung-api/internal/handler/httperr"
	"rembayung-api/internal/usecase/commands"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

// BookingHandler serves the public side: anyone may submit a booking
// request, nothing else.
type BookingHandler struct {
	bookingCommands commands.BookingCommands
}

func NewBookingHandler(bookingCommands commands.BookingCommands) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
	}
}

// @Summary Submit a booking request
// @Description Create a pending table booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	draft, err := req.ToDraft()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking date", nil)
		return
	}

	view, err := h.bookingCommands.CreateBooking(c.Request.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidDraft):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, draftErrorMessage(err), nil)
		case errors.Is(err, commands.ErrStoreUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Booking service temporarily unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// draftErrorMessage surfaces which constraint failed so the submitter can
// fix the form; these are user errors, never system failures.
func draftErrorMessage(err error) string {
	switch {
	case errors.Is(err, booking.ErrDateNotInFuture):
		return "Booking date must be after today"
	case errors.Is(err, booking.ErrInvalidTimeSlot):
		return "Time slot must be lunch or dinner"
	case errors.Is(err, booking.ErrGuestCountOutOfRange):
		return "Guest count must be between 2 and 8"
	case errors.Is(err, booking.ErrContactRequired):
		return "Name and phone are required"
	case errors.Is(err, booking.ErrInvalidEmail):
		return "A valid email address is required"
	default:
		return "Invalid booking request"
	}
}
