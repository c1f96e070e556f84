//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"rembayung-api/internal/domain/booking"
	"rembayung-api/internal/handler/api"
	resdto "rembayung-api/internal/handler/dto/response"
	"rembayung-api/internal/usecase/commands"
	"rembayung-api/internal/usecase/queries"
	"rembayung-api/tests/common/builder"
	"rembayung-api/tests/common/httptest"
	commandsmock "rembayung-api/tests/mock/commands"
	queriesmock "rembayung-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminBookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.AdminBookingHandler
}

func (s *AdminBookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewAdminBookingHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/admin/bookings", s.handler.ListBookings)
	s.router.GET("/admin/bookings/stats", s.handler.Stats)
	s.router.GET("/admin/bookings/:id", s.handler.GetBooking)
	s.router.PATCH("/admin/bookings/:id/status", s.handler.UpdateStatus)
}

func (s *AdminBookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminBookingHandlerTestSuite))
}

func (s *AdminBookingHandlerTestSuite) TestListBookings() {
	url := "/admin/bookings"

	s.Run("success: returns all bookings without a filter", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().BuildReadModel(),
			builder.NewBookingBuilder().WithStatus("confirmed").BuildReadModel(),
		}

		s.mockQueries.EXPECT().ListBookings(gomock.Any(), nil).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.Count)
		s.Len(response.Bookings, 2)
	})

	s.Run("success: forwards the status filter", func() {
		pending := booking.StatusPending

		s.mockQueries.EXPECT().ListBookings(gomock.Any(), &pending).
			Return([]*queries.BookingView{builder.NewBookingBuilder().BuildReadModel()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=pending", nil, "bearer-token")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(1, response.Count)
	})

	s.Run("success: empty list has zero count", func() {
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), nil).
			Return([]*queries.BookingView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(0, response.Count)
	})

	s.Run("error: 400 on an unknown status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?status=archived", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown status filter")
	})

	s.Run("error: 503 when the store is unavailable", func() {
		s.mockQueries.EXPECT().ListBookings(gomock.Any(), nil).
			Return(nil, queries.ErrStoreUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "temporarily unavailable")
	})
}

func (s *AdminBookingHandlerTestSuite) TestGetBooking() {
	id := uuid.New()
	url := "/admin/bookings/" + id.String()

	s.Run("success: returns the booking", func() {
		view := builder.NewBookingBuilder().BuildReadModel()
		view.ID = id

		s.mockQueries.EXPECT().GetBooking(gomock.Any(), id).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(id, response.ID)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 on a malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: 404 when the booking does not exist", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), id).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 503 when the store is unavailable", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), id).
			Return(nil, queries.ErrStoreUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "temporarily unavailable")
	})
}

func (s *AdminBookingHandlerTestSuite) TestUpdateStatus() {
	id := uuid.New()
	url := "/admin/bookings/" + id.String() + "/status"
	reqBody := map[string]any{"status": "confirmed"}

	s.Run("success: returns the updated booking", func() {
		updated := builder.NewBookingBuilder().WithStatus("confirmed").BuildReadModel()
		updated.ID = id

		s.mockCommands.EXPECT().UpdateBookingStatus(gomock.Any(), id, "confirmed").
			Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(id, response.ID)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: 400 on a malformed booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/admin/bookings/not-a-uuid/status", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: 400 when the status field is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid target status",
				commandsError:  commands.ErrInvalidStatusValue,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Status must be confirmed or cancelled",
			},
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "booking already decided",
				commandsError:  commands.ErrInvalidTransition,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already been decided",
			},
			{
				name:           "store unavailable",
				commandsError:  commands.ErrStoreUnavailable,
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "temporarily unavailable",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateBookingStatus(gomock.Any(), id, "confirmed").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AdminBookingHandlerTestSuite) TestStats() {
	url := "/admin/bookings/stats"

	s.Run("success: returns dashboard counts", func() {
		stats := &queries.DashboardStatsView{
			Total:     10,
			Pending:   4,
			Confirmed: 5,
			Cancelled: 1,
			Today:     2,
		}

		s.mockQueries.EXPECT().DashboardStats(gomock.Any()).
			Return(stats, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.DashboardStatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(10), response.Total)
		s.Equal(int64(4), response.Pending)
		s.Equal(int64(2), response.Today)
	})

	s.Run("error: 503 when the store is unavailable", func() {
		s.mockQueries.EXPECT().DashboardStats(gomock.Any()).
			Return(nil, queries.ErrStoreUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "temporarily unavailable")
	})
}
