//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"rembayung-api/internal/domain/booking"
	"rembayung-api/internal/infra"
	"rembayung-api/internal/pkg/clock"
	"rembayung-api/internal/usecase/commands"
	"rembayung-api/internal/usecase/queries"
	"rembayung-api/tests/common/builder"
	commandsmock "rembayung-api/tests/mock/commands"
	queriesmock "rembayung-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockRepo      *commandsmock.MockBookingRepository
	mockReadStore *queriesmock.MockBookingReadStore
	commands      commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockBookingRepository(s.mockCtrl)
	s.mockReadStore = queriesmock.NewMockBookingReadStore(s.mockCtrl)

	factory := booking.NewFactory(clock.NewMockClock(builder.TestNow))
	s.commands = commands.NewBookingCommands(s.mockRepo, s.mockReadStore, factory)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	ctx := context.Background()

	s.Run("success: valid draft is persisted as pending", func() {
		draft := builder.NewBookingBuilder().BuildDraft()
		persisted := builder.NewBookingBuilder().BuildReadModel()

		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *booking.Booking) (*queries.BookingView, error) {
				s.True(b.IsPending())
				s.Equal("2026-03-01", b.Date().String())
				return persisted, nil
			}).Times(1)

		view, err := s.commands.CreateBooking(ctx, draft)
		s.NoError(err)
		s.Equal(persisted, view)
	})

	s.Run("error: invalid draft never reaches the repository", func() {
		draft := builder.NewBookingBuilder().WithGuestCount(1).BuildDraft()

		view, err := s.commands.CreateBooking(ctx, draft)
		s.ErrorIs(err, commands.ErrInvalidDraft)
		s.ErrorIs(err, booking.ErrGuestCountOutOfRange)
		s.Nil(view)
	})

	s.Run("error: past date is rejected as invalid draft", func() {
		draft := builder.NewBookingBuilder().WithDate("2025-12-31").BuildDraft()

		_, err := s.commands.CreateBooking(ctx, draft)
		s.ErrorIs(err, commands.ErrInvalidDraft)
		s.ErrorIs(err, booking.ErrDateNotInFuture)
	})

	s.Run("error: repository failure surfaces as store unavailable", func() {
		draft := builder.NewBookingBuilder().BuildDraft()

		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("insert failed", errors.New("connection refused"))).Times(1)

		view, err := s.commands.CreateBooking(ctx, draft)
		s.ErrorIs(err, commands.ErrStoreUnavailable)
		s.Nil(view)
	})
}

func (s *BookingCommandsTestSuite) TestUpdateBookingStatus() {
	ctx := context.Background()
	id := uuid.New()

	pendingView := func() *queries.BookingView {
		v := builder.NewBookingBuilder().BuildReadModel()
		v.ID = id
		return v
	}

	s.Run("success: pending booking is confirmed", func() {
		current := builder.NewBookingBuilder().BuildReadModel()
		current.ID = id
		updated := builder.NewBookingBuilder().WithStatus("confirmed").BuildReadModel()
		updated.ID = id

		s.mockReadStore.EXPECT().FindByID(gomock.Any(), id).Return(current, nil).Times(1)
		s.mockRepo.EXPECT().UpdateStatusIfPending(gomock.Any(), id, booking.StatusConfirmed).
			Return(updated, nil).Times(1)

		view, err := s.commands.UpdateBookingStatus(ctx, id, "confirmed")
		s.NoError(err)
		s.Equal("confirmed", view.Status)
	})

	s.Run("success: pending booking is cancelled", func() {
		current := builder.NewBookingBuilder().BuildReadModel()
		current.ID = id
		updated := builder.NewBookingBuilder().WithStatus("cancelled").BuildReadModel()
		updated.ID = id

		s.mockReadStore.EXPECT().FindByID(gomock.Any(), id).Return(current, nil).Times(1)
		s.mockRepo.EXPECT().UpdateStatusIfPending(gomock.Any(), id, booking.StatusCancelled).
			Return(updated, nil).Times(1)

		view, err := s.commands.UpdateBookingStatus(ctx, id, "cancelled")
		s.NoError(err)
		s.Equal("cancelled", view.Status)
	})

	s.Run("error: pending is not a valid target status", func() {
		_, err := s.commands.UpdateBookingStatus(ctx, id, "pending")
		s.ErrorIs(err, commands.ErrInvalidStatusValue)
	})

	s.Run("error: unknown status value is rejected", func() {
		_, err := s.commands.UpdateBookingStatus(ctx, id, "archived")
		s.ErrorIs(err, commands.ErrInvalidStatusValue)
	})

	s.Run("error: missing booking", func() {
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.UpdateBookingStatus(ctx, id, "confirmed")
		s.ErrorIs(err, commands.ErrBookingNotFound)
	})

	s.Run("error: already decided booking cannot move again", func() {
		current := builder.NewBookingBuilder().WithStatus("confirmed").BuildReadModel()
		current.ID = id

		s.mockReadStore.EXPECT().FindByID(gomock.Any(), id).Return(current, nil).Times(1)

		_, err := s.commands.UpdateBookingStatus(ctx, id, "cancelled")
		s.ErrorIs(err, commands.ErrInvalidTransition)
		s.ErrorIs(err, booking.ErrNotPending)
	})

	s.Run("error: racing update loses with invalid transition", func() {
		// The booking was pending at read time but another admin decided it
		// before our conditional update ran.
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), id).Return(pendingView(), nil).Times(1)
		s.mockRepo.EXPECT().UpdateStatusIfPending(gomock.Any(), id, booking.StatusConfirmed).
			Return(nil, infra.WrapRepoErr("no pending booking matched", nil, infra.KindNotFound)).Times(1)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), id).Return(pendingView(), nil).Times(1)

		_, err := s.commands.UpdateBookingStatus(ctx, id, "confirmed")
		s.ErrorIs(err, commands.ErrInvalidTransition)
	})

	s.Run("error: booking deleted between read and update", func() {
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), id).Return(pendingView(), nil).Times(1)
		s.mockRepo.EXPECT().UpdateStatusIfPending(gomock.Any(), id, booking.StatusConfirmed).
			Return(nil, infra.WrapRepoErr("no pending booking matched", nil, infra.KindNotFound)).Times(1)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)).Times(1)

		_, err := s.commands.UpdateBookingStatus(ctx, id, "confirmed")
		s.ErrorIs(err, commands.ErrBookingNotFound)
	})

	s.Run("error: store failure on update", func() {
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), id).Return(pendingView(), nil).Times(1)
		s.mockRepo.EXPECT().UpdateStatusIfPending(gomock.Any(), id, booking.StatusConfirmed).
			Return(nil, infra.WrapRepoErr("update failed", errors.New("connection reset"))).Times(1)

		_, err := s.commands.UpdateBookingStatus(ctx, id, "confirmed")
		s.ErrorIs(err, commands.ErrStoreUnavailable)
	})
}
