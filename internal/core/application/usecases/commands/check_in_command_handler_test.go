package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"deliverysys/internal/core/application/usecases/commands"
	"deliverysys/internal/core/domain/model/attendance"
	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/pkg/errs"
)

func TestCheckInCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	cmd, err := commands.NewCheckInCommand(kernel.NewUUID(), courierID, nil)
	require.NoError(t, err)

	repo := new(MockAttendanceRepository)
	uow := new(MockAttendanceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AttendanceRepository").Return(repo).Once(),
		repo.On("GetOpenShift", mock.Anything, courierID).
			Return(nil, errs.NewObjectNotFoundError("open shift for courier", courierID.String())).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*attendance.Shift")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAttendanceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckInCommandHandler(factory)
	shift, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, shift.IsOpen())
	require.True(t, shift.CourierID().IsEqual(courierID))

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCheckInCommandHandler_Handle_AlreadyCheckedIn(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	cmd, err := commands.NewCheckInCommand(kernel.NewUUID(), courierID, nil)
	require.NoError(t, err)

	open, err := attendance.NewShift(kernel.NewUUID(), courierID, nil)
	require.NoError(t, err)
	open.SetCheckIn(time.Now().Add(-time.Hour))

	repo := new(MockAttendanceRepository)
	uow := new(MockAttendanceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AttendanceRepository").Return(repo).Once(),
		repo.On("GetOpenShift", mock.Anything, courierID).Return(open, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAttendanceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckInCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)

	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCheckInCommandHandler_Handle_IndexRaceSurfacesConflict(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	cmd, err := commands.NewCheckInCommand(kernel.NewUUID(), courierID, nil)
	require.NoError(t, err)

	repo := new(MockAttendanceRepository)
	uow := new(MockAttendanceUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AttendanceRepository").Return(repo).Once(),
		repo.On("GetOpenShift", mock.Anything, courierID).
			Return(nil, errs.NewObjectNotFoundError("open shift for courier", courierID.String())).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*attendance.Shift")).
			Return(errs.NewConflictError("courier already has an open shift")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAttendanceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckInCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
