package commands

import (
	"context"
	"errors"

	"deliverysys/internal/core/domain/model/attendance"
	"deliverysys/internal/pkg/errs"
)

// CheckInCommandHandler opens a work shift for a courier.
// A courier may hold at most one open shift at a time; the check here is
// backed by a partial unique index in the store, so a concurrent check-in
// still results in exactly one open shift.
type CheckInCommandHandler struct {
	uowFactory AttendanceUoWFactory
}

// NewCheckInCommandHandler creates a handler for shift check-in.
func NewCheckInCommandHandler(uowFactory AttendanceUoWFactory) CheckInCommandHandler {
	return CheckInCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the check-in command and returns the opened shift.
func (h *CheckInCommandHandler) Handle(ctx context.Context, cmd CheckInCommand) (*attendance.Shift, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AttendanceRepository()

	_, err := repo.GetOpenShift(ctx, cmd.CourierID())
	if err == nil {
		return nil, errs.NewConflictError("courier already has an open shift")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	shift, err := attendance.NewShift(cmd.ShiftID(), cmd.CourierID(), cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, shift); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return shift, nil
}
