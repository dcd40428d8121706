package commands

import (
	"context"
	"errors"
	"time"

	"deliverysys/internal/core/domain/model/attendance"
	"deliverysys/internal/pkg/errs"
)

// CheckOutCommandHandler closes the courier's open shift. Closing a shift
// that is not open is a precondition failure, not a not-found: the courier
// exists, the state is just wrong for the operation.
type CheckOutCommandHandler struct {
	uowFactory AttendanceUoWFactory
}

// NewCheckOutCommandHandler creates a handler for shift check-out.
func NewCheckOutCommandHandler(uowFactory AttendanceUoWFactory) CheckOutCommandHandler {
	return CheckOutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the check-out command and returns the closed shift.
func (h *CheckOutCommandHandler) Handle(ctx context.Context, cmd CheckOutCommand) (*attendance.Shift, error) {
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

	shift, err := repo.GetOpenShift(ctx, cmd.CourierID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewPreconditionFailedError("courier is not checked in")
		}
		return nil, err
	}

	shift.Close(time.Time{})

	if err = repo.Update(ctx, shift); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return shift, nil
}
