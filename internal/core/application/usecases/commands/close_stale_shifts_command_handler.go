package commands

import (
	"context"
)

// CloseStaleShiftsCommandHandler force-closes shifts left open past the
// cutoff. Returns the number of shifts closed so the caller can log it.
type CloseStaleShiftsCommandHandler struct {
	uowFactory AttendanceUoWFactory
}

// NewCloseStaleShiftsCommandHandler creates a handler for stale shift cleanup.
func NewCloseStaleShiftsCommandHandler(uowFactory AttendanceUoWFactory) CloseStaleShiftsCommandHandler {
	return CloseStaleShiftsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle closes every shift opened before the cutoff and returns the count.
func (h *CloseStaleShiftsCommandHandler) Handle(ctx context.Context, cmd CloseStaleShiftsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AttendanceRepository()

	stale, err := repo.GetOpenBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	for _, shift := range stale {
		shift.Close(cmd.CloseAt())
		if err = repo.Update(ctx, shift); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
