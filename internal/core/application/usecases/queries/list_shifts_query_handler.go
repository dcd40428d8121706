package queries

import (
	"context"

	"deliverysys/internal/core/ports"
)

// ListShiftsQueryHandler retrieves a courier's shift history through the
// attendance repository's streaming listing.
type ListShiftsQueryHandler struct {
	shifts ports.AttendanceRepository
}

// NewListShiftsQueryHandler creates a handler for shift history queries.
func NewListShiftsQueryHandler(shifts ports.AttendanceRepository) ListShiftsQueryHandler {
	return ListShiftsQueryHandler{shifts: shifts}
}

// Handle materializes the shift stream into views, newest first.
func (h ListShiftsQueryHandler) Handle(ctx context.Context, query ListShiftsQuery) ([]ShiftView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]ShiftView, 0, query.Limit())

	for shift, err := range h.shifts.ListRecent(ctx, query.CourierID(), query.Limit()) {
		if err != nil {
			return nil, err
		}

		views = append(views, ShiftView{
			ID:       shift.ID(),
			OrderID:  shift.OrderID(),
			CheckIn:  shift.CheckIn(),
			CheckOut: shift.CheckOut(),
			Hours:    shift.Hours(),
		})
	}

	return views, nil
}
