package queries

import (
	"errors"
	"time"

	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/pkg/errs"
	"deliverysys/internal/pkg/guard"
)

// ErrListShiftsQueryIsNotConstructed is returned when a ListShiftsQuery
// was not created via NewListShiftsQuery.
var ErrListShiftsQueryIsNotConstructed = errors.New(
	"ListShiftsQuery must be created via NewListShiftsQuery constructor",
)

// defaultShiftListLimit caps the attendance history returned per request.
const defaultShiftListLimit = 100

// ListShiftsQuery retrieves a courier's most recent shifts, newest first.
type ListShiftsQuery struct {
	courierID kernel.UUID
	limit     int

	guard guard.ConstructorGuard
}

// NewListShiftsQuery creates a shift history query. A non-positive limit
// falls back to the default.
func NewListShiftsQuery(courierID kernel.UUID, limit int) (ListShiftsQuery, error) {
	if err := courierID.Validate(); err != nil {
		return ListShiftsQuery{}, err
	}
	if limit > 1000 {
		return ListShiftsQuery{}, errs.NewValueIsInvalidError("limit")
	}
	if limit <= 0 {
		limit = defaultShiftListLimit
	}

	return ListShiftsQuery{
		courierID: courierID,
		limit:     limit,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListShiftsQuery) Validate() error {
	return q.guard.Validate(ErrListShiftsQueryIsNotConstructed)
}

// CourierID returns the courier whose shifts are listed.
func (q ListShiftsQuery) CourierID() kernel.UUID {
	return q.courierID
}

// Limit returns the maximum number of shifts to return.
func (q ListShiftsQuery) Limit() int {
	return q.limit
}

// ShiftView is the read-side projection of a work shift.
type ShiftView struct {
	ID       kernel.UUID
	OrderID  *kernel.UUID
	CheckIn  time.Time
	CheckOut *time.Time
	Hours    *float64
}
