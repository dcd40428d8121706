package queries

import (
	"errors"
	"time"

	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/pkg/guard"
)

// ErrPerformanceStatsQueryIsNotConstructed is returned when a
// PerformanceStatsQuery was not created via NewPerformanceStatsQuery.
var ErrPerformanceStatsQueryIsNotConstructed = errors.New(
	"PerformanceStatsQuery must be created via NewPerformanceStatsQuery constructor",
)

// defaultStatsWindow is how far back the reporting window reaches when the
// caller does not give an explicit start.
const defaultStatsWindow = 30 * 24 * time.Hour

// PerformanceStatsQuery computes delivery and attendance figures for one
// courier over a time window. A zero From defaults to thirty days before To;
// a zero To defaults to now.
type PerformanceStatsQuery struct {
	courierID kernel.UUID
	from      time.Time
	to        time.Time

	guard guard.ConstructorGuard
}

// NewPerformanceStatsQuery creates a performance report query.
func NewPerformanceStatsQuery(courierID kernel.UUID, from time.Time, to time.Time) (PerformanceStatsQuery, error) {
	if err := courierID.Validate(); err != nil {
		return PerformanceStatsQuery{}, err
	}

	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.Add(-defaultStatsWindow)
	}

	return PerformanceStatsQuery{
		courierID: courierID,
		from:      from,
		to:        to,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q PerformanceStatsQuery) Validate() error {
	return q.guard.Validate(ErrPerformanceStatsQueryIsNotConstructed)
}

// CourierID returns the courier the report is about.
func (q PerformanceStatsQuery) CourierID() kernel.UUID {
	return q.courierID
}

// From returns the window start.
func (q PerformanceStatsQuery) From() time.Time {
	return q.from
}

// To returns the window end.
func (q PerformanceStatsQuery) To() time.Time {
	return q.to
}

// PerformanceStatsResponse holds the computed figures for one courier.
//
// WorkedHours sums check-in to check-out spans across the courier's entire
// shift history; open shifts count up to the window end. OrdersPerHour is nil
// when no hours were worked.
type PerformanceStatsResponse struct {
	CourierID     kernel.UUID
	From          time.Time
	To            time.Time
	TotalOrders   int64
	DoneOrders    int64
	CODCollected  int64
	WorkedHours   float64
	OrdersPerHour *float64
}
