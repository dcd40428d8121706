package queries

import (
	"errors"
	"time"

	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/core/domain/model/order"
	"deliverysys/internal/pkg/errs"
	"deliverysys/internal/pkg/guard"
)

// ErrTrackOrderQueryIsNotConstructed is returned when a TrackOrderQuery
// was not created via NewTrackOrderQuery.
var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery looks up an order by its human-readable code and returns a
// short progress summary.
type TrackOrderQuery struct {
	code      string
	principal kernel.Principal

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a tracking query for the given order code.
func NewTrackOrderQuery(code string, principal kernel.Principal) (TrackOrderQuery, error) {
	if code == "" {
		return TrackOrderQuery{}, errs.NewValueIsRequiredError("code")
	}
	if err := principal.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}

	return TrackOrderQuery{
		code:      code,
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// Code returns the order code to track.
func (q TrackOrderQuery) Code() string {
	return q.code
}

// Principal returns the requesting principal.
func (q TrackOrderQuery) Principal() kernel.Principal {
	return q.principal
}

// TrackOrderResponse is the tracking summary for an order.
type TrackOrderResponse struct {
	Code               string
	Status             order.Status
	CustomerName       string
	AssignedToUsername string
	UpdatedAt          time.Time
}
