package order

import (
	"fmt"

	"deliverysys/internal/pkg/errs"
)

// Status is the lifecycle tag of an order.
//
// Unlike a strict state machine, any status may follow any other: dispatchers
// routinely correct mis-set statuses by hand, so the set is enumerated but
// transitions are deliberately unconstrained. Whether cancel -> done should be
// disallowed is pending product review.
type Status string

const (
	// StatusNew is the initial status of a freshly created order.
	StatusNew Status = "new"
	// StatusShipping marks an order a courier is currently delivering.
	StatusShipping Status = "shipping"
	// StatusDone marks a completed delivery; done orders count toward
	// courier performance and COD totals.
	StatusDone Status = "done"
	// StatusCancel marks a cancelled order.
	StatusCancel Status = "cancel"
)

func validStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		StatusNew:      {},
		StatusShipping: {},
		StatusDone:     {},
		StatusCancel:   {},
	}
}

// StatusFromString parses a status tag from its wire representation.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status is one of the enumerated values.
func (s Status) Validate() error {
	if _, ok := validStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not one of new, shipping, done, cancel", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
