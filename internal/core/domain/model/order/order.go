package order

import (
	"errors"
	"fmt"
	"time"

	"deliverysys/internal/core/domain/model/kernel"
	"deliverysys/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// ErrMissingCoordinates is returned when route computation is requested for an
// order that does not carry all four pickup/drop coordinates.
var ErrMissingCoordinates = errs.NewValueIsInvalidError("missing pickup/drop coordinates")

// Details groups the descriptive fields of an order that are set at creation
// and may be replaced on edit. Pickup and drop points are optional: an order
// can exist with addresses only, but route computation requires both points.
type Details struct {
	CustomerName  string
	Address       string
	PickupAddress string
	PickupPoint   *kernel.GeoPoint
	DropAddress   string
	DropPoint     *kernel.GeoPoint
	Phone         string
	COD           int64
}

// Order is the aggregate root for a delivery order. It tracks the order's
// human-readable code, customer and address details, optional pickup/drop
// coordinates, the COD amount, the lifecycle status and the creator/assignee
// references.
//
// Invariants:
//   - code is non-empty (global uniqueness is enforced by the store)
//   - customer name is non-empty
//   - COD is non-negative
//   - status is one of the enumerated values
//   - geo points, when present, are valid WGS84 coordinates
//
// Timestamps are assigned by the store; the aggregate only carries them.
type Order struct {
	id            kernel.UUID
	code          string
	details       Details
	status        Status
	createdBy     kernel.UserRef
	assignedTo    *kernel.UserRef
	createdAt     time.Time
	updatedAt     time.Time
	isConstructed bool
}

// NewOrder creates a new Order in "new" status.
// When assignedTo is nil the order is assigned to its creator.
func NewOrder(
	id kernel.UUID,
	code string,
	details Details,
	createdBy kernel.UserRef,
	assignedTo *kernel.UserRef,
) (*Order, error) {
	o := &Order{
		status:        StatusNew,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setDetails(details),
		o.setCreatedBy(createdBy),
		o.setAssignedTo(assignedTo),
	); err != nil {
		return nil, err
	}

	if o.assignedTo == nil {
		ref := o.createdBy
		o.assignedTo = &ref
	}

	return o, nil
}

// RestoreOrder rehydrates an Order from persistence, validating the stored
// state the same way NewOrder validates input. No assignee defaulting is
// applied: a stored order may legitimately be unassigned.
func RestoreOrder(
	id kernel.UUID,
	code string,
	details Details,
	status Status,
	createdBy kernel.UserRef,
	assignedTo *kernel.UserRef,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setDetails(details),
		o.setStatus(status),
		o.setCreatedBy(createdBy),
		o.setAssignedTo(assignedTo),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the human-readable order code.
func (o *Order) Code() string {
	return o.code
}

// Details returns the descriptive order fields.
func (o *Order) Details() Details {
	return o.details
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedBy returns the creator reference.
func (o *Order) CreatedBy() kernel.UserRef {
	return o.createdBy
}

// AssignedTo returns the assignee reference, or nil when unassigned.
func (o *Order) AssignedTo() *kernel.UserRef {
	return o.assignedTo
}

// CreatedAt returns the store-assigned creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the store-assigned last-update timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// HasCoordinates reports whether both pickup and drop points are present,
// which is the precondition for route computation.
func (o *Order) HasCoordinates() bool {
	return o.details.PickupPoint != nil && o.details.DropPoint != nil
}

// RouteEndpoints returns the pickup and drop points, or ErrMissingCoordinates
// when the order is not fully geocoded.
func (o *Order) RouteEndpoints() (kernel.GeoPoint, kernel.GeoPoint, error) {
	if !o.HasCoordinates() {
		return kernel.GeoPoint{}, kernel.GeoPoint{}, ErrMissingCoordinates
	}
	return *o.details.PickupPoint, *o.details.DropPoint, nil
}

// ViewableBy reports whether the principal may see route and tracking detail
// for this order: administrators, the assignee and the creator.
func (o *Order) ViewableBy(p kernel.Principal) bool {
	if p.IsAdmin() {
		return true
	}
	if o.assignedTo != nil && o.assignedTo.ID().IsEqual(p.ID()) {
		return true
	}
	return o.createdBy.ID().IsEqual(p.ID())
}

// IsAssignedTo reports whether the principal is the current assignee.
func (o *Order) IsAssignedTo(p kernel.Principal) bool {
	return o.assignedTo != nil && o.assignedTo.ID().IsEqual(p.ID())
}

// ChangeStatus moves the order to the given status. Any transition within the
// enumerated set is permitted.
func (o *Order) ChangeStatus(status Status) error {
	return o.setStatus(status)
}

// ChangeDetails replaces the descriptive fields after validating them.
func (o *Order) ChangeDetails(details Details) error {
	return o.setDetails(details)
}

// Assign assigns the order to the given user.
func (o *Order) Assign(ref kernel.UserRef) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	o.assignedTo = &ref
	return nil
}

// Unassign removes the current assignee.
func (o *Order) Unassign() {
	o.assignedTo = nil
}

// SetTimestamps records store-assigned timestamps on the aggregate.
// Persistence adapters call this after the store fills them in.
func (o *Order) SetTimestamps(createdAt time.Time, updatedAt time.Time) {
	o.createdAt = createdAt
	o.updatedAt = updatedAt
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	o.code = code
	return nil
}

func (o *Order) setDetails(details Details) error {
	if details.CustomerName == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	if details.COD < 0 {
		return errs.NewValueIsInvalidErrorWithCause("cod",
			fmt.Errorf("%d is negative", details.COD))
	}
	if details.PickupPoint != nil {
		if err := details.PickupPoint.Validate(); err != nil {
			return err
		}
	}
	if details.DropPoint != nil {
		if err := details.DropPoint.Validate(); err != nil {
			return err
		}
	}
	o.details = details
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCreatedBy(createdBy kernel.UserRef) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	o.createdBy = createdBy
	return nil
}

func (o *Order) setAssignedTo(assignedTo *kernel.UserRef) error {
	if assignedTo == nil {
		o.assignedTo = nil
		return nil
	}
	if err := assignedTo.Validate(); err != nil {
		return err
	}
	ref := *assignedTo
	o.assignedTo = &ref
	return nil
}
