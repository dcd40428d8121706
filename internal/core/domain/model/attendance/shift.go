package attendance

import (
	"errors"
	"math"
	"time"

	"deliverysys/internal/core/domain/model/kernel"
)

// ErrShiftIsNotConstructed is returned when a Shift instance was not created
// through NewShift or RestoreShift.
var ErrShiftIsNotConstructed = errors.New("Shift must be created via NewShift or RestoreShift")

// Shift is a single work-shift record for a courier. A shift opens on
// check-in and closes when a check-out timestamp is set; it is never mutated
// otherwise. For any courier at most one shift may be open at a time; the
// store enforces that invariant with a partial unique index, so it holds
// under concurrent check-ins.
type Shift struct {
	id            kernel.UUID
	courierID     kernel.UUID
	orderID       *kernel.UUID
	checkIn       time.Time
	checkOut      *time.Time
	isConstructed bool
}

// NewShift creates an open shift for the courier, optionally linked to an
// order. The check-in timestamp is assigned by the store on insert.
func NewShift(id kernel.UUID, courierID kernel.UUID, orderID *kernel.UUID) (*Shift, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := courierID.Validate(); err != nil {
		return nil, err
	}
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Shift{
		id:            id,
		courierID:     courierID,
		orderID:       copyID(orderID),
		isConstructed: true,
	}, nil
}

// RestoreShift rehydrates a Shift from persistence.
func RestoreShift(
	id kernel.UUID,
	courierID kernel.UUID,
	orderID *kernel.UUID,
	checkIn time.Time,
	checkOut *time.Time,
) (*Shift, error) {
	s, err := NewShift(id, courierID, orderID)
	if err != nil {
		return nil, err
	}

	s.checkIn = checkIn
	if checkOut != nil {
		out := *checkOut
		s.checkOut = &out
	}

	return s, nil
}

// Validate ensures the Shift was created through a constructor.
func (s *Shift) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShiftIsNotConstructed
	}
	return nil
}

// ID returns the shift's unique identifier.
func (s *Shift) ID() kernel.UUID {
	return s.id
}

// CourierID returns the courier who worked the shift.
func (s *Shift) CourierID() kernel.UUID {
	return s.courierID
}

// OrderID returns the optionally linked order, or nil.
func (s *Shift) OrderID() *kernel.UUID {
	return copyID(s.orderID)
}

// CheckIn returns the check-in timestamp. It is the zero time on a shift
// that has not been persisted yet.
func (s *Shift) CheckIn() time.Time {
	return s.checkIn
}

// CheckOut returns the check-out timestamp, or nil while the shift is open.
func (s *Shift) CheckOut() *time.Time {
	if s.checkOut == nil {
		return nil
	}
	out := *s.checkOut
	return &out
}

// SetCheckIn records the store-assigned check-in timestamp after the shift
// row has been inserted.
func (s *Shift) SetCheckIn(checkIn time.Time) {
	s.checkIn = checkIn
}

// IsOpen reports whether the shift has no check-out yet.
func (s *Shift) IsOpen() bool {
	return s.checkOut == nil
}

// Hours returns the worked duration in fractional hours rounded to two
// decimals, or nil while the shift is open.
func (s *Shift) Hours() *float64 {
	if s.checkOut == nil {
		return nil
	}
	h := round2(s.checkOut.Sub(s.checkIn).Hours())
	return &h
}

// HoursThrough returns the worked duration in fractional hours treating an
// open shift as running through the given bound. Closed shifts ignore the
// bound. The result is not rounded.
func (s *Shift) HoursThrough(to time.Time) float64 {
	end := to
	if s.checkOut != nil {
		end = *s.checkOut
	}
	return end.Sub(s.checkIn).Hours()
}

// Close sets the check-out timestamp to when, or to the current time when
// when is the zero value. Closing an already closed shift is a no-op.
func (s *Shift) Close(when time.Time) {
	if s.checkOut != nil {
		return
	}
	if when.IsZero() {
		when = time.Now()
	}
	s.checkOut = &when
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func copyID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	cp := *id
	return &cp
}
