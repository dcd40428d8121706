package ports

import (
	"context"
	"iter"
	"time"

	"deliverysys/internal/core/domain/model/attendance"
	"deliverysys/internal/core/domain/model/kernel"
)

// AttendanceRepository defines the persistence contract for shift records.
type AttendanceRepository interface {
	// Add persists a new open shift. The store-level partial unique index
	// guarantees at most one open shift per courier; a violation surfaces
	// as a ConflictError, so under concurrent check-ins exactly one caller
	// succeeds.
	Add(ctx context.Context, shift *attendance.Shift) error

	// Update persists changes to an existing shift (its check-out).
	Update(ctx context.Context, shift *attendance.Shift) error

	// GetOpenShift retrieves the courier's open shift, newest check-in
	// first. Returns an ObjectNotFoundError when the courier has no open
	// shift.
	GetOpenShift(ctx context.Context, courierID kernel.UUID) (*attendance.Shift, error)

	// GetOpenBefore retrieves all open shifts whose check-in is before the
	// cutoff, across couriers. Used by the stale-shift auto-close job.
	GetOpenBefore(ctx context.Context, cutoff time.Time) ([]*attendance.Shift, error)

	// ListRecent returns the courier's shifts ordered newest-check-in-first
	// and capped at limit, as a lazy sequence: rows are streamed from the
	// store while the caller ranges, and ranging again restarts the query.
	ListRecent(ctx context.Context, courierID kernel.UUID, limit int) iter.Seq2[*attendance.Shift, error]
}
