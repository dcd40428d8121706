// Package attendance contains the Shift entity: one work-shift record per
// courier check-in, closed by a check-out. The one-open-shift-per-courier
// invariant is enforced at the store level.
package attendance
