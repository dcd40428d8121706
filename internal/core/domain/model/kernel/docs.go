// Package kernel contains shared value objects used across the domain model:
// UUID identifiers, WGS84 geo points for pickup/drop coordinates, and the
// authenticated Principal with its UserRef projection.
//
// All types follow the same conventions: private fields, constructor
// functions that validate every input, a Validate method that detects
// zero-value instances, and immutability after construction.
package kernel
