// Package errs provides standardized error types for the dispatch application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines one error kind per failure class the API surfaces:
//   - ValueIsRequiredError / ValueIsInvalidError: malformed or missing input
//   - ObjectNotFoundError: entity absent or filtered out by visibility
//   - ConflictError: uniqueness or invariant violation
//   - PreconditionFailedError: valid request, illegal in the current state
//   - ForbiddenError: principal lacks rights over the target entity
//   - UpstreamError: external provider failure or timeout
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method that resolves to the sentinel, so errors.Is
//     classifies the kind at the transport boundary
//
// Errors are created at the point of detection and propagated unchanged;
// no layer swallows or retranslates them except the HTTP boundary, which maps
// each kind to a status code.
package errs
