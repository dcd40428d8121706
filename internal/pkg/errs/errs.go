package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for each error kind. Callers classify errors with
// errors.Is against these sentinels; the struct types below carry detail.
var (
	// ErrValueIsRequired indicates a required value is missing.
	ErrValueIsRequired = errors.New("value is required")
	// ErrValueIsInvalid indicates a value is malformed or out of its domain.
	ErrValueIsInvalid = errors.New("value is invalid")
	// ErrObjectNotFound indicates an entity is absent or not visible to the caller.
	ErrObjectNotFound = errors.New("object not found")
	// ErrConflict indicates a uniqueness or invariant violation.
	ErrConflict = errors.New("conflict")
	// ErrPreconditionFailed indicates a valid request that is illegal in the current state.
	ErrPreconditionFailed = errors.New("precondition failed")
	// ErrForbidden indicates the principal lacks rights over the target entity.
	ErrForbidden = errors.New("forbidden")
	// ErrUpstreamFailure indicates an external provider failed or timed out.
	ErrUpstreamFailure = errors.New("upstream failure")
)

// sanitize flattens whitespace so error messages stay single-line in logs.
func sanitize(v any) string {
	return strings.Join(strings.Fields(fmt.Sprintf("%v", v)), " ")
}

// ValueIsRequiredError is returned when a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError is returned when a value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError is returned when an entity cannot be found. Entities
// filtered out by visibility rules produce the same error as absent ones.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and ID.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, sanitize(e.ParamName), sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ConflictError is returned when an operation violates a uniqueness
// constraint or a store-level invariant.
type ConflictError struct {
	Detail string
	Cause  error
}

// NewConflictError creates a ConflictError with the given detail.
func NewConflictError(detail string) *ConflictError {
	return &ConflictError{Detail: detail}
}

// NewConflictErrorWithCause creates a ConflictError wrapping a cause.
func NewConflictErrorWithCause(detail string, cause error) *ConflictError {
	return &ConflictError{Detail: detail, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, sanitize(e.Detail), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrConflict, sanitize(e.Detail))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// PreconditionFailedError is returned when a request is well-formed but
// illegal given the current state of the entity.
type PreconditionFailedError struct {
	Detail string
}

// NewPreconditionFailedError creates a PreconditionFailedError with the given detail.
func NewPreconditionFailedError(detail string) *PreconditionFailedError {
	return &PreconditionFailedError{Detail: detail}
}

func (e *PreconditionFailedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPreconditionFailed, sanitize(e.Detail))
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

// ForbiddenError is returned when the principal has no rights over the target
// entity. The message never reveals more about the entity than visibility
// rules allow.
type ForbiddenError struct {
	Detail string
}

// NewForbiddenError creates a ForbiddenError with the given detail.
func NewForbiddenError(detail string) *ForbiddenError {
	return &ForbiddenError{Detail: detail}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s", ErrForbidden, sanitize(e.Detail))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// UpstreamError is returned when an external provider call fails.
// Payload holds the provider's raw response, when one was received,
// for diagnostics at the boundary.
type UpstreamError struct {
	Detail  string
	Payload []byte
	Cause   error
}

// NewUpstreamError creates an UpstreamError carrying the provider's raw response.
func NewUpstreamError(detail string, payload []byte) *UpstreamError {
	return &UpstreamError{Detail: detail, Payload: payload}
}

// NewUpstreamErrorWithCause creates an UpstreamError wrapping a transport-level cause.
func NewUpstreamErrorWithCause(detail string, cause error) *UpstreamError {
	return &UpstreamError{Detail: detail, Cause: cause}
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrUpstreamFailure, sanitize(e.Detail), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrUpstreamFailure, sanitize(e.Detail))
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstreamFailure
}
