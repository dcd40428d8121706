// Package guard provides a constructor guard for value objects and commands.
// Embedding a ConstructorGuard lets a type tell apart instances created via
// its constructor from zero values, without exposing a bool to callers.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned when validating a zero-value guard.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built through a constructor.
// The zero value is invalid; obtain a valid guard with NewConstructorGuard.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard marking its holder as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil when the holder was built through its constructor.
// For zero values it returns notConstructedErr, or ErrDefaultConstructorGuard when
// notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructedErr
}
