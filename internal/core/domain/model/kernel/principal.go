package kernel

import (
	"errors"

	"deliverysys/internal/pkg/errs"
	"deliverysys/internal/pkg/guard"
)

// ErrPrincipalIsNotConstructed is returned when using a Principal that was not
// created via NewPrincipal.
var ErrPrincipalIsNotConstructed = errs.NewValueIsRequiredError(
	"principal must be created via NewPrincipal constructor")

// ErrUserRefIsNotConstructed is returned when using a UserRef that was not
// created via NewUserRef.
var ErrUserRefIsNotConstructed = errs.NewValueIsRequiredError(
	"user ref must be created via NewUserRef constructor")

// Principal is the authenticated actor issuing a request. The identity
// provider upstream authenticates the user and supplies the administrator
// capability; the core trusts the value and threads it explicitly through
// every operation instead of keeping ambient request state.
type Principal struct { //nolint:recvcheck //using for validation
	id       UUID
	username string
	isAdmin  bool

	guard guard.ConstructorGuard
}

// NewPrincipal creates a Principal with a valid ID, a non-empty username and
// the administrator capability computed once per request.
func NewPrincipal(id UUID, username string, isAdmin bool) (Principal, error) {
	p := Principal{
		isAdmin: isAdmin,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setID(id), p.setUsername(username)); err != nil {
		return Principal{}, err
	}

	return p, nil
}

// Validate ensures the Principal was created via NewPrincipal.
func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

// ID returns the principal's stable identifier.
func (p Principal) ID() UUID {
	return p.id
}

// Username returns the principal's username.
func (p Principal) Username() string {
	return p.username
}

// IsAdmin reports whether the principal has administrator rights.
func (p Principal) IsAdmin() bool {
	return p.isAdmin
}

// Ref returns the principal as a UserRef suitable for storing on entities.
func (p Principal) Ref() UserRef {
	return UserRef{
		id:       p.id,
		username: p.username,
		guard:    guard.NewConstructorGuard(),
	}
}

func (p *Principal) setID(id UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Principal) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	p.username = username
	return nil
}

// UserRef is a lightweight reference to a user held by entities: the stable
// identifier plus a username snapshot for display and search. The identity
// provider owns the user record itself.
type UserRef struct { //nolint:recvcheck //using for validation
	id       UUID
	username string

	guard guard.ConstructorGuard
}

// NewUserRef creates a UserRef with a valid ID and non-empty username.
func NewUserRef(id UUID, username string) (UserRef, error) {
	if err := id.Validate(); err != nil {
		return UserRef{}, err
	}
	if username == "" {
		return UserRef{}, errs.NewValueIsRequiredError("username")
	}

	return UserRef{
		id:       id,
		username: username,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the UserRef was created via NewUserRef.
func (r UserRef) Validate() error {
	return r.guard.Validate(ErrUserRefIsNotConstructed)
}

// ID returns the referenced user's identifier.
func (r UserRef) ID() UUID {
	return r.id
}

// Username returns the referenced user's username snapshot.
func (r UserRef) Username() string {
	return r.username
}

// IsEqual compares two refs by user identifier.
func (r UserRef) IsEqual(other UserRef) bool {
	return r.id.IsEqual(other.id)
}
