package auth

import (
	"errors"

	"travelorder/internal/core/domain/model/kernel"
	"travelorder/internal/pkg/guard"
)

// ErrPrincipalIsNotConstructed is returned when a Principal was not created
// through the NewPrincipal constructor. A zero-value Principal means the
// request carries no authenticated actor.
var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// Principal represents the authenticated actor performing a request.
// It is an immutable value object carrying the actor's identity, display name,
// and administrator flag. The core never looks up "the current user" from
// ambient state; every operation receives its Principal as a parameter.
//
// Example:
//
//	principal, err := auth.NewPrincipal(userID, "Ada Lovelace", false)
//	if err != nil {
//	    // Handle validation error
//	}
type Principal struct { //nolint:recvcheck //using for validation
	id      kernel.UUID
	name    string
	isAdmin bool

	guard guard.ConstructorGuard
}

// NewPrincipal creates a Principal with the given identity.
// The id must be a valid UUID; the name may be empty since not every token
// carries one.
func NewPrincipal(id kernel.UUID, name string, isAdmin bool) (Principal, error) {
	if err := id.Validate(); err != nil {
		return Principal{}, err
	}

	return Principal{
		id:      id,
		name:    name,
		isAdmin: isAdmin,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// ID returns the principal's unique identifier.
func (p Principal) ID() kernel.UUID {
	return p.id
}

// Name returns the principal's display name. May be empty.
func (p Principal) Name() string {
	return p.name
}

// IsAdmin reports whether the principal has administrator rights.
func (p Principal) IsAdmin() bool {
	return p.isAdmin
}

// IsEqual compares two principals by their identifiers.
func (p Principal) IsEqual(other Principal) bool {
	return p.id.IsEqual(other.id)
}

// Validate checks that the Principal was created through NewPrincipal.
// Returns ErrPrincipalIsNotConstructed for zero values.
func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}
