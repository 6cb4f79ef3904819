package order

import (
	"errors"
	"fmt"

	"travelorder/internal/pkg/errs"
)

// ErrTransitionNotAllowed classifies every rejected status transition.
// Use errors.Is to distinguish it from validation failures.
var ErrTransitionNotAllowed = errors.New("status transition is not allowed")

// ErrUnknownStatus classifies status strings outside the enum.
// It is raised at the boundary, before any transition or access check runs.
var ErrUnknownStatus = errors.New("status value is unknown")

// Status represents the lifecycle state of a travel order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Requested ──┬──> Approved
//	            │
//	            └──> Canceled
//
// Approved is a commitment: once travel is approved, cancellation must go
// through an out-of-band process, never this state machine. Canceled is fully
// terminal. Re-applying the current status to Requested or Approved orders is
// a permitted no-op.
//
// Status is a value object that validates state transitions and provides
// string representations for the API boundary and persistence.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Requested is the initial status when an order is first created.
	// Orders in this status await an administrator's decision.
	Requested

	// Approved indicates an administrator accepted the travel request.
	// Approved orders can never become Canceled.
	Approved

	// Canceled indicates the travel request was withdrawn.
	// This is a terminal state with no further transitions allowed.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Requested: "requested",
		Approved:  "approved",
		Canceled:  "canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Requested: "requested",
		Approved:  "approved",
		Canceled:  "canceled",
	}
}

// StatusFromString parses the wire representation of a status.
//
// Accepted values are exactly "requested", "approved", and "canceled".
// Any other string yields an UnknownStatusError, so illegal values are
// rejected at the boundary before reaching policy logic.
func StatusFromString(value string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, nil
		}
	}
	return Unknown, NewUnknownStatusError(value)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Requested, Approved, Canceled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
//
// Returns "requested", "approved", or "canceled" for valid statuses and
// "unknown" for invalid values. This method implements fmt.Stringer and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanTransitionTo reports whether changing from s to next is legal.
//
// The full transition table:
//
//	| current   | next      | allowed |
//	|-----------|-----------|---------|
//	| Requested | Requested | yes     |
//	| Requested | Approved  | yes     |
//	| Requested | Canceled  | yes     |
//	| Approved  | Requested | no      |
//	| Approved  | Approved  | yes     |
//	| Approved  | Canceled  | no      |
//	| Canceled  | *         | no      |
//
// Transitions involving an invalid status on either side are never allowed.
// This predicate has no side effects; use TransitionTo to perform the change.
func (s Status) CanTransitionTo(next Status) bool {
	if s.Validate() != nil || next.Validate() != nil {
		return false
	}

	switch s {
	case Requested:
		return true
	case Approved:
		return next == Approved
	default:
		return false
	}
}

// TransitionTo returns the status after a legal transition to next.
//
// Returns:
//   - (next, nil) when the transition is allowed by CanTransitionTo
//   - (0, *TransitionNotAllowedError) otherwise, carrying the attempted pair
//
// This method is used by TravelOrder.ChangeStatus to enforce state transitions.
func (s Status) TransitionTo(next Status) (Status, error) {
	if !s.CanTransitionTo(next) {
		return 0, NewTransitionNotAllowedError(s, next)
	}

	return next, nil
}

// TransitionNotAllowedError reports a transition rejected by the state machine.
// It carries the attempted current/next pair so callers can tell a policy
// rejection apart from a generic validation failure.
type TransitionNotAllowedError struct {
	From Status
	To   Status
}

// NewTransitionNotAllowedError creates a TransitionNotAllowedError for the attempted pair.
func NewTransitionNotAllowedError(from Status, to Status) *TransitionNotAllowedError {
	return &TransitionNotAllowedError{From: from, To: to}
}

func (e *TransitionNotAllowedError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrTransitionNotAllowed, e.From, e.To)
}

func (e *TransitionNotAllowedError) Unwrap() error {
	return ErrTransitionNotAllowed
}

// UnknownStatusError reports a status string outside the enum.
type UnknownStatusError struct {
	Value string
}

// NewUnknownStatusError creates an UnknownStatusError for the rejected value.
func NewUnknownStatusError(value string) *UnknownStatusError {
	return &UnknownStatusError{Value: value}
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownStatus, e.Value)
}

func (e *UnknownStatusError) Unwrap() error {
	return ErrUnknownStatus
}
