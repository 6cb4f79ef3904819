package commands

import (
	"errors"

	"travelorder/internal/pkg/guard"
)

var (
	ErrCancelExpiredTravelOrdersCommandIsNotConstructed = errors.New(
		"CancelExpiredTravelOrdersCommand must be created via NewCancelExpiredTravelOrdersCommand constructor",
	)
)

// CancelExpiredTravelOrdersCommand requests cancellation of travel orders that
// are still awaiting a decision although their travel window has already
// started. Issued by the background expiry job, not by end users, so it
// carries no principal: the job acts as the system itself.
type CancelExpiredTravelOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewCancelExpiredTravelOrdersCommand creates a command to cancel stale requests.
// This is a parameterless command; the cutoff is the current day, taken by the handler.
func NewCancelExpiredTravelOrdersCommand() CancelExpiredTravelOrdersCommand {
	return CancelExpiredTravelOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelExpiredTravelOrdersCommandIsNotConstructed if validation fails.
func (c CancelExpiredTravelOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelExpiredTravelOrdersCommandIsNotConstructed)
}
