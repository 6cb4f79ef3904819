package commands

import (
	"errors"
	"fmt"
	"time"

	"travelorder/internal/core/domain/model/auth"
	"travelorder/internal/core/domain/model/kernel"
	"travelorder/internal/pkg/errs"
	"travelorder/internal/pkg/guard"
)

var (
	ErrCreateTravelOrderCommandIsNotConstructed = errors.New(
		"CreateTravelOrderCommand must be created via NewCreateTravelOrderCommand constructor",
	)
)

// CreateTravelOrderCommand represents a request to submit a new travel order.
// Encapsulates the requesting principal and the travel details.
//
// Example:
//
//	cmd, err := NewCreateTravelOrderCommand(principal, "Ada Lovelace", "London", "Paris", period)
//	if err != nil {
//	    return fmt.Errorf("invalid travel order data: %w", err)
//	}
//
//	handler := NewCreateTravelOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create travel order: %w", err)
//	}
//	fmt.Printf("Travel order %s awaits approval", created.ID())
type CreateTravelOrderCommand struct { //nolint:recvcheck //using for validation
	principal     auth.Principal
	requesterName string
	origin        string
	destination   string
	period        kernel.Period

	guard guard.ConstructorGuard
}

// NewCreateTravelOrderCommand creates a command to submit a new travel order.
//
// The principal must be a resolved, authenticated actor; a zero-value
// principal yields an UnauthenticatedError. When requesterName is empty it
// defaults to the principal's name. The travel window must not start in the
// past. Destination validation happens in the aggregate constructor.
func NewCreateTravelOrderCommand(
	principal auth.Principal,
	requesterName string,
	origin string,
	destination string,
	period kernel.Period,
) (CreateTravelOrderCommand, error) {
	if err := principal.Validate(); err != nil {
		return CreateTravelOrderCommand{}, errs.NewUnauthenticatedErrorWithCause(err)
	}

	orderCommand := CreateTravelOrderCommand{
		principal: principal,
		origin:    origin,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setRequesterName(requesterName),
		orderCommand.setDestination(destination),
		orderCommand.setPeriod(period),
	); err != nil {
		return CreateTravelOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateTravelOrderCommandIsNotConstructed if validation fails.
func (c CreateTravelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateTravelOrderCommandIsNotConstructed)
}

// Principal returns the authenticated actor submitting the order.
func (c CreateTravelOrderCommand) Principal() auth.Principal {
	return c.principal
}

// RequesterName returns the name of the person traveling.
func (c CreateTravelOrderCommand) RequesterName() string {
	return c.requesterName
}

// Origin returns the departure location. May be empty.
func (c CreateTravelOrderCommand) Origin() string {
	return c.origin
}

// Destination returns the travel destination.
func (c CreateTravelOrderCommand) Destination() string {
	return c.destination
}

// Period returns the requested travel window.
func (c CreateTravelOrderCommand) Period() kernel.Period {
	return c.period
}

func (c *CreateTravelOrderCommand) setRequesterName(requesterName string) error {
	if requesterName == "" {
		requesterName = c.principal.Name()
	}
	if requesterName == "" {
		return errs.NewValueIsRequiredError("requesterName")
	}

	c.requesterName = requesterName
	return nil
}

func (c *CreateTravelOrderCommand) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}

	c.destination = destination
	return nil
}

func (c *CreateTravelOrderCommand) setPeriod(period kernel.Period) error {
	if err := period.Validate(); err != nil {
		return err
	}

	if period.StartsBefore(time.Now()) {
		return errs.NewValueIsInvalidErrorWithCause("period",
			fmt.Errorf("travel window %s starts in the past", period))
	}

	c.period = period
	return nil
}
