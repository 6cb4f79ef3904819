// Package order provides domain entities and business logic for travel-order
// management. It implements the TravelOrder aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - TravelOrder: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier, owner, requester name,
//     destination, and travel period
//   - Order status follows a defined workflow: requested -> approved | canceled
//   - Approved orders can never be canceled through this API
//   - Canceled is a terminal state with no further transitions
//   - The owner of an order never changes after creation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
