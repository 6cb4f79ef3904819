// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"travelorder/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TravelOrderRepoFactory provides access to the travel-order repository within a transaction.
	TravelOrderRepoFactory interface {
		TravelOrderRepository() ports.TravelOrderRepository
	}

	// TravelOrderUoW manages transactions for travel-order operations.
	TravelOrderUoW interface {
		TxManager
		TravelOrderRepoFactory
	}

	// TravelOrderUoWFactory creates new travel-order unit of work instances.
	TravelOrderUoWFactory interface {
		Create() TravelOrderUoW
	}
)
