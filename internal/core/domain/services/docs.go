// Package services provides domain services for the travel-order system.
// Domain services hold business logic that spans aggregates and doesn't
// naturally belong to a single aggregate root.
//
// The package includes:
//   - AccessPolicy: pure predicates deciding whether a principal may view or
//     mutate a given travel order
//
// Keeping authorization rules here, separate from both the aggregates and the
// application handlers, lets them be unit tested in isolation and keeps ad hoc
// permission checks out of the transport layer.
package services
