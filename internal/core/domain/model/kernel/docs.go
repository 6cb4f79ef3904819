// Package kernel provides shared value objects used across the travel-order
// domain model. It contains building blocks that carry no aggregate-specific
// behavior of their own:
//
//   - UUID: an immutable identifier wrapping github.com/google/uuid
//   - Period: a validated travel window with a start and an end date
//
// All value objects in this package are immutable, validate themselves on
// construction, and expose a Validate method so reconstructed instances
// (e.g., loaded from persistence) can be checked before use.
package kernel
