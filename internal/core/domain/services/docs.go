// Package services provides domain services that orchestrate business rules
// across multiple domain entities in the tailoring system. It implements
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - StatusResolver: A pure function deriving an order's aggregate status
//     from the states of its production tasks
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
