// Package order provides domain entities and business logic for manufacturing
// order management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, quantities, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier, product reference, and positive quantity
//   - Order status follows a defined workflow: Planned -> Released -> InProgress -> Completed
//   - Any non-terminal order can be cancelled; Completed and Cancelled are terminal
//   - Actual start/end dates stamp once, on first entry into InProgress/Completed
//   - Orders are never hard-deleted; removal is a soft-delete at the persistence layer
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
