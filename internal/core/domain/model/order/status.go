package order

import (
	"fmt"

	"mes/internal/pkg/errs"
)

// Status represents the lifecycle state of a manufacturing order.
// It implements a state machine with a fixed edge set so orders follow
// the correct execution workflow.
//
// State transitions:
//
//	Planned ──> Released ──> InProgress ──> Completed
//	   │            │             │
//	   └────────────┴─────────────┴───────> Cancelled
//
// Completed and Cancelled are terminal states with no further
// transitions. The edge set is kept as data (see transitions) so the
// transition contract stays auditable and testable in isolation from
// persistence.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Planned is the initial status when an order is created by planning.
	// Planned orders have not been released to the shop floor yet.
	Planned

	// Released indicates the order has been released for execution.
	Released

	// InProgress indicates production has started on the order.
	InProgress

	// Completed indicates all production for the order has finished.
	// This is a final state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was abandoned before completion.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// transitions returns the fixed edge set of the order state machine,
// keyed by current status. A status mapped to an empty slice is terminal.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Planned:    {Released, Cancelled},
		Released:   {InProgress, Cancelled},
		InProgress: {Completed, Cancelled},
		Completed:  {},
		Cancelled:  {},
	}
}

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Planned:    "Planned",
		Released:   "Released",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Planned:    "Planned",
		Released:   "Released",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Planned, Released, InProgress, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones: invalid values
// render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status from its string name, as carried by
// API requests. Only valid statuses parse.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", name))
}

// IsTerminal reports whether the status has no outgoing edges.
// Completed and Cancelled are the terminal order statuses.
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(transitions()[s]) == 0
}

// CanTransitionTo reports whether the edge from s to next exists in the
// state machine. It performs no side effects and is safe to use for
// pre-validation before attempting a transition.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates the edge from the current status to next and
// returns the new status.
//
// Returns:
//   - (next, nil) on a valid transition
//   - (0, error) when next is not a valid status, or when the edge does
//     not exist; the transition error names both the current and the
//     requested status
//
// This method is used by Order.TransitionTo to enforce state transitions.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, errs.NewInvalidTransitionError(s.String(), next.String())
	}
	return next, nil
}
