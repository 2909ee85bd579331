package operation

import (
	"fmt"

	"mes/internal/pkg/errs"
)

// Status represents the execution state of an order operation.
//
// State transitions:
//
//	Waiting ──> InProgress ──> Completed
//	   │  ▲         │  ▲
//	   ▼  │         ▼  │
//	   Blocked ────────┘
//
// Blocked operations may resume to Waiting or InProgress. Completed is
// terminal. The edge set is kept as data (see transitions).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Waiting is the initial status of an operation created from a routing.
	Waiting

	// InProgress indicates work has started at the work center.
	InProgress

	// Completed indicates the operation has produced its planned quantity.
	// This is a final state with no further transitions allowed.
	Completed

	// Blocked indicates the operation cannot proceed (material shortage,
	// machine down). Blocked operations can resume.
	Blocked
)

// transitions returns the fixed edge set of the operation state machine.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Waiting:    {InProgress, Blocked},
		InProgress: {Completed, Blocked},
		Blocked:    {Waiting, InProgress},
		Completed:  {},
	}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Waiting:    "Waiting",
		InProgress: "InProgress",
		Completed:  "Completed",
		Blocked:    "Blocked",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Waiting:    "Waiting",
		InProgress: "InProgress",
		Completed:  "Completed",
		Blocked:    "Blocked",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Safe to call on
// any value; invalid values render as "Unknown".
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
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(transitions()[s]) == 0
}

// CanTransitionTo reports whether the edge from s to next exists.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates the edge from the current status to next and
// returns the new status. Failed transitions return an error naming both
// the current and the requested status.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, errs.NewInvalidTransitionError(s.String(), next.String())
	}
	return next, nil
}
