package labor

import (
	"fmt"

	"mes/internal/pkg/errs"
)

// Status represents an operator's presence state on an assignment.
//
// State transitions:
//
//	Assigned ──> Active <──> OnBreak
//	               │  ▲        │
//	               ▼  │        │
//	             Offline <─────┘
//
// Offline operators may clock back in, so no status is terminal. The edge
// set is kept as data (see transitions).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Assigned is the initial status: allocated but not yet clocked in.
	Assigned

	// Active indicates the operator is clocked in and working.
	Active

	// OnBreak indicates the operator is clocked in but paused.
	OnBreak

	// Offline indicates the operator has clocked out.
	Offline
)

// transitions returns the fixed edge set of the assignment state machine.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Assigned: {Active},
		Active:   {OnBreak, Offline},
		OnBreak:  {Active, Offline},
		Offline:  {Active},
	}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Assigned: "Assigned",
		Active:   "Active",
		OnBreak:  "OnBreak",
		Offline:  "Offline",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Assigned: "Assigned",
		Active:   "Active",
		OnBreak:  "OnBreak",
		Offline:  "Offline",
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
