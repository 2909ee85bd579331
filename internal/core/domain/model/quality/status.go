package quality

import (
	"fmt"

	"mes/internal/pkg/errs"
)

// Status represents the inspection state of a quality check.
//
// State transitions:
//
//	Pending ──> InProgress ──> Passed
//	   │          ▲  │  ▲────────┘
//	   │          │  ├──> Failed ──┐
//	   │          │  │      │      │
//	   │          │  └──> Pending  │
//	   ▼          │                │
//	Skipped ──────┴────────────────┘
//
// Passed, Failed, and Skipped close an inspection cycle but are not
// terminal: every one of them can re-enter InProgress, so a check can be
// re-inspected after rework. The edge set is kept as data (see
// transitions).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a check created from a template.
	Pending

	// InProgress indicates an inspector is performing the check.
	InProgress

	// Passed indicates the last inspection cycle succeeded.
	Passed

	// Failed indicates the last inspection cycle found a defect.
	Failed

	// Skipped indicates the check was waived for this order.
	Skipped
)

// transitions returns the fixed edge set of the quality-check state
// machine. Note the re-inspection edges out of Passed/Failed/Skipped.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {InProgress, Skipped},
		InProgress: {Passed, Failed, Pending},
		Passed:     {InProgress},
		Failed:     {InProgress},
		Skipped:    {InProgress},
	}
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		InProgress: "InProgress",
		Passed:     "Passed",
		Failed:     "Failed",
		Skipped:    "Skipped",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		InProgress: "InProgress",
		Passed:     "Passed",
		Failed:     "Failed",
		Skipped:    "Skipped",
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

// ClosesCycle reports whether entering this status ends the current
// inspection cycle. Cycle-closing statuses stamp the check's actual end
// time on first entry.
func (s Status) ClosesCycle() bool {
	return s == Passed || s == Failed || s == Skipped
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
