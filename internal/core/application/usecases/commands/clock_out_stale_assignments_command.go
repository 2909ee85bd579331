package commands

import (
	"errors"
	"fmt"
	"time"

	"mes/internal/pkg/errs"
	"mes/internal/pkg/guard"
)

var ErrClockOutStaleAssignmentsCommandIsNotConstructed = errors.New(
	"ClockOutStaleAssignmentsCommand must be created via NewClockOutStaleAssignmentsCommand constructor",
)

// ClockOutStaleAssignmentsCommand represents a shift close-out sweep:
// operators who have been on the clock longer than the maximum shift length
// are force-clocked-out. The scheduled job issues this command; it is not
// exposed over the API.
type ClockOutStaleAssignmentsCommand struct { //nolint:recvcheck //using for validation
	maxShiftLength time.Duration

	guard guard.ConstructorGuard
}

// NewClockOutStaleAssignmentsCommand creates a close-out command for
// assignments on the clock longer than maxShiftLength.
func NewClockOutStaleAssignmentsCommand(maxShiftLength time.Duration) (ClockOutStaleAssignmentsCommand, error) {
	cmd := ClockOutStaleAssignmentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setMaxShiftLength(maxShiftLength); err != nil {
		return ClockOutStaleAssignmentsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrClockOutStaleAssignmentsCommandIsNotConstructed if validation fails.
func (c ClockOutStaleAssignmentsCommand) Validate() error {
	return c.guard.Validate(ErrClockOutStaleAssignmentsCommandIsNotConstructed)
}

// MaxShiftLength returns the longest interval an operator may stay on the
// clock before the sweep closes their shift.
func (c ClockOutStaleAssignmentsCommand) MaxShiftLength() time.Duration {
	return c.maxShiftLength
}

func (c *ClockOutStaleAssignmentsCommand) setMaxShiftLength(maxShiftLength time.Duration) error {
	if maxShiftLength <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxShiftLength is invalid",
			fmt.Errorf("%v is not greater than 0", maxShiftLength),
		)
	}

	c.maxShiftLength = maxShiftLength
	return nil
}
