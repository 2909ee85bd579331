package commands

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"
)

var ErrClockInCommandIsNotConstructed = errors.New(
	"ClockInCommand must be created via NewClockInCommand constructor",
)

// ClockInCommand represents an operator starting work on their assignment.
type ClockInCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClockInCommand creates a command to clock an operator in.
func NewClockInCommand(assignmentID kernel.UUID) (ClockInCommand, error) {
	cmd := ClockInCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setAssignmentID(assignmentID); err != nil {
		return ClockInCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrClockInCommandIsNotConstructed if validation fails.
func (c ClockInCommand) Validate() error {
	return c.guard.Validate(ErrClockInCommandIsNotConstructed)
}

// AssignmentID returns the unique identifier of the assignment.
func (c ClockInCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

func (c *ClockInCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}
