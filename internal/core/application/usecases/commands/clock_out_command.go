package commands

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"
)

var ErrClockOutCommandIsNotConstructed = errors.New(
	"ClockOutCommand must be created via NewClockOutCommand constructor",
)

// ClockOutCommand represents an operator ending work on their assignment.
type ClockOutCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClockOutCommand creates a command to clock an operator out.
func NewClockOutCommand(assignmentID kernel.UUID) (ClockOutCommand, error) {
	cmd := ClockOutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setAssignmentID(assignmentID); err != nil {
		return ClockOutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrClockOutCommandIsNotConstructed if validation fails.
func (c ClockOutCommand) Validate() error {
	return c.guard.Validate(ErrClockOutCommandIsNotConstructed)
}

// AssignmentID returns the unique identifier of the assignment.
func (c ClockOutCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

func (c *ClockOutCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}
