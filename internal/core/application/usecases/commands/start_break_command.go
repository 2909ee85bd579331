package commands

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"
)

var ErrStartBreakCommandIsNotConstructed = errors.New(
	"StartBreakCommand must be created via NewStartBreakCommand constructor",
)

// StartBreakCommand represents an active operator pausing work.
type StartBreakCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartBreakCommand creates a command to start an operator's break.
func NewStartBreakCommand(assignmentID kernel.UUID) (StartBreakCommand, error) {
	cmd := StartBreakCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setAssignmentID(assignmentID); err != nil {
		return StartBreakCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartBreakCommandIsNotConstructed if validation fails.
func (c StartBreakCommand) Validate() error {
	return c.guard.Validate(ErrStartBreakCommandIsNotConstructed)
}

// AssignmentID returns the unique identifier of the assignment.
func (c StartBreakCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

func (c *StartBreakCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}
