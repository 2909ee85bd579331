package commands

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/guard"
)

var ErrEndBreakCommandIsNotConstructed = errors.New(
	"EndBreakCommand must be created via NewEndBreakCommand constructor",
)

// EndBreakCommand represents an operator resuming work after a break.
type EndBreakCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewEndBreakCommand creates a command to end an operator's break.
func NewEndBreakCommand(assignmentID kernel.UUID) (EndBreakCommand, error) {
	cmd := EndBreakCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setAssignmentID(assignmentID); err != nil {
		return EndBreakCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEndBreakCommandIsNotConstructed if validation fails.
func (c EndBreakCommand) Validate() error {
	return c.guard.Validate(ErrEndBreakCommandIsNotConstructed)
}

// AssignmentID returns the unique identifier of the assignment.
func (c EndBreakCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

func (c *EndBreakCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}
