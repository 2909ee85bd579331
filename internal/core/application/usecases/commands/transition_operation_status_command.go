package commands

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/operation"
	"mes/internal/pkg/guard"
)

var ErrTransitionOperationStatusCommandIsNotConstructed = errors.New(
	"TransitionOperationStatusCommand must be created via NewTransitionOperationStatusCommand constructor",
)

// TransitionOperationStatusCommand represents a request to move an order
// operation along its execution lifecycle: starting it, blocking it on a
// material shortage, resuming it or completing it manually.
type TransitionOperationStatusCommand struct { //nolint:recvcheck //using for validation
	operationID kernel.UUID
	newStatus   operation.Status

	guard guard.ConstructorGuard
}

// NewTransitionOperationStatusCommand creates a command to transition an
// operation. Validates that the operation ID and the requested status are
// valid.
func NewTransitionOperationStatusCommand(
	operationID kernel.UUID,
	newStatus operation.Status,
) (TransitionOperationStatusCommand, error) {
	cmd := TransitionOperationStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOperationID(operationID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return TransitionOperationStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOperationStatusCommandIsNotConstructed if validation fails.
func (c TransitionOperationStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOperationStatusCommandIsNotConstructed)
}

// OperationID returns the unique identifier of the operation to transition.
func (c TransitionOperationStatusCommand) OperationID() kernel.UUID {
	return c.operationID
}

// NewStatus returns the requested target status.
func (c TransitionOperationStatusCommand) NewStatus() operation.Status {
	return c.newStatus
}

func (c *TransitionOperationStatusCommand) setOperationID(operationID kernel.UUID) error {
	if err := operationID.Validate(); err != nil {
		return err
	}

	c.operationID = operationID
	return nil
}

func (c *TransitionOperationStatusCommand) setNewStatus(newStatus operation.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
