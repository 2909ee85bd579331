package commands

import (
	"errors"
	"fmt"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/errs"
	"mes/internal/pkg/guard"
)

var ErrUpdateOperationQuantityCommandIsNotConstructed = errors.New(
	"UpdateOperationQuantityCommand must be created via NewUpdateOperationQuantityCommand constructor",
)

// UpdateOperationQuantityCommand represents a shop-floor report of produced
// quantity for an operation. Reporting the full planned quantity while the
// operation runs completes it automatically.
type UpdateOperationQuantityCommand struct { //nolint:recvcheck //using for validation
	operationID       kernel.UUID
	completedQuantity float64

	guard guard.ConstructorGuard
}

// NewUpdateOperationQuantityCommand creates a command to report produced
// quantity. The upper bound against the planned quantity is enforced by the
// aggregate; the command only rejects negative values early.
func NewUpdateOperationQuantityCommand(
	operationID kernel.UUID,
	completedQuantity float64,
) (UpdateOperationQuantityCommand, error) {
	cmd := UpdateOperationQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOperationID(operationID),
		cmd.setCompletedQuantity(completedQuantity),
	); err != nil {
		return UpdateOperationQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOperationQuantityCommandIsNotConstructed if validation fails.
func (c UpdateOperationQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOperationQuantityCommandIsNotConstructed)
}

// OperationID returns the unique identifier of the operation to update.
func (c UpdateOperationQuantityCommand) OperationID() kernel.UUID {
	return c.operationID
}

// CompletedQuantity returns the reported produced quantity.
func (c UpdateOperationQuantityCommand) CompletedQuantity() float64 {
	return c.completedQuantity
}

func (c *UpdateOperationQuantityCommand) setOperationID(operationID kernel.UUID) error {
	if err := operationID.Validate(); err != nil {
		return err
	}

	c.operationID = operationID
	return nil
}

func (c *UpdateOperationQuantityCommand) setCompletedQuantity(quantity float64) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"completedQuantity is invalid",
			fmt.Errorf("%v is negative", quantity),
		)
	}

	c.completedQuantity = quantity
	return nil
}
