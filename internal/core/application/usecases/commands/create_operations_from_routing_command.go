package commands

import (
	"errors"
	"fmt"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/errs"
	"mes/internal/pkg/guard"
)

var (
	ErrCreateOperationsFromRoutingCommandIsNotConstructed = errors.New(
		"CreateOperationsFromRoutingCommand must be created via NewCreateOperationsFromRoutingCommand constructor",
	)
	ErrRoutingStepsAreRequired = errors.New("at least one routing step is required")
)

// RoutingStep describes one operation to materialize from a routing
// template. Sequences are taken as supplied; uniqueness is not enforced and
// readers resolve ties deterministically.
type RoutingStep struct {
	WorkCenterID    kernel.UUID
	OperationCode   string
	Sequence        int
	PlannedQuantity float64
}

// CreateOperationsFromRoutingCommand represents a request to materialize an
// order's routing into waiting operations, one per step.
//
// Example:
//
//	cmd, err := NewCreateOperationsFromRoutingCommand(orderID, []RoutingStep{
//	    {WorkCenterID: lathe, OperationCode: "TURN", Sequence: 10, PlannedQuantity: 100},
//	    {WorkCenterID: drill, OperationCode: "DRILL", Sequence: 20, PlannedQuantity: 100},
//	})
type CreateOperationsFromRoutingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	steps   []RoutingStep

	guard guard.ConstructorGuard
}

// NewCreateOperationsFromRoutingCommand creates a command to materialize a
// routing. Validates the order ID and each step's work center, code and
// planned quantity.
func NewCreateOperationsFromRoutingCommand(
	orderID kernel.UUID,
	steps []RoutingStep,
) (CreateOperationsFromRoutingCommand, error) {
	cmd := CreateOperationsFromRoutingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSteps(steps),
	); err != nil {
		return CreateOperationsFromRoutingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOperationsFromRoutingCommandIsNotConstructed if validation fails.
func (c CreateOperationsFromRoutingCommand) Validate() error {
	return c.guard.Validate(ErrCreateOperationsFromRoutingCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to materialize.
func (c CreateOperationsFromRoutingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Steps returns the routing steps in the order they were supplied.
func (c CreateOperationsFromRoutingCommand) Steps() []RoutingStep {
	return c.steps
}

func (c *CreateOperationsFromRoutingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOperationsFromRoutingCommand) setSteps(steps []RoutingStep) error {
	if len(steps) == 0 {
		return ErrRoutingStepsAreRequired
	}

	for i, step := range steps {
		if err := step.WorkCenterID.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if step.OperationCode == "" {
			return fmt.Errorf("step %d: %w", i, errs.NewValueIsRequiredError("operationCode"))
		}
		if step.Sequence < 0 {
			return fmt.Errorf("step %d: %w", i, errs.NewValueIsInvalidError("sequence is invalid"))
		}
		if step.PlannedQuantity <= 0 {
			return fmt.Errorf("step %d: %w", i, errs.NewValueIsInvalidError("plannedQuantity is invalid"))
		}
	}

	c.steps = steps
	return nil
}
