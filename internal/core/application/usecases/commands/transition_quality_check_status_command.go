package commands

import (
	"errors"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/quality"
	"mes/internal/pkg/guard"
)

var ErrTransitionQualityCheckStatusCommandIsNotConstructed = errors.New(
	"TransitionQualityCheckStatusCommand must be created via NewTransitionQualityCheckStatusCommand constructor",
)

// TransitionQualityCheckStatusCommand represents a request to move a quality
// check through its inspection cycle: starting an inspection, skipping a
// check or reopening a closed one for re-inspection.
type TransitionQualityCheckStatusCommand struct { //nolint:recvcheck //using for validation
	checkID   kernel.UUID
	newStatus quality.Status

	// inspector is optional; when present it replaces the recorded identity
	inspector string

	guard guard.ConstructorGuard
}

// NewTransitionQualityCheckStatusCommand creates a command to transition a
// quality check. The inspector identity may be empty.
func NewTransitionQualityCheckStatusCommand(
	checkID kernel.UUID,
	newStatus quality.Status,
	inspector string,
) (TransitionQualityCheckStatusCommand, error) {
	cmd := TransitionQualityCheckStatusCommand{
		inspector: inspector,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCheckID(checkID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return TransitionQualityCheckStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionQualityCheckStatusCommandIsNotConstructed if validation fails.
func (c TransitionQualityCheckStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionQualityCheckStatusCommandIsNotConstructed)
}

// CheckID returns the unique identifier of the check to transition.
func (c TransitionQualityCheckStatusCommand) CheckID() kernel.UUID {
	return c.checkID
}

// NewStatus returns the requested target status.
func (c TransitionQualityCheckStatusCommand) NewStatus() quality.Status {
	return c.newStatus
}

// Inspector returns the optional inspector identity.
func (c TransitionQualityCheckStatusCommand) Inspector() string {
	return c.inspector
}

func (c *TransitionQualityCheckStatusCommand) setCheckID(checkID kernel.UUID) error {
	if err := checkID.Validate(); err != nil {
		return err
	}

	c.checkID = checkID
	return nil
}

func (c *TransitionQualityCheckStatusCommand) setNewStatus(newStatus quality.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
