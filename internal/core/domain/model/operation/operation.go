package operation

import (
	"errors"
	"fmt"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/errs"
)

var (
	// ErrOperationIsNotConstructed is returned when an Operation instance was not
	// created through the NewOperation or RestoreOperation factory methods.
	ErrOperationIsNotConstructed = errors.New(
		"Operation must be created via NewOperation or RestoreOperation constructor")
)

// Operation represents one work-center step within a manufacturing
// order's routing. It owns the per-step status state machine, quantity
// tracking, and completion timestamps.
//
// Invariants:
//   - 0 <= completedQuantity <= plannedQuantity at all times
//   - Status transitions follow the edge set defined by Status
//   - ActualStartTime/ActualEndTime stamp once, on first entry into
//     InProgress/Completed
//   - Transitioning to Completed forces completedQuantity up to
//     plannedQuantity: an operation cannot complete while under-reporting
//     output
//   - Reporting completedQuantity == plannedQuantity while InProgress
//     completes the operation automatically
//   - Version increments on every mutating method
type Operation struct {
	id           kernel.UUID
	orderID      kernel.UUID
	workCenterID kernel.UUID

	// operationCode is the externally assigned code for the step
	operationCode string

	// sequence defines execution order within the owning order.
	// Values are caller-supplied at batch creation and not re-validated
	// for uniqueness; readers order by (sequence, id) to stay stable.
	sequence int

	plannedQuantity   float64
	completedQuantity float64

	status Status

	plannedStartTime *time.Time
	plannedEndTime   *time.Time
	actualStartTime  *time.Time
	actualEndTime    *time.Time

	version       int
	isConstructed bool
}

// NewOperation creates a Waiting operation with zero completed quantity,
// as produced by batch creation from a routing template.
func NewOperation(
	id, orderID, workCenterID kernel.UUID,
	operationCode string,
	sequence int,
	plannedQuantity float64,
) (*Operation, error) {
	op := &Operation{
		status:        Waiting,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		op.setID(id),
		op.setOrderID(orderID),
		op.setWorkCenterID(workCenterID),
		op.setOperationCode(operationCode),
		op.setSequence(sequence),
		op.setPlannedQuantity(plannedQuantity),
	); err != nil {
		return nil, err
	}

	return op, nil
}

// RestoreOperation reconstructs an Operation from persistent storage.
func RestoreOperation(
	id, orderID, workCenterID kernel.UUID,
	operationCode string,
	sequence int,
	plannedQuantity, completedQuantity float64,
	status Status,
	plannedStartTime, plannedEndTime *time.Time,
	actualStartTime, actualEndTime *time.Time,
	version int,
) (*Operation, error) {
	op := &Operation{
		plannedStartTime: plannedStartTime,
		plannedEndTime:   plannedEndTime,
		actualStartTime:  actualStartTime,
		actualEndTime:    actualEndTime,
		isConstructed:    true,
	}

	if err := errors.Join(
		op.setID(id),
		op.setOrderID(orderID),
		op.setWorkCenterID(workCenterID),
		op.setOperationCode(operationCode),
		op.setSequence(sequence),
		op.setPlannedQuantity(plannedQuantity),
		op.setStatus(status),
		op.setVersion(version),
	); err != nil {
		return nil, err
	}

	if err := op.setCompletedQuantity(completedQuantity); err != nil {
		return nil, err
	}

	return op, nil
}

// Validate ensures the Operation was created through a factory method.
func (op *Operation) Validate() error {
	if op == nil || !op.isConstructed {
		return ErrOperationIsNotConstructed
	}
	return nil
}

// IsEqual compares two operations by their unique identifiers.
func (op *Operation) IsEqual(other *Operation) bool {
	return other != nil && op.id.IsEqual(other.id)
}

// ID returns the operation's unique identifier.
func (op *Operation) ID() kernel.UUID { return op.id }

// OrderID returns the owning order reference.
func (op *Operation) OrderID() kernel.UUID { return op.orderID }

// WorkCenterID returns the work-center reference.
func (op *Operation) WorkCenterID() kernel.UUID { return op.workCenterID }

// OperationCode returns the externally assigned operation code.
func (op *Operation) OperationCode() string { return op.operationCode }

// Sequence returns the execution position within the owning order.
func (op *Operation) Sequence() int { return op.sequence }

// PlannedQuantity returns the quantity the step is expected to produce.
func (op *Operation) PlannedQuantity() float64 { return op.plannedQuantity }

// CompletedQuantity returns the quantity reported so far.
func (op *Operation) CompletedQuantity() float64 { return op.completedQuantity }

// Status returns the current status of the operation.
func (op *Operation) Status() Status { return op.status }

// PlannedStartTime returns the planned start, nil when not planned.
func (op *Operation) PlannedStartTime() *time.Time { return op.plannedStartTime }

// PlannedEndTime returns the planned end, nil when not planned.
func (op *Operation) PlannedEndTime() *time.Time { return op.plannedEndTime }

// ActualStartTime returns the first-InProgress stamp, nil before start.
func (op *Operation) ActualStartTime() *time.Time { return op.actualStartTime }

// ActualEndTime returns the completion stamp, nil while open.
func (op *Operation) ActualEndTime() *time.Time { return op.actualEndTime }

// Version returns the audit version counter. It increments on every
// mutating write and is never compared back: concurrent writers are
// last-write-wins.
func (op *Operation) Version() int { return op.version }

// SetPlannedWindow records the planned execution window.
func (op *Operation) SetPlannedWindow(start, end *time.Time) {
	op.plannedStartTime = start
	op.plannedEndTime = end
	op.version++
}

// TransitionTo moves the operation along a permitted status edge.
//
// Side effects:
//   - Entering InProgress stamps ActualStartTime with now, only if unset
//   - Entering Completed stamps ActualEndTime with now, only if unset,
//     and forces completedQuantity up to plannedQuantity when it is below
//
// An illegal edge returns an InvalidTransition error naming both statuses
// and leaves the operation untouched.
func (op *Operation) TransitionTo(newStatus Status, now time.Time) error {
	next, err := op.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	if next == InProgress && op.actualStartTime == nil {
		op.actualStartTime = &now
	}
	if next == Completed {
		if op.actualEndTime == nil {
			op.actualEndTime = &now
		}
		if op.completedQuantity < op.plannedQuantity {
			op.completedQuantity = op.plannedQuantity
		}
	}

	op.status = next
	op.version++
	return nil
}

// UpdateCompletedQuantity records reported output for the step.
//
// The new value must satisfy 0 <= quantity <= plannedQuantity; violations
// return a range error and do not mutate state. When the new value equals
// plannedQuantity and the operation is InProgress, the operation
// auto-transitions to Completed and stamps ActualEndTime: quantity
// completion is itself a transition trigger, not just a data update.
//
// Returns whether the update completed the operation.
func (op *Operation) UpdateCompletedQuantity(quantity float64, now time.Time) (bool, error) {
	if quantity < 0 || quantity > op.plannedQuantity {
		return false, errs.NewValueIsOutOfRangeError("completedQuantity", quantity, 0, op.plannedQuantity)
	}

	op.completedQuantity = quantity
	op.version++

	if quantity == op.plannedQuantity && op.status == InProgress {
		op.status = Completed
		if op.actualEndTime == nil {
			op.actualEndTime = &now
		}
		return true, nil
	}

	return false, nil
}

func (op *Operation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	op.id = id
	return nil
}

func (op *Operation) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	op.orderID = orderID
	return nil
}

func (op *Operation) setWorkCenterID(workCenterID kernel.UUID) error {
	if err := workCenterID.Validate(); err != nil {
		return err
	}
	op.workCenterID = workCenterID
	return nil
}

func (op *Operation) setOperationCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("operationCode")
	}
	op.operationCode = code
	return nil
}

func (op *Operation) setSequence(sequence int) error {
	if sequence < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"sequence is invalid",
			fmt.Errorf("%d is negative", sequence),
		)
	}
	op.sequence = sequence
	return nil
}

func (op *Operation) setPlannedQuantity(quantity float64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"plannedQuantity is invalid",
			fmt.Errorf("%v is not greater than 0", quantity),
		)
	}
	op.plannedQuantity = quantity
	return nil
}

// setCompletedQuantity is used during restoration only; runtime updates
// go through UpdateCompletedQuantity. Must be called after
// setPlannedQuantity so the upper bound is in place.
func (op *Operation) setCompletedQuantity(quantity float64) error {
	if quantity < 0 || quantity > op.plannedQuantity {
		return errs.NewValueIsOutOfRangeError("completedQuantity", quantity, 0, op.plannedQuantity)
	}
	op.completedQuantity = quantity
	return nil
}

func (op *Operation) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	op.status = status
	return nil
}

func (op *Operation) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidErrorWithCause("version", fmt.Errorf("%d is not greater than 0", version))
	}
	op.version = version
	return nil
}
