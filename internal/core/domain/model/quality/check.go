package quality

import (
	"errors"
	"fmt"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/errs"
)

var (
	// ErrCheckIsNotConstructed is returned when a Check instance was not created
	// through the NewCheck or RestoreCheck factory methods.
	ErrCheckIsNotConstructed = errors.New("Check must be created via NewCheck or RestoreCheck constructor")
)

// Check represents one quality inspection instance belonging to a
// manufacturing order and, optionally, to one of its operations. It owns
// the inspection status/result state machine and the second-check fields
// populated on re-inspection.
//
// Invariants:
//   - Status transitions follow the edge set defined by Status;
//     Passed/Failed/Skipped can always re-enter InProgress (rework)
//   - ActualStartTime stamps on first entry into InProgress;
//     ActualEndTime stamps on first entry into a cycle-closing status;
//     both are idempotent under re-entry
//   - RecordResult derives status from the result and always overwrites
//     ActualEndTime: recording a result closes the current cycle
//     regardless of prior end-time state
//   - Version increments on every mutating method
type Check struct {
	id      kernel.UUID
	orderID kernel.UUID

	// operationID/workCenterID optionally tie the check to a routing step
	operationID  *kernel.UUID
	workCenterID *kernel.UUID

	checkCode      string
	inspectionType InspectionType

	// specification describes what is being verified; tolerance and unit
	// qualify the numeric bounds below
	specification string
	tolerance     string
	unit          string

	targetValue *float64
	minValue    *float64
	maxValue    *float64

	sequence   int
	isRequired bool

	status Status

	// result is nil until an inspector records an outcome
	result *Result

	measuredValue *float64
	notes         string
	inspectorID   string

	actualStartTime *time.Time
	actualEndTime   *time.Time

	// second-check fields capture the identity and time of a
	// re-inspection recorded after a closed cycle
	secondInspectorID string
	secondCheckTime   *time.Time

	version       int
	isConstructed bool
}

// NewCheck creates a Pending quality check from a template.
func NewCheck(
	id, orderID kernel.UUID,
	operationID, workCenterID *kernel.UUID,
	checkCode string,
	inspectionType InspectionType,
	specification string,
	sequence int,
	isRequired bool,
) (*Check, error) {
	c := &Check{
		operationID:   operationID,
		workCenterID:  workCenterID,
		specification: specification,
		isRequired:    isRequired,
		status:        Pending,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setOrderID(orderID),
		c.setCheckCode(checkCode),
		c.setInspectionType(inspectionType),
		c.setSequence(sequence),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCheck reconstructs a Check from persistent storage.
func RestoreCheck(
	id, orderID kernel.UUID,
	operationID, workCenterID *kernel.UUID,
	checkCode string,
	inspectionType InspectionType,
	specification, tolerance, unit string,
	targetValue, minValue, maxValue *float64,
	sequence int,
	isRequired bool,
	status Status,
	result *Result,
	measuredValue *float64,
	notes, inspectorID string,
	actualStartTime, actualEndTime *time.Time,
	secondInspectorID string,
	secondCheckTime *time.Time,
	version int,
) (*Check, error) {
	c := &Check{
		operationID:       operationID,
		workCenterID:      workCenterID,
		specification:     specification,
		tolerance:         tolerance,
		unit:              unit,
		targetValue:       targetValue,
		minValue:          minValue,
		maxValue:          maxValue,
		isRequired:        isRequired,
		measuredValue:     measuredValue,
		notes:             notes,
		inspectorID:       inspectorID,
		actualStartTime:   actualStartTime,
		actualEndTime:     actualEndTime,
		secondInspectorID: secondInspectorID,
		secondCheckTime:   secondCheckTime,
		isConstructed:     true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setOrderID(orderID),
		c.setCheckCode(checkCode),
		c.setInspectionType(inspectionType),
		c.setSequence(sequence),
		c.setStatus(status),
		c.setResult(result),
		c.setVersion(version),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Check was created through a factory method.
func (c *Check) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCheckIsNotConstructed
	}
	return nil
}

// IsEqual compares two checks by their unique identifiers.
func (c *Check) IsEqual(other *Check) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the check's unique identifier.
func (c *Check) ID() kernel.UUID { return c.id }

// OrderID returns the owning order reference.
func (c *Check) OrderID() kernel.UUID { return c.orderID }

// OperationID returns the optional routing-step reference.
func (c *Check) OperationID() *kernel.UUID { return c.operationID }

// WorkCenterID returns the optional work-center reference.
func (c *Check) WorkCenterID() *kernel.UUID { return c.workCenterID }

// CheckCode returns the externally assigned check code.
func (c *Check) CheckCode() string { return c.checkCode }

// InspectionType returns the kind of inspection performed.
func (c *Check) InspectionType() InspectionType { return c.inspectionType }

// Specification returns the textual specification under test.
func (c *Check) Specification() string { return c.specification }

// Tolerance returns the tolerance annotation for the bounds.
func (c *Check) Tolerance() string { return c.tolerance }

// Unit returns the unit of the numeric bounds and measured value.
func (c *Check) Unit() string { return c.unit }

// TargetValue returns the nominal value, nil when not numeric.
func (c *Check) TargetValue() *float64 { return c.targetValue }

// MinValue returns the lower bound, nil when unbounded.
func (c *Check) MinValue() *float64 { return c.minValue }

// MaxValue returns the upper bound, nil when unbounded.
func (c *Check) MaxValue() *float64 { return c.maxValue }

// Sequence returns the check's position within the order's checks.
func (c *Check) Sequence() int { return c.sequence }

// IsRequired reports whether a failed result counts as a critical failure.
func (c *Check) IsRequired() bool { return c.isRequired }

// Status returns the current inspection status.
func (c *Check) Status() Status { return c.status }

// Result returns the recorded outcome, nil until recorded.
func (c *Check) Result() *Result { return c.result }

// MeasuredValue returns the recorded measurement, nil until recorded.
func (c *Check) MeasuredValue() *float64 { return c.measuredValue }

// Notes returns inspector notes for the latest cycle.
func (c *Check) Notes() string { return c.notes }

// InspectorID returns the identity of the inspector on the latest cycle.
func (c *Check) InspectorID() string { return c.inspectorID }

// ActualStartTime returns the first-InProgress stamp, nil before start.
func (c *Check) ActualStartTime() *time.Time { return c.actualStartTime }

// ActualEndTime returns the latest cycle-closing stamp.
func (c *Check) ActualEndTime() *time.Time { return c.actualEndTime }

// SecondInspectorID returns the re-inspection inspector, empty when the
// check has only been inspected once.
func (c *Check) SecondInspectorID() string { return c.secondInspectorID }

// SecondCheckTime returns the re-inspection stamp, nil when the check has
// only been inspected once.
func (c *Check) SecondCheckTime() *time.Time { return c.secondCheckTime }

// Version returns the audit version counter.
func (c *Check) Version() int { return c.version }

// SetBounds records the numeric specification bounds.
func (c *Check) SetBounds(target, minValue, maxValue *float64, tolerance, unit string) {
	c.targetValue = target
	c.minValue = minValue
	c.maxValue = maxValue
	c.tolerance = tolerance
	c.unit = unit
	c.version++
}

// TransitionTo moves the check along a permitted status edge.
//
// Side effects:
//   - Entering InProgress stamps ActualStartTime with now, only if unset
//   - Entering Passed/Failed/Skipped stamps ActualEndTime with now, only
//     if unset (RecordResult, by contrast, always overwrites it)
//   - A non-empty inspector replaces the recorded inspector identity
func (c *Check) TransitionTo(newStatus Status, inspector string, now time.Time) error {
	next, err := c.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	if next == InProgress && c.actualStartTime == nil {
		c.actualStartTime = &now
	}
	if next.ClosesCycle() && c.actualEndTime == nil {
		c.actualEndTime = &now
	}
	if inspector != "" {
		c.inspectorID = inspector
	}

	c.status = next
	c.version++
	return nil
}

// RecordResult records the outcome of an inspection cycle. The status is
// derived from the result (Pass/ConditionalPass -> Passed, Fail ->
// Failed, NotApplicable -> Skipped) and ActualEndTime is always set to
// now: recording a result closes the current cycle regardless of prior
// end-time state.
//
// When a result is recorded over an earlier one, the re-inspection is a
// second check: the prior outcome is replaced and the second-check fields
// capture who re-inspected and when.
func (c *Check) RecordResult(result Result, measuredValue *float64, notes, inspector string, now time.Time) error {
	if err := result.Validate(); err != nil {
		return err
	}

	if c.result != nil {
		c.secondInspectorID = inspector
		c.secondCheckTime = &now
	}

	r := result
	c.result = &r
	c.status = result.Status()
	c.measuredValue = measuredValue
	if notes != "" {
		c.notes = notes
	}
	if inspector != "" {
		c.inspectorID = inspector
	}
	c.actualEndTime = &now
	c.version++
	return nil
}

func (c *Check) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Check) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *Check) setCheckCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("checkCode")
	}
	c.checkCode = code
	return nil
}

func (c *Check) setInspectionType(it InspectionType) error {
	if err := it.Validate(); err != nil {
		return err
	}
	c.inspectionType = it
	return nil
}

func (c *Check) setSequence(sequence int) error {
	if sequence < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"sequence is invalid",
			fmt.Errorf("%d is negative", sequence),
		)
	}
	c.sequence = sequence
	return nil
}

func (c *Check) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *Check) setResult(result *Result) error {
	if result == nil {
		return nil
	}
	if err := result.Validate(); err != nil {
		return err
	}
	r := *result
	c.result = &r
	return nil
}

func (c *Check) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidErrorWithCause("version", fmt.Errorf("%d is not greater than 0", version))
	}
	c.version = version
	return nil
}
