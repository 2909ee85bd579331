package labor

import (
	"errors"
	"fmt"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/errs"
)

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment instance was not
	// created through the NewAssignment or RestoreAssignment factory methods.
	ErrAssignmentIsNotConstructed = errors.New(
		"Assignment must be created via NewAssignment or RestoreAssignment constructor")
)

const secondsPerHour = 3600.0

// Assignment represents an operator's time allocation to an order
// operation. It owns the clock-in/out and break state machine and is the
// single place actual worked hours are derived.
//
// Invariants:
//   - Status transitions follow the edge set defined by Status
//   - ClockOut is the sole derivation point for ActualHours: elapsed
//     clock-in to clock-out seconds divided by 3600, overwriting any
//     prior value; break periods are not subtracted
//   - StartBreak/EndBreak toggle the status without touching timestamps
//     or recomputing hours
//   - Version increments on every mutating method
type Assignment struct {
	id          kernel.UUID
	operationID kernel.UUID

	operatorID   string
	operatorName string
	role         Role

	status Status

	clockInTime  *time.Time
	clockOutTime *time.Time

	// actualHours is derived at clock-out, nil before the first clock-out
	actualHours *float64

	// plannedHours feeds the efficiency ratio in labor summaries
	plannedHours float64

	hourlyRate float64

	version       int
	isConstructed bool
}

// NewAssignment creates an Assigned allocation for an operator.
func NewAssignment(
	id, operationID kernel.UUID,
	operatorID, operatorName string,
	role Role,
	plannedHours, hourlyRate float64,
) (*Assignment, error) {
	a := &Assignment{
		operatorName:  operatorName,
		status:        Assigned,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOperationID(operationID),
		a.setOperatorID(operatorID),
		a.setRole(role),
		a.setPlannedHours(plannedHours),
		a.setHourlyRate(hourlyRate),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAssignment reconstructs an Assignment from persistent storage.
func RestoreAssignment(
	id, operationID kernel.UUID,
	operatorID, operatorName string,
	role Role,
	status Status,
	clockInTime, clockOutTime *time.Time,
	actualHours *float64,
	plannedHours, hourlyRate float64,
	version int,
) (*Assignment, error) {
	a := &Assignment{
		operatorName:  operatorName,
		clockInTime:   clockInTime,
		clockOutTime:  clockOutTime,
		actualHours:   actualHours,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOperationID(operationID),
		a.setOperatorID(operatorID),
		a.setRole(role),
		a.setStatus(status),
		a.setPlannedHours(plannedHours),
		a.setHourlyRate(hourlyRate),
		a.setVersion(version),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Assignment was created through a factory method.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two assignments by their unique identifiers.
func (a *Assignment) IsEqual(other *Assignment) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID { return a.id }

// OperationID returns the owning operation reference.
func (a *Assignment) OperationID() kernel.UUID { return a.operationID }

// OperatorID returns the operator identity.
func (a *Assignment) OperatorID() string { return a.operatorID }

// OperatorName returns the operator display name.
func (a *Assignment) OperatorName() string { return a.operatorName }

// Role returns whether the operator leads or assists.
func (a *Assignment) Role() Role { return a.role }

// Status returns the current presence status.
func (a *Assignment) Status() Status { return a.status }

// ClockInTime returns the latest clock-in stamp, nil before the first.
func (a *Assignment) ClockInTime() *time.Time { return a.clockInTime }

// ClockOutTime returns the latest clock-out stamp, nil before the first.
func (a *Assignment) ClockOutTime() *time.Time { return a.clockOutTime }

// ActualHours returns the hours derived at the latest clock-out, nil
// before the first clock-out.
func (a *Assignment) ActualHours() *float64 { return a.actualHours }

// PlannedHours returns the hours the allocation was planned for.
func (a *Assignment) PlannedHours() float64 { return a.plannedHours }

// HourlyRate returns the operator's cost rate.
func (a *Assignment) HourlyRate() float64 { return a.hourlyRate }

// Version returns the audit version counter.
func (a *Assignment) Version() int { return a.version }

// ClockIn puts the operator to work: status becomes Active and the
// clock-in stamp is set to now. Re-clocking in after a clock-out starts a
// fresh interval, so the stamp is overwritten.
func (a *Assignment) ClockIn(now time.Time) error {
	next, err := a.status.TransitionTo(Active)
	if err != nil {
		return err
	}

	a.clockInTime = &now
	a.status = next
	a.version++
	return nil
}

// ClockOut ends the working interval: status becomes Offline, the
// clock-out stamp is set to now, and ActualHours is derived as elapsed
// seconds divided by 3600. This is the sole place hours are derived and
// it overwrites any prior value. Break time is not subtracted.
func (a *Assignment) ClockOut(now time.Time) error {
	if a.clockInTime == nil {
		return errs.NewValueIsRequiredError("clockInTime")
	}

	next, err := a.status.TransitionTo(Offline)
	if err != nil {
		return err
	}

	hours := now.Sub(*a.clockInTime).Seconds() / secondsPerHour
	a.clockOutTime = &now
	a.actualHours = &hours
	a.status = next
	a.version++
	return nil
}

// StartBreak pauses an active operator. Timestamps and derived hours are
// left untouched.
func (a *Assignment) StartBreak() error {
	if a.status != Active {
		return errs.NewInvalidTransitionError(a.status.String(), OnBreak.String())
	}

	a.status = OnBreak
	a.version++
	return nil
}

// EndBreak resumes a paused operator. Timestamps and derived hours are
// left untouched.
func (a *Assignment) EndBreak() error {
	if a.status != OnBreak {
		return errs.NewInvalidTransitionError(a.status.String(), Active.String())
	}

	a.status = Active
	a.version++
	return nil
}

func (a *Assignment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Assignment) setOperationID(operationID kernel.UUID) error {
	if err := operationID.Validate(); err != nil {
		return err
	}
	a.operationID = operationID
	return nil
}

func (a *Assignment) setOperatorID(operatorID string) error {
	if operatorID == "" {
		return errs.NewValueIsRequiredError("operatorID")
	}
	a.operatorID = operatorID
	return nil
}

func (a *Assignment) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

func (a *Assignment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}

func (a *Assignment) setPlannedHours(hours float64) error {
	if hours < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"plannedHours is invalid",
			fmt.Errorf("%v is negative", hours),
		)
	}
	a.plannedHours = hours
	return nil
}

func (a *Assignment) setHourlyRate(rate float64) error {
	if rate < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"hourlyRate is invalid",
			fmt.Errorf("%v is negative", rate),
		)
	}
	a.hourlyRate = rate
	return nil
}

func (a *Assignment) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidErrorWithCause("version", fmt.Errorf("%d is not greater than 0", version))
	}
	a.version = version
	return nil
}
