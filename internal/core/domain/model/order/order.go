package order

import (
	"errors"
	"fmt"
	"time"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

const (
	// MinPriority is the lowest permitted order priority.
	MinPriority = 1
	// MaxPriority is the highest permitted order priority.
	MaxPriority = 10
)

// Order represents a manufacturing order: a unit of planned production.
// It is the aggregate root that manages the order lifecycle from planning
// through release and execution to completion or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and product reference
//   - Quantity must be positive and carry a unit of measure
//   - Priority lies in [MinPriority, MaxPriority]
//   - Status transitions follow the edge set defined by Status
//   - ActualStartDate/ActualEndDate stamp once, on first entry into
//     InProgress/Completed, and are never overwritten afterwards
//   - Version increments on every mutating method (audit counter; it is
//     not compared against a caller-supplied value, so concurrent writers
//     are last-write-wins)
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// productID references the product being manufactured
	productID kernel.UUID

	// quantity is the planned production quantity (must be positive)
	quantity float64

	// unit is the unit of measure for quantity
	unit string

	// bomID optionally references the bill of materials
	bomID *kernel.UUID

	// routingID optionally references the routing template
	routingID *kernel.UUID

	// plannedStartDate and plannedEndDate come from planning
	plannedStartDate *time.Time
	plannedEndDate   *time.Time

	// actualStartDate stamps on first entry into InProgress
	actualStartDate *time.Time

	// actualEndDate stamps on first entry into Completed
	actualEndDate *time.Time

	// status represents the current state in the order lifecycle
	status Status

	// priority ranks the order for execution, 1 (lowest) to 10 (highest)
	priority int

	// version increments on every mutating write
	version int

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the primary way
// to create an Order for a fresh unit of production, ensuring all business
// invariants are maintained.
//
// The order starts in Planned status with version 1 and no actual dates.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	productID := kernel.NewUUID()
//	o, err := order.NewOrder(orderID, productID, 200, "pcs", 5)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id, productID kernel.UUID, quantity float64, unit string, priority int) (*Order, error) {
	o := &Order{
		status:        Planned,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProductID(productID),
		o.setQuantity(quantity),
		o.setUnit(unit),
		o.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage, preserving its
// full lifecycle state. The restored order behaves identically to one that
// reached the same state through domain operations.
func RestoreOrder(
	id, productID kernel.UUID,
	quantity float64,
	unit string,
	priority int,
	status Status,
	bomID, routingID *kernel.UUID,
	plannedStartDate, plannedEndDate *time.Time,
	actualStartDate, actualEndDate *time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		bomID:            bomID,
		routingID:        routingID,
		plannedStartDate: plannedStartDate,
		plannedEndDate:   plannedEndDate,
		actualStartDate:  actualStartDate,
		actualEndDate:    actualEndDate,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProductID(productID),
		o.setQuantity(quantity),
		o.setUnit(unit),
		o.setPriority(priority),
		o.setStatus(status),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct, and should be called when reconstructing
// orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ProductID returns the reference to the manufactured product.
func (o *Order) ProductID() kernel.UUID {
	return o.productID
}

// Quantity returns the planned production quantity.
func (o *Order) Quantity() float64 {
	return o.quantity
}

// Unit returns the unit of measure for the quantity.
func (o *Order) Unit() string {
	return o.unit
}

// BOMID returns the optional bill-of-materials reference.
func (o *Order) BOMID() *kernel.UUID {
	return o.bomID
}

// RoutingID returns the optional routing template reference.
func (o *Order) RoutingID() *kernel.UUID {
	return o.routingID
}

// PlannedStartDate returns the planned start date, nil when not planned.
func (o *Order) PlannedStartDate() *time.Time {
	return o.plannedStartDate
}

// PlannedEndDate returns the planned end date, nil when not planned.
func (o *Order) PlannedEndDate() *time.Time {
	return o.plannedEndDate
}

// ActualStartDate returns the timestamp of the first entry into InProgress,
// nil when execution has not started.
func (o *Order) ActualStartDate() *time.Time {
	return o.actualStartDate
}

// ActualEndDate returns the timestamp of the first entry into Completed,
// nil while the order is open.
func (o *Order) ActualEndDate() *time.Time {
	return o.actualEndDate
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Priority returns the order priority (1-10).
func (o *Order) Priority() int {
	return o.priority
}

// Version returns the audit version counter. It increments on every
// mutating write but is never compared against a caller-supplied value:
// concurrent transitions are last-write-wins.
func (o *Order) Version() int {
	return o.version
}

// SetPlannedDates records the planned execution window.
func (o *Order) SetPlannedDates(start, end *time.Time) {
	o.plannedStartDate = start
	o.plannedEndDate = end
	o.version++
}

// TransitionTo moves the order along a permitted status edge, applying
// timestamp side effects.
//
// Business rules:
//   - The edge from the current status to newStatus must exist in the
//     state machine; otherwise the order is left untouched and an
//     InvalidTransition error naming both statuses is returned
//   - Entering InProgress stamps ActualStartDate with now, only if unset
//   - Entering Completed stamps ActualEndDate with now, only if unset
//   - Stamps are idempotent: re-entering a status never overwrites an
//     existing timestamp
//
// Example:
//
//	err := o.TransitionTo(order.Released, time.Now())
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // Edge not permitted from the current status
//	}
func (o *Order) TransitionTo(newStatus Status, now time.Time) error {
	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	if next == InProgress && o.actualStartDate == nil {
		o.actualStartDate = &now
	}
	if next == Completed && o.actualEndDate == nil {
		o.actualEndDate = &now
	}

	o.status = next
	o.version++
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setProductID validates and sets the product reference.
func (o *Order) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	o.productID = productID
	return nil
}

// setQuantity validates and sets the planned quantity.
// Quantity must be positive (greater than 0).
func (o *Order) setQuantity(quantity float64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%v is not greater than 0", quantity),
		)
	}
	o.quantity = quantity
	return nil
}

// setUnit validates and sets the unit of measure.
func (o *Order) setUnit(unit string) error {
	if unit == "" {
		return errs.NewValueIsRequiredError("unit")
	}
	o.unit = unit
	return nil
}

// setPriority validates and sets the priority.
func (o *Order) setPriority(priority int) error {
	if priority < MinPriority || priority > MaxPriority {
		return errs.NewValueIsOutOfRangeError("priority", priority, MinPriority, MaxPriority)
	}
	o.priority = priority
	return nil
}

// setStatus validates and sets the status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setVersion validates and sets the version counter during restoration.
func (o *Order) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidErrorWithCause("version", fmt.Errorf("%d is not greater than 0", version))
	}
	o.version = version
	return nil
}
