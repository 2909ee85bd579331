package http

import (
	"time"

	"mes/internal/core/domain/model/labor"
	"mes/internal/core/domain/model/operation"
	"mes/internal/core/domain/model/order"
	"mes/internal/core/domain/model/quality"
)

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// TransitionStatusRequest carries a requested status by name.
type TransitionStatusRequest struct {
	NewStatus string `json:"newStatus"`
}

// TransitionCheckStatusRequest carries a requested quality check status and
// the acting inspector.
type TransitionCheckStatusRequest struct {
	NewStatus string `json:"newStatus"`
	Inspector string `json:"inspector"`
}

// RecordResultRequest carries an inspection outcome.
type RecordResultRequest struct {
	Result        string   `json:"result"`
	MeasuredValue *float64 `json:"measuredValue,omitempty"`
	Notes         string   `json:"notes"`
	Inspector     string   `json:"inspector"`
}

// UpdateQuantityRequest carries a reported completed quantity.
type UpdateQuantityRequest struct {
	CompletedQuantity float64 `json:"completedQuantity"`
}

// RoutingStepRequest describes one routing step to materialize.
type RoutingStepRequest struct {
	WorkCenterID    string  `json:"workCenterId"`
	OperationCode   string  `json:"operationCode"`
	Sequence        int     `json:"sequence"`
	PlannedQuantity float64 `json:"plannedQuantity"`
}

// CreateOperationsRequest carries the routing steps of an order.
type CreateOperationsRequest struct {
	Steps []RoutingStepRequest `json:"steps"`
}

// ActiveOrdersRequest carries the paging parameters of the active orders
// listing.
type ActiveOrdersRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"pageSize"`
}

// OrderResponse renders an order aggregate.
type OrderResponse struct {
	ID               string     `json:"id"`
	ProductID        string     `json:"productId"`
	Quantity         float64    `json:"quantity"`
	Unit             string     `json:"unit"`
	Priority         int        `json:"priority"`
	Status           string     `json:"status"`
	PlannedStartDate *time.Time `json:"plannedStartDate,omitempty"`
	PlannedEndDate   *time.Time `json:"plannedEndDate,omitempty"`
	ActualStartDate  *time.Time `json:"actualStartDate,omitempty"`
	ActualEndDate    *time.Time `json:"actualEndDate,omitempty"`
	Version          int        `json:"version"`
}

func orderResponseFromDomain(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:               o.ID().String(),
		ProductID:        o.ProductID().String(),
		Quantity:         o.Quantity(),
		Unit:             o.Unit(),
		Priority:         o.Priority(),
		Status:           o.Status().String(),
		PlannedStartDate: o.PlannedStartDate(),
		PlannedEndDate:   o.PlannedEndDate(),
		ActualStartDate:  o.ActualStartDate(),
		ActualEndDate:    o.ActualEndDate(),
		Version:          o.Version(),
	}
}

// OperationResponse renders an operation aggregate.
type OperationResponse struct {
	ID                string     `json:"id"`
	OrderID           string     `json:"orderId"`
	WorkCenterID      string     `json:"workCenterId"`
	OperationCode     string     `json:"operationCode"`
	Sequence          int        `json:"sequence"`
	PlannedQuantity   float64    `json:"plannedQuantity"`
	CompletedQuantity float64    `json:"completedQuantity"`
	Status            string     `json:"status"`
	ActualStartTime   *time.Time `json:"actualStartTime,omitempty"`
	ActualEndTime     *time.Time `json:"actualEndTime,omitempty"`
	Version           int        `json:"version"`
}

func operationResponseFromDomain(op *operation.Operation) OperationResponse {
	return OperationResponse{
		ID:                op.ID().String(),
		OrderID:           op.OrderID().String(),
		WorkCenterID:      op.WorkCenterID().String(),
		OperationCode:     op.OperationCode(),
		Sequence:          op.Sequence(),
		PlannedQuantity:   op.PlannedQuantity(),
		CompletedQuantity: op.CompletedQuantity(),
		Status:            op.Status().String(),
		ActualStartTime:   op.ActualStartTime(),
		ActualEndTime:     op.ActualEndTime(),
		Version:           op.Version(),
	}
}

// CheckResponse renders a quality check aggregate.
type CheckResponse struct {
	ID              string     `json:"id"`
	OrderID         string     `json:"orderId"`
	OperationID     *string    `json:"operationId,omitempty"`
	CheckCode       string     `json:"checkCode"`
	InspectionType  string     `json:"inspectionType"`
	Sequence        int        `json:"sequence"`
	IsRequired      bool       `json:"isRequired"`
	Status          string     `json:"status"`
	Result          *string    `json:"result,omitempty"`
	MeasuredValue   *float64   `json:"measuredValue,omitempty"`
	Notes           string     `json:"notes"`
	InspectorID     string     `json:"inspectorId"`
	ActualStartTime *time.Time `json:"actualStartTime,omitempty"`
	ActualEndTime   *time.Time `json:"actualEndTime,omitempty"`
	Version         int        `json:"version"`
}

func checkResponseFromDomain(c *quality.Check) CheckResponse {
	var operationID *string
	if id := c.OperationID(); id != nil {
		s := id.String()
		operationID = &s
	}

	var result *string
	if r := c.Result(); r != nil {
		s := r.String()
		result = &s
	}

	return CheckResponse{
		ID:              c.ID().String(),
		OrderID:         c.OrderID().String(),
		OperationID:     operationID,
		CheckCode:       c.CheckCode(),
		InspectionType:  c.InspectionType().String(),
		Sequence:        c.Sequence(),
		IsRequired:      c.IsRequired(),
		Status:          c.Status().String(),
		Result:          result,
		MeasuredValue:   c.MeasuredValue(),
		Notes:           c.Notes(),
		InspectorID:     c.InspectorID(),
		ActualStartTime: c.ActualStartTime(),
		ActualEndTime:   c.ActualEndTime(),
		Version:         c.Version(),
	}
}

// AssignmentResponse renders a labor assignment aggregate.
type AssignmentResponse struct {
	ID           string     `json:"id"`
	OperationID  string     `json:"operationId"`
	OperatorID   string     `json:"operatorId"`
	OperatorName string     `json:"operatorName"`
	Role         string     `json:"role"`
	Status       string     `json:"status"`
	ClockInTime  *time.Time `json:"clockInTime,omitempty"`
	ClockOutTime *time.Time `json:"clockOutTime,omitempty"`
	ActualHours  *float64   `json:"actualHours,omitempty"`
	PlannedHours float64    `json:"plannedHours"`
	HourlyRate   float64    `json:"hourlyRate"`
	Version      int        `json:"version"`
}

func assignmentResponseFromDomain(a *labor.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:           a.ID().String(),
		OperationID:  a.OperationID().String(),
		OperatorID:   a.OperatorID(),
		OperatorName: a.OperatorName(),
		Role:         a.Role().String(),
		Status:       a.Status().String(),
		ClockInTime:  a.ClockInTime(),
		ClockOutTime: a.ClockOutTime(),
		ActualHours:  a.ActualHours(),
		PlannedHours: a.PlannedHours(),
		HourlyRate:   a.HourlyRate(),
		Version:      a.Version(),
	}
}
