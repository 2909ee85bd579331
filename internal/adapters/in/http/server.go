// Package http exposes the execution use cases over a REST API.
// It coordinates between HTTP handlers and application use cases,
// translating domain errors into status codes.
package http

import (
	"errors"
	"net/http"

	"mes/internal/core/application/usecases/commands"
	"mes/internal/core/application/usecases/queries"
	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/labor"
	"mes/internal/core/domain/model/operation"
	"mes/internal/core/domain/model/order"
	"mes/internal/core/domain/model/quality"
	"mes/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for order execution, quality and labor
// operations.
type Server struct {
	// Command handlers
	transitionOrderStatusHandler        commands.TransitionOrderStatusCommandHandler
	transitionOperationStatusHandler    commands.TransitionOperationStatusCommandHandler
	updateOperationQuantityHandler      commands.UpdateOperationQuantityCommandHandler
	createOperationsFromRoutingHandler  commands.CreateOperationsFromRoutingCommandHandler
	transitionQualityCheckStatusHandler commands.TransitionQualityCheckStatusCommandHandler
	recordQualityResultHandler          commands.RecordQualityResultCommandHandler
	clockInHandler                      commands.ClockInCommandHandler
	clockOutHandler                     commands.ClockOutCommandHandler
	startBreakHandler                   commands.StartBreakCommandHandler
	endBreakHandler                     commands.EndBreakCommandHandler

	// Query handlers
	getOperationProgressHandler     queries.GetOperationProgressQueryHandler
	getQualitySummaryHandler        queries.GetQualitySummaryQueryHandler
	getLaborSummaryHandler          queries.GetLaborSummaryQueryHandler
	getOrderExecutionSummaryHandler queries.GetOrderExecutionSummaryQueryHandler
	getActiveOrdersHandler          queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	transitionOrderStatusHandler commands.TransitionOrderStatusCommandHandler,
	transitionOperationStatusHandler commands.TransitionOperationStatusCommandHandler,
	updateOperationQuantityHandler commands.UpdateOperationQuantityCommandHandler,
	createOperationsFromRoutingHandler commands.CreateOperationsFromRoutingCommandHandler,
	transitionQualityCheckStatusHandler commands.TransitionQualityCheckStatusCommandHandler,
	recordQualityResultHandler commands.RecordQualityResultCommandHandler,
	clockInHandler commands.ClockInCommandHandler,
	clockOutHandler commands.ClockOutCommandHandler,
	startBreakHandler commands.StartBreakCommandHandler,
	endBreakHandler commands.EndBreakCommandHandler,
	getOperationProgressHandler queries.GetOperationProgressQueryHandler,
	getQualitySummaryHandler queries.GetQualitySummaryQueryHandler,
	getLaborSummaryHandler queries.GetLaborSummaryQueryHandler,
	getOrderExecutionSummaryHandler queries.GetOrderExecutionSummaryQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		transitionOrderStatusHandler:        transitionOrderStatusHandler,
		transitionOperationStatusHandler:    transitionOperationStatusHandler,
		updateOperationQuantityHandler:      updateOperationQuantityHandler,
		createOperationsFromRoutingHandler:  createOperationsFromRoutingHandler,
		transitionQualityCheckStatusHandler: transitionQualityCheckStatusHandler,
		recordQualityResultHandler:          recordQualityResultHandler,
		clockInHandler:                      clockInHandler,
		clockOutHandler:                     clockOutHandler,
		startBreakHandler:                   startBreakHandler,
		endBreakHandler:                     endBreakHandler,
		getOperationProgressHandler:         getOperationProgressHandler,
		getQualitySummaryHandler:            getQualitySummaryHandler,
		getLaborSummaryHandler:              getLaborSummaryHandler,
		getOrderExecutionSummaryHandler:     getOrderExecutionSummaryHandler,
		getActiveOrdersHandler:              getActiveOrdersHandler,
	}
}

// RegisterRoutes attaches all execution API routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders/:orderID/status", s.TransitionOrderStatus)
	api.POST("/orders/:orderID/operations", s.CreateOperationsFromRouting)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:orderID/progress", s.GetOperationProgress)
	api.GET("/orders/:orderID/quality-summary", s.GetQualitySummary)
	api.GET("/orders/:orderID/execution-summary", s.GetOrderExecutionSummary)

	api.POST("/operations/:operationID/status", s.TransitionOperationStatus)
	api.POST("/operations/:operationID/quantity", s.UpdateOperationQuantity)
	api.GET("/operations/:operationID/labor-summary", s.GetLaborSummary)

	api.POST("/quality-checks/:checkID/status", s.TransitionQualityCheckStatus)
	api.POST("/quality-checks/:checkID/result", s.RecordQualityResult)

	api.POST("/labor-assignments/:assignmentID/clock-in", s.ClockIn)
	api.POST("/labor-assignments/:assignmentID/clock-out", s.ClockOut)
	api.POST("/labor-assignments/:assignmentID/start-break", s.StartBreak)
	api.POST("/labor-assignments/:assignmentID/end-break", s.EndBreak)
}

// TransitionOrderStatus handles POST /api/v1/orders/:orderID/status.
func (s *Server) TransitionOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req TransitionStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newStatus, err := order.StatusFromString(req.NewStatus)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(orderID, newStatus)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	updated, err := s.transitionOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFromDomain(updated))
}

// CreateOperationsFromRouting handles POST /api/v1/orders/:orderID/operations.
func (s *Server) CreateOperationsFromRouting(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var req CreateOperationsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	steps := make([]commands.RoutingStep, 0, len(req.Steps))
	for _, step := range req.Steps {
		workCenterID, stepErr := kernel.UUIDFromString(step.WorkCenterID)
		if stepErr != nil {
			return badRequest(ctx, "Invalid work center ID: "+stepErr.Error())
		}
		steps = append(steps, commands.RoutingStep{
			WorkCenterID:    workCenterID,
			OperationCode:   step.OperationCode,
			Sequence:        step.Sequence,
			PlannedQuantity: step.PlannedQuantity,
		})
	}

	cmd, err := commands.NewCreateOperationsFromRoutingCommand(orderID, steps)
	if err != nil {
		return badRequest(ctx, "Invalid routing data: "+err.Error())
	}

	created, err := s.createOperationsFromRoutingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]OperationResponse, len(created))
	for i, op := range created {
		response[i] = operationResponseFromDomain(op)
	}

	return ctx.JSON(http.StatusCreated, response)
}

// TransitionOperationStatus handles POST /api/v1/operations/:operationID/status.
func (s *Server) TransitionOperationStatus(ctx echo.Context) error {
	operationID, err := kernel.UUIDFromString(ctx.Param("operationID"))
	if err != nil {
		return badRequest(ctx, "Invalid operation ID: "+err.Error())
	}

	var req TransitionStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newStatus, err := operation.StatusFromString(req.NewStatus)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewTransitionOperationStatusCommand(operationID, newStatus)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	updated, err := s.transitionOperationStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, operationResponseFromDomain(updated))
}

// UpdateOperationQuantity handles POST /api/v1/operations/:operationID/quantity.
func (s *Server) UpdateOperationQuantity(ctx echo.Context) error {
	operationID, err := kernel.UUIDFromString(ctx.Param("operationID"))
	if err != nil {
		return badRequest(ctx, "Invalid operation ID: "+err.Error())
	}

	var req UpdateQuantityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOperationQuantityCommand(operationID, req.CompletedQuantity)
	if err != nil {
		return badRequest(ctx, "Invalid quantity data: "+err.Error())
	}

	updated, err := s.updateOperationQuantityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, operationResponseFromDomain(updated))
}

// TransitionQualityCheckStatus handles POST /api/v1/quality-checks/:checkID/status.
func (s *Server) TransitionQualityCheckStatus(ctx echo.Context) error {
	checkID, err := kernel.UUIDFromString(ctx.Param("checkID"))
	if err != nil {
		return badRequest(ctx, "Invalid check ID: "+err.Error())
	}

	var req TransitionCheckStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newStatus, err := quality.StatusFromString(req.NewStatus)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewTransitionQualityCheckStatusCommand(checkID, newStatus, req.Inspector)
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	updated, err := s.transitionQualityCheckStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, checkResponseFromDomain(updated))
}

// RecordQualityResult handles POST /api/v1/quality-checks/:checkID/result.
func (s *Server) RecordQualityResult(ctx echo.Context) error {
	checkID, err := kernel.UUIDFromString(ctx.Param("checkID"))
	if err != nil {
		return badRequest(ctx, "Invalid check ID: "+err.Error())
	}

	var req RecordResultRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	result, err := quality.ResultFromString(req.Result)
	if err != nil {
		return badRequest(ctx, "Invalid result: "+err.Error())
	}

	cmd, err := commands.NewRecordQualityResultCommand(checkID, result, req.MeasuredValue, req.Notes, req.Inspector)
	if err != nil {
		return badRequest(ctx, "Invalid result data: "+err.Error())
	}

	updated, err := s.recordQualityResultHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, checkResponseFromDomain(updated))
}

// ClockIn handles POST /api/v1/labor-assignments/:assignmentID/clock-in.
func (s *Server) ClockIn(ctx echo.Context) error {
	return s.laborAction(ctx, func(assignmentID kernel.UUID) (*labor.Assignment, error) {
		cmd, err := commands.NewClockInCommand(assignmentID)
		if err != nil {
			return nil, err
		}
		return s.clockInHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ClockOut handles POST /api/v1/labor-assignments/:assignmentID/clock-out.
func (s *Server) ClockOut(ctx echo.Context) error {
	return s.laborAction(ctx, func(assignmentID kernel.UUID) (*labor.Assignment, error) {
		cmd, err := commands.NewClockOutCommand(assignmentID)
		if err != nil {
			return nil, err
		}
		return s.clockOutHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// StartBreak handles POST /api/v1/labor-assignments/:assignmentID/start-break.
func (s *Server) StartBreak(ctx echo.Context) error {
	return s.laborAction(ctx, func(assignmentID kernel.UUID) (*labor.Assignment, error) {
		cmd, err := commands.NewStartBreakCommand(assignmentID)
		if err != nil {
			return nil, err
		}
		return s.startBreakHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// EndBreak handles POST /api/v1/labor-assignments/:assignmentID/end-break.
func (s *Server) EndBreak(ctx echo.Context) error {
	return s.laborAction(ctx, func(assignmentID kernel.UUID) (*labor.Assignment, error) {
		cmd, err := commands.NewEndBreakCommand(assignmentID)
		if err != nil {
			return nil, err
		}
		return s.endBreakHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// GetOperationProgress handles GET /api/v1/orders/:orderID/progress.
func (s *Server) GetOperationProgress(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetOperationProgressQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	progress, err := s.getOperationProgressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, progress)
}

// GetQualitySummary handles GET /api/v1/orders/:orderID/quality-summary.
func (s *Server) GetQualitySummary(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetQualitySummaryQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	summary, err := s.getQualitySummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summary)
}

// GetLaborSummary handles GET /api/v1/operations/:operationID/labor-summary.
func (s *Server) GetLaborSummary(ctx echo.Context) error {
	operationID, err := kernel.UUIDFromString(ctx.Param("operationID"))
	if err != nil {
		return badRequest(ctx, "Invalid operation ID: "+err.Error())
	}

	query, err := queries.NewGetLaborSummaryQuery(operationID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	summary, err := s.getLaborSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summary)
}

// GetOrderExecutionSummary handles GET /api/v1/orders/:orderID/execution-summary.
func (s *Server) GetOrderExecutionSummary(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetOrderExecutionSummaryQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	summary, err := s.getOrderExecutionSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summary)
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	var req ActiveOrdersRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid query parameters")
	}
	if req.Page == 0 {
		req.Page = 1
	}

	query, err := queries.NewGetActiveOrdersQuery(req.Page, req.PageSize)
	if err != nil {
		return badRequest(ctx, "Invalid paging: "+err.Error())
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// laborAction factors the shared shape of the four labor endpoints:
// parse the assignment ID, run the command, render the assignment.
func (s *Server) laborAction(ctx echo.Context, run func(kernel.UUID) (*labor.Assignment, error)) error {
	assignmentID, err := kernel.UUIDFromString(ctx.Param("assignmentID"))
	if err != nil {
		return badRequest(ctx, "Invalid assignment ID: "+err.Error())
	}

	updated, err := run(assignmentID)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, assignmentResponseFromDomain(updated))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps use case failures onto HTTP status codes: missing
// aggregates are 404, rejected state machine edges are 409, malformed
// values are 400, everything else is opaque 500.
func domainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
