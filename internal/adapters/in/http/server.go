// Package http provides the inbound HTTP adapter. It translates REST
// requests into commands and queries and maps domain errors onto HTTP
// status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/carrier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for order lifecycle and carrier
// routing. It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	transitionOrderHandler   commands.TransitionOrderCommandHandler
	bulkTransitionHandler    commands.BulkTransitionOrdersCommandHandler
	recordPerformanceHandler commands.RecordCarrierPerformanceCommandHandler

	// Query handlers
	validNextStatusesHandler queries.GetValidNextStatusesQueryHandler
	orderMetricsHandler      queries.GetOrderMetricsQueryHandler
	selectCarrierHandler     queries.SelectCarrierQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	bulkTransitionHandler commands.BulkTransitionOrdersCommandHandler,
	recordPerformanceHandler commands.RecordCarrierPerformanceCommandHandler,
	validNextStatusesHandler queries.GetValidNextStatusesQueryHandler,
	orderMetricsHandler queries.GetOrderMetricsQueryHandler,
	selectCarrierHandler queries.SelectCarrierQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		transitionOrderHandler:   transitionOrderHandler,
		bulkTransitionHandler:    bulkTransitionHandler,
		recordPerformanceHandler: recordPerformanceHandler,
		validNextStatusesHandler: validNextStatusesHandler,
		orderMetricsHandler:      orderMetricsHandler,
		selectCarrierHandler:     selectCarrierHandler,
	}
}

// RegisterRoutes wires the server's handlers into the echo instance.
func RegisterRoutes(e *echo.Echo, s *Server) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.POST("/orders/transitions", s.BulkTransitionOrders)
	v1.POST("/orders/:id/transition", s.TransitionOrder)
	v1.GET("/orders/:id/metrics", s.GetOrderMetrics)
	v1.GET("/statuses/:status/next", s.GetValidNextStatuses)
	v1.POST("/routing/select", s.SelectCarrier)
	v1.POST("/carriers/:id/performance", s.RecordCarrierPerformance)
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	// ValidOptions lists the permitted destination statuses when a
	// transition is rejected.
	ValidOptions []string `json:"valid_options,omitempty"`
}

// TransitionRequest carries one status change with its metadata.
type TransitionRequest struct {
	Target       string     `json:"target"`
	User         string     `json:"user,omitempty"`
	Reason       string     `json:"reason,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Carrier      string     `json:"carrier,omitempty"`
	AWB          string     `json:"awb,omitempty"`
	DeliveryDate *time.Time `json:"delivery_date,omitempty"`
	RTOReason    string     `json:"rto_reason,omitempty"`
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - registers a new order in Pending status.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request struct {
		Metadata map[string]string `json:"metadata,omitempty"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, request.Metadata)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, map[string]string{
		"order_id": orderID.String(),
		"status":   order.Pending.String(),
	})
}

// TransitionOrder handles POST /api/v1/orders/:id/transition - applies one
// status change to an order. Rejected transitions return 409 with the
// permitted destinations.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request TransitionRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(request.Target)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+request.Target)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, transitionMeta(request))
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	if handleErr := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return transitionError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, map[string]string{
		"order_id": orderID.String(),
		"status":   target.String(),
	})
}

// BulkTransitionOrders handles POST /api/v1/orders/transitions - applies one
// status change to a batch of orders. Per-order failures are reported in the
// response, not as an error status.
func (s *Server) BulkTransitionOrders(ctx echo.Context) error {
	var request struct {
		OrderIDs []string `json:"order_ids"`
		TransitionRequest
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderIDs := make([]kernel.UUID, 0, len(request.OrderIDs))
	for _, raw := range request.OrderIDs {
		orderID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid order id: "+raw)
		}
		orderIDs = append(orderIDs, orderID)
	}

	target, err := order.StatusFromString(request.Target)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+request.Target)
	}

	cmd, err := commands.NewBulkTransitionOrdersCommand(orderIDs, target, transitionMeta(request.TransitionRequest))
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	result, err := s.bulkTransitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to apply transitions")
	}

	return ctx.JSON(http.StatusOK, bulkResponse(result))
}

// GetValidNextStatuses handles GET /api/v1/statuses/:status/next - lists the
// permitted destination statuses for one source status.
func (s *Server) GetValidNextStatuses(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.Param("status"))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+ctx.Param("status"))
	}

	query, err := queries.NewGetValidNextStatusesQuery(status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+ctx.Param("status"))
	}

	response, err := s.validNextStatusesHandler.Handle(query)
	if err != nil {
		return internalError(ctx, "Failed to resolve next statuses")
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"current": response.Current.String(),
		"next":    statusLabels(response.Next),
	})
}

// GetOrderMetrics handles GET /api/v1/orders/:id/metrics - derives lifecycle
// metrics from an order's status history.
func (s *Server) GetOrderMetrics(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderMetricsQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	response, err := s.orderMetricsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		var notFoundErr *errs.ObjectNotFoundError
		if errors.As(err, &notFoundErr) {
			return notFound(ctx, "Order not found")
		}
		return internalError(ctx, "Failed to compute metrics")
	}

	body := map[string]any{
		"order_id":         response.OrderID.String(),
		"status":           response.Status.String(),
		"transition_count": response.Metrics.TransitionCount,
	}
	if response.Metrics.HasProcessingTime {
		body["processing_hours"] = response.Metrics.ProcessingHours
	}
	if response.Metrics.HasTransitTime {
		body["transit_days"] = response.Metrics.TransitDays
	}
	if response.Metrics.HasTotalTime {
		body["total_days"] = response.Metrics.TotalDays
	}

	return ctx.JSON(http.StatusOK, body)
}

// SelectCarrier handles POST /api/v1/routing/select - scores the eligible
// carriers for a shipment and returns the ranking.
func (s *Server) SelectCarrier(ctx echo.Context) error {
	var request struct {
		Pincode   string  `json:"pincode"`
		Zone      string  `json:"zone"`
		WeightKg  float64 `json:"weight_kg"`
		COD       bool    `json:"cod,omitempty"`
		CODAmount float64 `json:"cod_amount,omitempty"`
		Express   bool    `json:"express,omitempty"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	zone, err := kernel.ZoneFromString(request.Zone)
	if err != nil {
		return badRequest(ctx, "Invalid zone: "+request.Zone)
	}

	query, err := queries.NewSelectCarrierQuery(services.RoutingRequest{
		Pincode:   request.Pincode,
		Zone:      zone,
		WeightKg:  request.WeightKg,
		COD:       request.COD,
		CODAmount: request.CODAmount,
		Express:   request.Express,
	})
	if err != nil {
		return badRequest(ctx, "Invalid routing request: "+err.Error())
	}

	result, err := s.selectCarrierHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, services.ErrNoEligibleCarrier) {
			return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Code:    http.StatusUnprocessableEntity,
				Message: "No carrier can take this shipment",
			})
		}
		return internalError(ctx, "Failed to select carrier")
	}

	alternatives := make([]map[string]any, 0, len(result.Alternatives))
	for _, alternative := range result.Alternatives {
		alternatives = append(alternatives, carrierScoreBody(alternative))
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"selected":     carrierScoreBody(result.Selected),
		"alternatives": alternatives,
	})
}

// RecordCarrierPerformance handles POST /api/v1/carriers/:id/performance -
// feeds one shipment outcome into a carrier's zone history.
func (s *Server) RecordCarrierPerformance(ctx echo.Context) error {
	var request struct {
		Zone         string  `json:"zone"`
		Success      bool    `json:"success"`
		DeliveryDays float64 `json:"delivery_days"`
		Cost         float64 `json:"cost"`
	}
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	zone, err := kernel.ZoneFromString(request.Zone)
	if err != nil {
		return badRequest(ctx, "Invalid zone: "+request.Zone)
	}

	outcome := carrier.Outcome{
		Success:      request.Success,
		DeliveryDays: request.DeliveryDays,
		Cost:         request.Cost,
	}
	cmd, err := commands.NewRecordCarrierPerformanceCommand(ctx.Param("id"), zone, outcome)
	if err != nil {
		return badRequest(ctx, "Invalid performance data: "+err.Error())
	}

	if handleErr := s.recordPerformanceHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		var notFoundErr *errs.ObjectNotFoundError
		if errors.As(handleErr, &notFoundErr) {
			return notFound(ctx, "Unknown carrier: "+ctx.Param("id"))
		}
		return internalError(ctx, "Failed to record performance")
	}

	return ctx.NoContent(http.StatusNoContent)
}

func transitionMeta(request TransitionRequest) order.TransitionMeta {
	return order.TransitionMeta{
		User:         request.User,
		Reason:       request.Reason,
		Notes:        request.Notes,
		Carrier:      request.Carrier,
		AWB:          request.AWB,
		DeliveryDate: request.DeliveryDate,
		RTOReason:    request.RTOReason,
	}
}

// transitionError maps a failed single transition onto an HTTP response:
// unknown orders yield 404, rejected transitions yield 409 with the
// permitted destinations, everything else is a 500.
func transitionError(ctx echo.Context, err error) error {
	var notFoundErr *errs.ObjectNotFoundError
	if errors.As(err, &notFoundErr) {
		return notFound(ctx, "Order not found")
	}

	var transitionErr *order.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:         http.StatusConflict,
			Message:      transitionErr.Error(),
			ValidOptions: statusLabels(transitionErr.ValidOptions),
		})
	}

	return internalError(ctx, "Failed to apply transition")
}

func bulkResponse(result services.BulkResult) map[string]any {
	successful := make([]string, 0, len(result.Successful))
	for _, orderID := range result.Successful {
		successful = append(successful, orderID.String())
	}

	failed := make([]map[string]any, 0, len(result.Failed))
	for _, failure := range result.Failed {
		entry := map[string]any{
			"order_id": failure.OrderID.String(),
			"error":    failure.Err.Error(),
		}
		if len(failure.ValidOptions) > 0 {
			entry["valid_options"] = statusLabels(failure.ValidOptions)
		}
		failed = append(failed, entry)
	}

	return map[string]any{
		"total_attempted": result.TotalAttempted,
		"successful":      successful,
		"failed":          failed,
	}
}

func carrierScoreBody(score services.CarrierScore) map[string]any {
	return map[string]any{
		"carrier_id":     score.CarrierID,
		"carrier_name":   score.CarrierName,
		"estimated_cost": score.EstimatedCost,
		"sla_days":       score.SLADays,
		"score":          score.Score,
		"degraded":       score.Degraded,
	}
}

func statusLabels(statuses []order.Status) []string {
	labels := make([]string, 0, len(statuses))
	for _, status := range statuses {
		labels = append(labels, status.String())
	}
	return labels
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
