package http

import (
	"context"
	"errors"
	"net/http"

	"supportbot/internal/core/application/usecases/commands"
	"supportbot/internal/core/application/usecases/queries"
	"supportbot/internal/core/domain/model/chat"
	"supportbot/internal/core/domain/model/kernel"
	"supportbot/internal/core/domain/model/order"
	"supportbot/internal/pkg/errs"
	"supportbot/internal/pkg/health"
	"supportbot/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const invalidChatRequestReply = "Invalid request body"

type (
	// ChatReplier answers customer messages.
	ChatReplier interface {
		Handle(ctx context.Context, query queries.ReplyToMessageQuery) (queries.ReplyToMessageQueryResponse, error)
	}

	// OrderCreator stores new orders.
	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}

	// OrderGetter reads a stored order.
	OrderGetter interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
)

// Server implements ServerInterface. It translates HTTP to use case calls and
// use case errors to status codes.
type Server struct {
	// Command handlers
	createOrderHandler OrderCreator

	// Query handlers
	replyHandler    ChatReplier
	getOrderHandler OrderGetter

	health  *health.Registry
	metrics *metrics.ServerMetrics
	logger  *zap.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	replyHandler ChatReplier,
	createOrderHandler OrderCreator,
	getOrderHandler OrderGetter,
	registry *health.Registry,
	serverMetrics *metrics.ServerMetrics,
	logger *zap.Logger,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		replyHandler:       replyHandler,
		getOrderHandler:    getOrderHandler,
		health:             registry,
		metrics:            serverMetrics,
		logger:             logger.With(zap.String("component", "http_server")),
	}
}

// Chat handles POST /chat. Backend failures are logged in full and answered
// with a fixed body.
func (s *Server) Chat(ctx echo.Context) error {
	var req ChatRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ChatResponse{Reply: invalidChatRequestReply})
	}

	resp, err := s.replyHandler.Handle(ctx.Request().Context(), queries.NewReplyToMessageQuery(req.Message))
	if err != nil {
		dependency := "unknown"
		var depErr *errs.DependencyFailedError
		if errors.As(err, &depErr) {
			dependency = depErr.Dependency
		}
		s.metrics.Failures.WithLabelValues(dependency).Inc()
		s.logger.Error("Chat request failed",
			zap.String("request_id", requestID(ctx)),
			zap.String("dependency", dependency),
			zap.Error(err),
		)
		return ctx.JSON(http.StatusInternalServerError, ChatResponse{Reply: string(chat.BackendErrorReply)})
	}

	s.metrics.Replies.WithLabelValues(resp.Intent.String()).Inc()
	return ctx.JSON(http.StatusOK, ChatResponse{Reply: resp.Reply.String()})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := newCreateOrderCommand(newOrder)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectAlreadyExists) {
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: "Order " + cmd.Number().String() + " already exists",
			})
		}
		s.logger.Error("Create order failed",
			zap.String("request_id", requestID(ctx)),
			zap.Int64("order_number", cmd.Number().Int64()),
			zap.Error(handleErr),
		)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	details := cmd.Details()
	return ctx.JSON(http.StatusCreated, Order{
		OrderNumber:  cmd.Number().Int64(),
		Status:       details.Status,
		Items:        nonNilItems(details.Items),
		Total:        cmd.Total().Amount().StringFixed(2),
		CustomerName: details.CustomerName,
		Address:      details.Address,
		OrderDate:    details.OrderDate,
	})
}

// GetOrder handles GET /api/v1/orders/{orderNumber}.
func (s *Server) GetOrder(ctx echo.Context, orderNumber int64) error {
	number, err := kernel.NewOrderNumber(orderNumber)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order number: " + err.Error(),
		})
	}

	query, err := queries.NewGetOrderQuery(number)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order number: " + err.Error(),
		})
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Order " + number.String() + " not found",
			})
		}
		s.logger.Error("Get order failed",
			zap.String("request_id", requestID(ctx)),
			zap.Int64("order_number", orderNumber),
			zap.Error(err),
		)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve order",
		})
	}

	return ctx.JSON(http.StatusOK, Order{
		OrderNumber:  resp.Number.Int64(),
		Status:       resp.Status,
		Items:        nonNilItems(resp.Items),
		Total:        resp.Total.Amount().StringFixed(2),
		CustomerName: resp.CustomerName,
		Address:      resp.Address,
		OrderDate:    resp.OrderDate,
	})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	snapshot := s.health.Snapshot()

	body := Health{
		Status:       string(health.StatusUp),
		Dependencies: make([]DependencyHealth, 0, len(snapshot)),
	}
	for _, check := range snapshot {
		dep := DependencyHealth{
			Name:   check.Name,
			Status: string(check.Status),
			Error:  check.Error,
		}
		if !check.CheckedAt.IsZero() {
			checkedAt := check.CheckedAt.UTC()
			dep.CheckedAt = &checkedAt
		}
		body.Dependencies = append(body.Dependencies, dep)
	}

	status := http.StatusOK
	if !s.health.Healthy() {
		status = http.StatusServiceUnavailable
		body.Status = string(health.StatusDown)
	}

	return ctx.JSON(status, body)
}

func newCreateOrderCommand(req NewOrder) (commands.CreateOrderCommand, error) {
	number, numberErr := kernel.NewOrderNumber(req.OrderNumber)
	total, totalErr := kernel.NewMoney(req.Total)
	if err := errors.Join(numberErr, totalErr); err != nil {
		return commands.CreateOrderCommand{}, err
	}

	return commands.NewCreateOrderCommand(number, total, order.Details{
		Status:       req.Status,
		Items:        req.Items,
		CustomerName: req.CustomerName,
		Address:      req.Address,
		OrderDate:    req.OrderDate,
	})
}

func nonNilItems(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func requestID(ctx echo.Context) string {
	return ctx.Response().Header().Get(echo.HeaderXRequestID)
}
