package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists the operations of openapi/openapi.json.
type ServerInterface interface {
	// Reply to a customer message
	// (POST /chat)
	Chat(ctx echo.Context) error
	// Register an order
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// Fetch an order by number
	// (GET /api/v1/orders/{orderNumber})
	GetOrder(ctx echo.Context, orderNumber int64) error
	// Dependency health
	// (GET /health)
	GetHealth(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) Chat(ctx echo.Context) error {
	return w.Handler.Chat(ctx)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// GetOrder binds the orderNumber path parameter.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var orderNumber int64

	err := runtime.BindStyledParameterWithLocation("simple", false, "orderNumber",
		runtime.ParamLocationPath, ctx.Param("orderNumber"), &orderNumber)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: fmt.Sprintf("Invalid format for parameter orderNumber: %s", err),
		})
	}

	return w.Handler.GetOrder(ctx, orderNumber)
}

func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each operation to the router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST("/chat", wrapper.Chat)
	router.POST("/api/v1/orders", wrapper.CreateOrder)
	router.GET("/api/v1/orders/:orderNumber", wrapper.GetOrder)
	router.GET("/health", wrapper.GetHealth)
}
