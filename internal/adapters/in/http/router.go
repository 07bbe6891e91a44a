package http

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"supportbot/internal/adapters/in/http/openapi"
	"supportbot/internal/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RouterConfig carries everything NewRouter needs.
type RouterConfig struct {
	Server   *Server
	Document *openapi.Document
	Metrics  *metrics.ServerMetrics
	Gatherer prometheus.Gatherer
	Logger   *zap.Logger
	LogLevel zapcore.Level
}

// NewRouter builds the echo instance with middleware, API routes, metrics and docs.
// Every API route must have an operation in cfg.Document.
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(echoLogLevel(cfg.LogLevel))

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(cfg.Logger.With(zap.String("component", "http"))))
	e.Use(middleware.Recover())
	// The chat widget is served from another origin.
	e.Use(middleware.CORS())
	e.Use(requestMetrics(cfg.Metrics))

	RegisterHandlers(e, cfg.Server)
	if missing := undocumentedRoutes(e.Routes(), cfg.Document.OperationIDs()); len(missing) > 0 {
		return nil, fmt.Errorf("routes missing from openapi document: %s", strings.Join(missing, ", "))
	}

	e.GET("/metrics", echo.WrapHandler(metrics.Handler(cfg.Gatherer)))
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, cfg.Document.JSON())
	})

	cfg.Document.RegisterSwagger()
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

// undocumentedRoutes lists "METHOD path" for every route without an operation.
// operations is keyed the same way, with OpenAPI path templates.
func undocumentedRoutes(routes []*echo.Route, operations map[string]string) []string {
	var missing []string
	for _, r := range routes {
		key := r.Method + " " + openAPIPath(r.Path)
		if _, ok := operations[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}

// openAPIPath turns echo's ":param" segments into "{param}".
func openAPIPath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if strings.HasPrefix(segment, ":") {
			segments[i] = "{" + segment[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

func echoLogLevel(level zapcore.Level) log.Lvl {
	switch {
	case level <= zapcore.DebugLevel:
		return log.DEBUG
	case level == zapcore.InfoLevel:
		return log.INFO
	case level == zapcore.WarnLevel:
		return log.WARN
	default:
		return log.ERROR
	}
}
