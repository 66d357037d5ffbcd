package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"tableorders/internal/generated/servers"
	"tableorders/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const BaseURL = "/api/v1"

// specDoc feeds the swagger UI with the embedded OpenAPI document.
type specDoc struct {
	doc string
}

func (d specDoc) ReadDoc() string {
	return d.doc
}

var registerSpecOnce sync.Once

// openAPIDocument returns the embedded spec as JSON.
func openAPIDocument() ([]byte, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	return json.Marshal(swagger)
}

// RouterConfig carries what NewRouter needs besides the API server.
type RouterConfig struct {
	Metrics  *metrics.ServerMetrics
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// NewRouter builds the echo instance: middleware, operational endpoints and the API.
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	spec, err := openAPIDocument()
	if err != nil {
		return nil, err
	}
	registerSpecOnce.Do(func() {
		swag.Register(swag.Name, specDoc{doc: string(spec)})
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}))
	if cfg.Metrics != nil {
		e.Use(cfg.Metrics.Middleware())
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if cfg.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(cfg.Gatherer)))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET(BaseURL+"/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, spec)
	})

	servers.RegisterHandlersWithBaseURL(e, server, BaseURL)
	return e, nil
}
