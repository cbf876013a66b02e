package http

import (
	"log/slog"
	"net/http"
	"time"

	"fastfeet/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig gathers what NewRouter wires around the Server.
type RouterConfig struct {
	Logger         *slog.Logger
	Swagger        *openapi3.T
	Authenticator  *Authenticator
	ObserveRequest func(route string, method string, status int, elapsed time.Duration)
	MetricsHandler http.Handler
}

// NewRouter builds the echo instance serving the API, /health, /metrics and /swagger.
func NewRouter(server *Server, cfg RouterConfig) (*echo.Echo, error) {
	validator, err := NewRequestValidator(cfg.Swagger)
	if err != nil {
		return nil, err
	}

	metricsHandler := cfg.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	observe := cfg.ObserveRequest
	if observe == nil {
		observe = func(string, string, int, time.Duration) {}
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger)

	e.Use(
		middleware.RequestID(),
		RequestLogger(cfg.Logger),
		RequestDuration(observe),
		middleware.Recover(),
		validator,
		cfg.Authenticator.Middleware(),
	)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metricsHandler))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}
