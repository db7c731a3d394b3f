package http

import (
	"log/slog"
	"net/http"

	_ "orderdesk/docs"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig carries what NewRouter needs besides the API server.
type RouterConfig struct {
	Logger       *slog.Logger
	Tokens       ports.TokenService
	Metrics      *Metrics
	Gatherer     prometheus.Gatherer
	AllowOrigins []string
	// UploadsDir is served under /uploads when set.
	UploadsDir string
}

// NewRouter builds the echo instance serving the API, docs, metrics and health endpoints.
func NewRouter(server servers.ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(logger)
	e.Validator = NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowOrigins(cfg.AllowOrigins),
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	if cfg.Metrics != nil {
		e.Use(cfg.Metrics.Middleware())
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if cfg.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if cfg.UploadsDir != "" {
		e.Static("/uploads", cfg.UploadsDir)
	}

	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := OpenAPIValidator(swagger, cfg.Tokens)
	if err != nil {
		return nil, err
	}
	e.Use(validator)

	servers.RegisterHandlers(e, server)

	return e, nil
}

func allowOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
