package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CallerIDKey is the echo context key holding the authenticated user id.
const CallerIDKey = "callerId"

type echoContextKey struct{}

// OpenAPIValidator checks every request that matches an operation of swagger
// against its parameters, body and security requirements. Bearer tokens are
// verified with tokens and the subject is stored under CallerIDKey.
// Requests for paths outside the document (health, metrics, docs, uploads) pass through.
func OpenAPIValidator(swagger *openapi3.T, tokens ports.TokenService) (echo.MiddlewareFunc, error) {
	// Match on paths only; the deployment host is not known to the document.
	swagger.Servers = nil

	router, err := legacy.NewRouter(swagger)
	if err != nil {
		return nil, err
	}

	authenticate := func(ctx context.Context, input *openapi3filter.AuthenticationInput) error {
		c, ok := ctx.Value(echoContextKey{}).(echo.Context)
		if !ok {
			return errs.NewUnauthorizedError("no request context")
		}

		header := input.RequestValidationInput.Request.Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			return errs.NewUnauthorizedError("missing bearer token")
		}

		claims, err := tokens.Verify(strings.TrimSpace(token))
		if err != nil {
			return err
		}

		c.Set(CallerIDKey, claims.UserID)
		return nil
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				if isUnknownRoute(err) {
					return next(c)
				}
				return writeBadRequest(c, err.Error())
			}

			req = req.WithContext(context.WithValue(req.Context(), echoContextKey{}, c))
			c.SetRequest(req)

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: authenticate,
					// multipart bodies are checked by the upload policies
					ExcludeRequestBody: strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm),
				},
			}

			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				var secErr *openapi3filter.SecurityRequirementsError
				if errors.As(err, &secErr) {
					return c.JSON(http.StatusUnauthorized, errorBody(http.StatusUnauthorized, "Unauthorized"))
				}
				return writeBadRequest(c, firstLine(err.Error()))
			}

			return next(c)
		}
	}, nil
}

// isUnknownRoute reports whether FindRoute failed because the document has no
// operation for the request. The router builds a new RouteError per call, so
// the reason is compared instead of the sentinel.
func isUnknownRoute(err error) bool {
	var routeErr *routers.RouteError
	if !errors.As(err, &routeErr) {
		return false
	}
	return routeErr.Reason == routers.ErrPathNotFound.Error() ||
		routeErr.Reason == routers.ErrMethodNotAllowed.Error()
}

// callerID returns the user id set by the bearer authentication.
func callerID(ctx echo.Context) (kernel.UUID, error) {
	id, ok := ctx.Get(CallerIDKey).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, errs.NewUnauthorizedError("missing caller")
	}
	return id, nil
}

// RequestLogger writes one slog record per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			level := slog.LevelInfo
			switch {
			case v.Status >= http.StatusInternalServerError:
				level = slog.LevelError
			case v.Status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "http_request", attrs...)
			return nil
		},
	})
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
