package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"orderdesk/internal/generated/servers"
	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps the errs taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidState):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, err error) error {
	status := statusFor(err)
	message := strings.ReplaceAll(err.Error(), "\n", "; ")

	if status == http.StatusInternalServerError {
		slog.Default().ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = http.StatusText(http.StatusInternalServerError)
	}

	return ctx.JSON(status, errorBody(status, message))
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, message))
}

func errorBody(code int, message string) servers.Error {
	return servers.Error{Code: code, Message: message}
}

// ErrorHandler renders errors that escape the handlers, echo's own included, as servers.Error.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			message := http.StatusText(he.Code)
			if m, ok := he.Message.(string); ok {
				message = m
			}
			if writeErr := ctx.JSON(he.Code, errorBody(he.Code, message)); writeErr != nil {
				logger.Error("failed to write error response", "error", writeErr)
			}
			return
		}

		if writeErr := writeError(ctx, err); writeErr != nil {
			logger.Error("failed to write error response", "error", writeErr)
		}
	}
}
