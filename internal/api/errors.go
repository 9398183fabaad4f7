package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"github.com/labstack/echo/v4"

	"github.com/stolasapp/syllabus/internal/filter"
	"github.com/stolasapp/syllabus/internal/storage"
)

// Fixed client-facing messages.
const (
	accessDeniedMessage   = "Access Denied"
	forbiddenMessage      = "You cannot change other user's courses"
	courseNotFoundMessage = "Sorry course is not available"
	internalMessage       = "internal server error"
)

// ErrForbidden is returned when the caller may not modify the target course.
var ErrForbidden = errors.New("caller does not own the course")

// ValidationError carries the messages of every failed field rule, in rule
// declaration order.
type ValidationError struct {
	Messages []string
}

// Error satisfies [error].
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

type messageBody struct {
	Message string `json:"message"`
}

type errorsBody struct {
	Errors []string `json:"errors"`
}

func errCourseNotFound(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusNotFound, courseNotFoundMessage).SetInternal(err)
}

// errorHandler renders every error returned through the pipeline as one of
// the `{message}` or `{errors}` bodies.
func errorHandler(logger *slog.Logger, devMode bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status, body := toResponse(err, devMode)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				slog.String("route", c.Path()),
				slog.Any("error", err),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", slog.Any("error", writeErr))
		}
	}
}

func toResponse(err error, devMode bool) (int, any) {
	var (
		validationErr *ValidationError
		filterErr     *filter.Error
		httpErr       *echo.HTTPError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, errorsBody{Errors: validationErr.Messages}
	case connect.CodeOf(err) == connect.CodeUnauthenticated:
		return http.StatusUnauthorized, messageBody{Message: accessDeniedMessage}
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, messageBody{Message: forbiddenMessage}
	case errors.As(err, &filterErr):
		return http.StatusBadRequest, messageBody{Message: filterErr.Error()}
	case errors.As(err, &httpErr):
		if httpErr.Code >= http.StatusInternalServerError && !devMode {
			return httpErr.Code, messageBody{Message: internalMessage}
		}
		return httpErr.Code, messageBody{Message: fmt.Sprint(httpErr.Message)}
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, messageBody{Message: http.StatusText(http.StatusNotFound)}
	case devMode:
		return http.StatusInternalServerError, messageBody{Message: err.Error()}
	default:
		return http.StatusInternalServerError, messageBody{Message: internalMessage}
	}
}
