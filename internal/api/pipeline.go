package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stolasapp/syllabus/internal/sec"
	"github.com/stolasapp/syllabus/internal/storage"
	"github.com/stolasapp/syllabus/internal/validate"
)

const rawBodyKey = "syllabus.raw_body"

// validateFields rejects the request with a [ValidationError] listing every
// rule the body breaks. It runs before authentication and never touches
// storage. The raw body is kept for [bindBody].
func validateFields(rules validate.Rules) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			data, err := io.ReadAll(req.Body)
			if err != nil {
				return err
			}
			req.Body = io.NopCloser(bytes.NewReader(data))

			if msgs := rules.Validate(validate.DecodeBytes(data)); len(msgs) > 0 {
				return &ValidationError{Messages: msgs}
			}
			c.Set(rawBodyKey, data)
			return next(c)
		}
	}
}

// authenticate resolves the caller from the Authorization header and attaches
// them to the request context. Failures of any kind surface as a 401.
func authenticate(users storage.Users, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := req.Context()
			user, err := sec.Authenticate(ctx, req, users, logger)
			if err != nil {
				return err
			}
			c.SetRequest(req.WithContext(sec.SetAuthenticatedUser(ctx, user)))
			return next(c)
		}
	}
}

// bindBody decodes the body accepted by validateFields into dst.
func bindBody(c echo.Context, dst any) error {
	data, ok := c.Get(rawBodyKey).([]byte)
	if !ok {
		data, _ = io.ReadAll(c.Request().Body)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body").SetInternal(err)
	}
	return nil
}
