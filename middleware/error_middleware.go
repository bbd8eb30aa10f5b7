// ABOUTME: Centralized error handling middleware for Echo framework
// ABOUTME: Converts errors to consistent JSON responses, hides internal details
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CustomHTTPErrorHandler creates the centralized HTTP error handler for Echo.
// 5xx messages are replaced with a generic response so internal details never
// reach the client.
func CustomHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		ctx := c.Request().Context()

		status := http.StatusInternalServerError
		message := "An unexpected error occurred. Please try again later."

		if httpErr, ok := err.(*echo.HTTPError); ok {
			status = httpErr.Code

			if msg, ok := httpErr.Message.(string); ok && status < http.StatusInternalServerError {
				message = msg
			}
		}

		if status >= http.StatusInternalServerError {
			logger.ErrorContext(ctx, "request failed",
				"status", status,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err)
		} else {
			logger.WarnContext(ctx, "request rejected",
				"status", status,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err)
		}

		response := errorResponse{
			Error: errorDetail{
				Code:    http.StatusText(status),
				Message: message,
			},
		}

		if err := c.JSON(status, response); err != nil {
			logger.ErrorContext(ctx, "failed to send error response", "error", err)
		}
	}
}
