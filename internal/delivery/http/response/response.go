// Package response shapes the JSON bodies of the operational endpoints.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the envelope of every JSON body the app sends. Only probes and
// tooling read it; pages are HTML.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"` // mirrors the status line
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo names the failing dependency for a monitor. /health sets Code to
// DATABASE_EXECUTE_FAILED when the ping to the credential store fails.
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// Success writes a successful envelope. An empty message becomes "Success".
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error writes a failed envelope, using the status text when message is empty.
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// ServiceUnavailable reports that a dependency is down.
func ServiceUnavailable(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusServiceUnavailable, errorCode, message, "")
}
