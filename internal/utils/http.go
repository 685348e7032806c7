package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// The wire contract reports failures as a bare {message} object; success
// shapes vary per endpoint and are emitted by the handlers directly.

// Message is the {message} payload.
type Message struct {
	Message string `json:"message"`
}

// MessageResponse sends a {message} body with the given status code.
func MessageResponse(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Message{Message: message})
}

// BadRequestResponse sends a 400 Bad Request {message} response.
func BadRequestResponse(c echo.Context, message string) error {
	return MessageResponse(c, http.StatusBadRequest, message)
}

// UnauthorizedResponse sends a 401 Unauthorized {message} response.
func UnauthorizedResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Unauthorized"
	}
	return MessageResponse(c, http.StatusUnauthorized, message)
}

// NotFoundResponse sends a 404 Not Found {message} response.
func NotFoundResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return MessageResponse(c, http.StatusNotFound, message)
}

// InternalServerErrorResponse sends a 500 Internal Server Error {message} response.
func InternalServerErrorResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Internal server error"
	}
	return MessageResponse(c, http.StatusInternalServerError, message)
}
