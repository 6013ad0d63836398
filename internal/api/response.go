package api

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// WriteError writes a structured error response.
func WriteError(c *fiber.Ctx, status int, title, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Code:    strconv.Itoa(status),
		Title:   title,
		Message: message,
	})
}

// BadRequestError writes a 400 Bad Request error response.
func BadRequestError(c *fiber.Ctx, title, message string) error {
	return WriteError(c, fiber.StatusBadRequest, title, message)
}

// NotFoundError writes a 404 Not Found error response.
func NotFoundError(c *fiber.Ctx, title, message string) error {
	return WriteError(c, fiber.StatusNotFound, title, message)
}

// errorHandler renders errors returned from handlers, including fiber's own
// routing errors, as ErrorResponse bodies. Internal details are logged, not
// returned.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return WriteError(c, fe.Code, "request_error", fe.Message)
	}

	slog.Error("Request failed",
		"method", c.Method(),
		"path", c.Path(),
		"error", err)
	return WriteError(c, fiber.StatusInternalServerError, "internal_error", "internal server error")
}
