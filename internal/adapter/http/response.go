package http

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"resume-builder/internal/catalog"
	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
)

// envelope is the JSON shape of every API response.
type envelope struct {
	Success bool               `json:"success"`
	Message string             `json:"message,omitempty"`
	Data    interface{}        `json:"data,omitempty"`
	Error   string             `json:"error,omitempty"`
	Errors  []model.FieldError `json:"errors,omitempty"`
}

func ok(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(envelope{Success: true, Message: message, Data: data})
}

// failure carries the message shown when err turns into a 500.
type failure struct {
	message string
	err     error
}

func (f *failure) Error() string { return f.message + ": " + f.err.Error() }
func (f *failure) Unwrap() error { return f.err }

func fail(message string, err error) error {
	return &failure{message: message, err: err}
}

var knownErrors = []struct {
	err     error
	status  int
	message string
}{
	{domain.ErrConflict, fiber.StatusBadRequest, "User with this email already exists"},
	{usecase.ErrInvalidCredentials, fiber.StatusUnauthorized, "Invalid email or password"},
	{usecase.ErrGoogleAccount, fiber.StatusUnauthorized, "This account was created with Google. Please use Google login."},
	{usecase.ErrUnauthorized, fiber.StatusUnauthorized, "Invalid token"},
	{usecase.ErrInvalidResetToken, fiber.StatusBadRequest, "Invalid or expired reset token"},
	{usecase.ErrGoogleDisabled, fiber.StatusServiceUnavailable, "Google login is not configured"},
	{usecase.ErrMailDelivery, fiber.StatusInternalServerError, "Failed to send reset email. Please try again later."},
	{catalog.ErrTemplateNotFound, fiber.StatusNotFound, "Template not found"},
	{catalog.ErrCategoryNotFound, fiber.StatusNotFound, "Category not found"},
	{catalog.ErrNotSuitable, fiber.StatusForbidden, "This template is not suitable for your experience level"},
	{domain.ErrNotFound, fiber.StatusNotFound, "Not found"},
}

// ErrorHandler renders handler errors as the JSON envelope. Internal error
// text is only exposed when dev is set.
func ErrorHandler(dev bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := classify(err, dev)
		if status >= fiber.StatusInternalServerError {
			slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		}
		return c.Status(status).JSON(body)
	}
}

func classify(err error, dev bool) (int, envelope) {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return fiber.StatusBadRequest, envelope{Message: "Validation error", Errors: verr.Errors}
	}
	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		return ferr.Code, envelope{Message: ferr.Message}
	}

	status, message := fiber.StatusInternalServerError, "Something went wrong!"
	var f *failure
	if errors.As(err, &f) {
		message = f.message
	}
	for _, k := range knownErrors {
		if errors.Is(err, k.err) {
			status, message = k.status, k.message
			break
		}
	}
	if status < fiber.StatusInternalServerError {
		return status, envelope{Message: message}
	}

	body := envelope{Message: message, Error: "Internal server error"}
	if dev {
		body.Error = err.Error()
	}
	return status, body
}
