package handler

import (
	"errors"

	"github.com/arturoeanton/go-log-analyzer-ollama/internal/port"
	"github.com/gofiber/fiber/v3"
)

// errorStatus maps engine errors to HTTP status codes: precondition
// failures are the caller's problem, provider outages are upstream.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, port.ErrEmptyLogFile), errors.Is(err, port.ErrNotReady):
		return fiber.StatusBadRequest
	case errors.Is(err, port.ErrProviderUnavailable):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func errorJSON(c fiber.Ctx, err error) error {
	return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
}
