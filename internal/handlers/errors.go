package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mercado/internal/repositories"
)

// ValidationError reports per-field input violations detected outside of
// struct validation (e.g. a non-numeric id parameter).
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// ErrorHandler is the app-level fiber error handler. Every failure a route
// returns funnels through here exactly once: validation failures become 400
// with field detail, missing records become 404, everything else is logged
// and answered with a generic 500 so internal detail never reaches the
// client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  vErr.Fields,
		})
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		errorMessages := make(map[string]string)
		for _, e := range fieldErrs {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	if errors.Is(err, repositories.ErrNotFound) {
		return notFound(c)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"message": fiberErr.Message,
		})
	}

	log.Printf("Unexpected error handling %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
	})
}
