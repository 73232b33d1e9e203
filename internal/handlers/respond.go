package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// The three response shapes every endpoint uses. Success bodies are passed
// through as-is; handlers decide the envelope keys.

func ok(c *fiber.Ctx, payload any) error {
	return c.Status(fiber.StatusOK).JSON(payload)
}

func createdOk(c *fiber.Ctx, payload any) error {
	return c.Status(fiber.StatusCreated).JSON(payload)
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": "Not found",
	})
}
