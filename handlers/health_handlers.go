package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// Root godoc
// @Summary Service liveness
// @Description Confirms the backend is running.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *ApplicationHandler) Root(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Hindi Cartoon Video Generator Backend",
	})
}

// Hello is a liveness check for the API group.
func (h *ApplicationHandler) Hello(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Hello from the backend API!",
	})
}
