// Package respond maps service errors onto fiber responses so every entity
// handler reports failures the same way.
package respond

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/sanaresoma/sanaresoma-backend/internal/validation"
)

// Error writes err to c. notFound is the calling package's sentinel and is
// reported as 404 with its own message.
func Error(c *fiber.Ctx, err error, notFound error) error {
	var ves validation.Errors
	switch {
	case errors.As(err, &ves):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	case notFound != nil && errors.Is(err, notFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": notFound.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}

// BadRequest writes a 400 with a single message.
func BadRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
}

// ID parses the named route parameter as a positive integer. On failure it
// has already written the 400 response and returns ok=false.
func ID(c *fiber.Ctx, name string) (id int, ok bool, err error) {
	id, convErr := strconv.Atoi(c.Params(name))
	if convErr != nil || id <= 0 {
		return 0, false, BadRequest(c, "invalid "+name)
	}
	return id, true, nil
}
