package response

import (
	"errors"
	"log"

	domainerrors "shellwatch/internal/errors"

	"github.com/gofiber/fiber/v2"
)

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

// ValidationError reports every failed field alongside the summary message.
func ValidationError(c *fiber.Ctx, message string, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  message,
		"fields": fields,
	})
}

// FromError maps a domain error to its HTTP status. Anything that is not a
// DomainError is logged and reported as a 500 without its message.
func FromError(c *fiber.Ctx, err error) error {
	var de *domainerrors.DomainError
	if errors.As(err, &de) {
		switch de.Kind {
		case domainerrors.KindNotFound:
			return NotFound(c, err.Error())
		case domainerrors.KindValidation:
			return BadRequest(c, err.Error())
		}
	}
	log.Printf("⚠️ %s %s failed: %v", c.Method(), c.Path(), err)
	return ServerError(c, "internal server error")
}
