package handlers

import (
	"errors"

	"shellwatch/internal/utils/response"
	"shellwatch/internal/utils/validation"

	"github.com/gofiber/fiber/v2"
)

// bindJSON parses and validates the body. It writes the 400 response itself
// and returns false when the request was rejected.
func bindJSON(c *fiber.Ctx, dest interface{}) (bool, error) {
	err := validation.ParseBody(c, dest)
	if err == nil {
		return true, nil
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return false, response.ValidationError(c, "validation failed", verrs.Fields())
	}
	return false, response.BadRequest(c, err.Error())
}
