// Package middleware provides HTTP middleware for the fiber app.
package middleware

import (
	"regexp"

	"github.com/gofiber/fiber/v2"
)

const (
	AnalystHeader    = "X-Analyst-ID"
	DefaultAnalystID = "analyst_001"

	analystLocalsKey = "analyst_id"
)

var analystIDPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,64}$`)

// AnalystIdentity records who is acting on the request. It identifies, it
// does not authenticate: a missing header falls back to DefaultAnalystID and
// a malformed one is rejected.
func AnalystIdentity(c *fiber.Ctx) error {
	id := c.Get(AnalystHeader)
	if id == "" {
		id = DefaultAnalystID
	} else if !analystIDPattern.MatchString(id) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid " + AnalystHeader + " header"})
	}
	c.Locals(analystLocalsKey, id)
	return c.Next()
}

// AnalystID returns the identity set by AnalystIdentity.
func AnalystID(c *fiber.Ctx) string {
	if id, ok := c.Locals(analystLocalsKey).(string); ok {
		return id
	}
	return DefaultAnalystID
}
