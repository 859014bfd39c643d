package apikey

import (
	"crypto/subtle"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// HeaderName is the credential header checked on protected routes.
const HeaderName = "x-api-key"

// New returns a Fiber middleware that validates the x-api-key header
// against the configured key. Requests with a missing or mismatched key are
// rejected with 401 before any handler logic runs.
func New(key string) fiber.Handler {
	expected := []byte(key)
	return func(c *fiber.Ctx) error {
		got := c.Get(HeaderName)
		if got == "" || subtle.ConstantTimeCompare([]byte(got), expected) != 1 {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: Invalid or missing API Key.",
			})
		}
		return c.Next()
	}
}
