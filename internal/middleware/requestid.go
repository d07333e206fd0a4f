package middleware

import (
	"trivia-api/internal/util"

	"github.com/gofiber/fiber/v2"
)

// RequestIDKey is the locals key under which the request id is stored.
const RequestIDKey = "request_id"

// RequestID attaches a ULID to every request, reusing the caller's
// X-Request-Id header when one is supplied, and echoes it back in the
// response.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = util.NewULID()
		}
		c.Locals(RequestIDKey, id)
		c.Set(fiber.HeaderXRequestID, id)
		return c.Next()
	}
}
