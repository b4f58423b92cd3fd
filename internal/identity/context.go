package identity

import "github.com/gofiber/fiber/v2"

const (
	// Header carries the caller's opaque user id.
	Header = "X-User-Id"

	// MaxUserIDLength bounds the accepted header value.
	MaxUserIDLength = 128

	localsKey = "user_id"
)

// SetUserID stores the resolved user id for the rest of the request.
func SetUserID(c *fiber.Ctx, userID string) {
	c.Locals(localsKey, userID)
}

// GetUserID returns the user id resolved by the identity middleware.
func GetUserID(c *fiber.Ctx) string {
	if id, ok := c.Locals(localsKey).(string); ok {
		return id
	}
	return ""
}
