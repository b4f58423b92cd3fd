package middleware

import (
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/connections-backend/internal/identity"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Identity resolves the caller from the X-User-Id header. Requests without
// one get a fresh anonymous id that is not sent back.
func Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(c.Get(identity.Header))
		if len(userID) > identity.MaxUserIDLength {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error:   true,
				Message: fmt.Sprintf("%s must be at most %d characters", identity.Header, identity.MaxUserIDLength),
			})
		}
		if userID == "" {
			userID = uuid.NewString()
		}

		identity.SetUserID(c, userID)
		return c.Next()
	}
}
