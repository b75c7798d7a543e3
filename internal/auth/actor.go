package auth

import (
	"travel-backend/internal/audit"

	"github.com/gofiber/fiber/v2"
)

// Actor identifies the caller for audit records. Requires JWTMiddleware.
func Actor(c *fiber.Ctx) audit.Actor {
	claims, ok := CurrentClaims(c)
	if !ok {
		return audit.Actor{}
	}
	return audit.Actor{ID: claims.UserID, Email: claims.Email}
}
