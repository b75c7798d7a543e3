package auth

import (
	"strings"

	"travel-backend/internal/apperr"
	"travel-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

const CtxClaimsKey = "auth_claims"

// JWTMiddleware requires a valid bearer token and stores its claims in
// c.Locals. denylist may be nil.
func JWTMiddleware(tokens *TokenManager, denylist Denylist) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return apperr.Unauthorized("Access denied. No token provided.")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || strings.TrimSpace(parts[1]) == "" {
			return apperr.Unauthorized("Authorization header must be 'Bearer <token>'.")
		}

		claims, err := tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			return err
		}

		if denylist != nil && claims.ID != "" {
			revoked, err := denylist.IsRevoked(c.UserContext(), claims.ID)
			if err != nil {
				return apperr.Internal("Failed to verify token.", err)
			}
			if revoked {
				return apperr.Unauthorized("Invalid or expired token.")
			}
		}

		c.Locals(CtxClaimsKey, claims)
		return c.Next()
	}
}

func RequireRole(allowedRoles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := CurrentClaims(c)
		if !ok {
			return apperr.Forbidden("Access denied.")
		}

		for _, r := range allowedRoles {
			if r == claims.Role {
				return c.Next()
			}
		}
		return apperr.Forbidden("Access denied. Admins only.")
	}
}

// RequireAdmin must run after JWTMiddleware.
func RequireAdmin() fiber.Handler {
	return RequireRole(models.RoleAdmin)
}

func CurrentClaims(c *fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(CtxClaimsKey).(*Claims)
	return claims, ok && claims != nil
}
