package auth

import (
	"time"

	"travel-backend/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

// POST /api/auth/register
func RegisterHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RegisterInput
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validation("Invalid request body.")
		}

		session, err := svc.Register(c.UserContext(), body)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(session)
	}
}

// POST /api/auth/login
func LoginHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginInput
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validation("Invalid request body.")
		}

		session, err := svc.Login(c.UserContext(), body)
		if err != nil {
			return err
		}
		return c.JSON(session)
	}
}

// POST /api/auth/admin/login
func AdminLoginHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body LoginInput
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validation("Invalid request body.")
		}

		session, err := svc.AdminLogin(body)
		if err != nil {
			return err
		}
		return c.JSON(session)
	}
}

// GET /api/auth/me (requires JWTMiddleware)
func MeHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := CurrentClaims(c)
		if !ok {
			return apperr.Unauthorized("Access denied. No token provided.")
		}

		profile, err := svc.Me(c.UserContext(), claims)
		if err != nil {
			return err
		}
		return c.JSON(profile)
	}
}

// POST /api/auth/logout (requires JWTMiddleware)
func LogoutHandler(denylist Denylist) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := CurrentClaims(c)
		if !ok {
			return apperr.Unauthorized("Access denied. No token provided.")
		}

		if claims.ID != "" && claims.ExpiresAt != nil {
			if err := denylist.Revoke(c.UserContext(), claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
				return apperr.Internal("Failed to log out.", err)
			}
		}
		return c.JSON(fiber.Map{"message": "Logged out."})
	}
}
