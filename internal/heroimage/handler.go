package heroimage

import (
	"travel-backend/internal/apperr"
	"travel-backend/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// GET /api/hero-image
func GetHandler(s *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg, err := s.Get(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(cfg)
	}
}

// PUT /api/hero-image
func SetHandler(s *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SetInput
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validation("Invalid request body.")
		}

		cfg, err := s.Set(c.UserContext(), auth.Actor(c), body)
		if err != nil {
			return err
		}
		return c.JSON(cfg)
	}
}
