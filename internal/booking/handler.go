package booking

import (
	"travel-backend/internal/apperr"
	"travel-backend/internal/auth"
	"travel-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// POST /api/bookings
//
// Any authenticated user may book, except the admin identity: it carries id 0
// and has no users row to own the booking, so it is refused with 403.
func CreateHandler(s *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := auth.CurrentClaims(c)
		if !ok {
			return apperr.Unauthorized("Access denied. No token provided.")
		}
		if claims.Role == models.RoleAdmin {
			return apperr.Forbidden("Admin accounts cannot create bookings.")
		}

		var body CreateInput
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validation("Invalid request body.")
		}

		b, err := s.Create(c.UserContext(), claims.UserID, body)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(b)
	}
}

// GET /api/bookings
//
// Admins get every booking grouped by day; everyone else gets their own.
func ListHandler(s *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := auth.CurrentClaims(c)
		if !ok {
			return apperr.Unauthorized("Access denied. No token provided.")
		}

		if claims.Role == models.RoleAdmin {
			grouped, err := s.ListAllGrouped(c.UserContext())
			if err != nil {
				return err
			}
			return c.JSON(grouped)
		}

		views, err := s.ListForUser(c.UserContext(), claims.UserID)
		if err != nil {
			return err
		}
		return c.JSON(views)
	}
}

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// GET /api/admin/bookings/export
func ExportHandler(s *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, err := s.ExportXLSX(c.UserContext())
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, xlsxMIME)
		c.Attachment("bookings.xlsx")
		return c.Send(data)
	}
}
