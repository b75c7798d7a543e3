package catalog

import (
	"strconv"

	"travel-backend/internal/apperr"
	"travel-backend/internal/auth"

	"github.com/gofiber/fiber/v2"
)

// itemID reads :id. Anything that is not a positive integer cannot name an
// existing row.
func itemID(c *fiber.Ctx, notFound string) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.NotFound(notFound)
	}
	return uint(id), nil
}

// GET /api/hotels
func ListHotelsHandler(s *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		hotels, err := s.ListHotels(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(hotels)
	}
}

// POST /api/hotels
func CreateHotelHandler(s *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body HotelInput
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validation("Invalid request body.")
		}

		hotel, err := s.CreateHotel(c.UserContext(), auth.Actor(c), body)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(hotel)
	}
}

// PUT /api/hotels/:id
func UpdateHotelHandler(s *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body HotelInput
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validation("Invalid request body.")
		}
		id, err := itemID(c, "Hotel not found.")
		if err != nil {
			return err
		}

		hotel, err := s.UpdateHotel(c.UserContext(), auth.Actor(c), id, body)
		if err != nil {
			return err
		}
		return c.JSON(hotel)
	}
}

// DELETE /api/hotels/:id
func DeleteHotelHandler(s *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := itemID(c, "Hotel not found.")
		if err != nil {
			return err
		}
		if err := s.DeleteHotel(c.UserContext(), auth.Actor(c), id); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "Hotel deleted successfully."})
	}
}

// GET /api/packages
func ListPackagesHandler(s *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		packages, err := s.ListPackages(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(packages)
	}
}

// POST /api/packages
func CreatePackageHandler(s *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PackageInput
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validation("Invalid request body.")
		}

		pkg, err := s.CreatePackage(c.UserContext(), auth.Actor(c), body)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(pkg)
	}
}

// PUT /api/packages/:id
func UpdatePackageHandler(s *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PackageInput
		if err := c.BodyParser(&body); err != nil {
			return apperr.Validation("Invalid request body.")
		}
		id, err := itemID(c, "Package not found.")
		if err != nil {
			return err
		}

		pkg, err := s.UpdatePackage(c.UserContext(), auth.Actor(c), id, body)
		if err != nil {
			return err
		}
		return c.JSON(pkg)
	}
}

// DELETE /api/packages/:id
func DeletePackageHandler(s *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := itemID(c, "Package not found.")
		if err != nil {
			return err
		}
		if err := s.DeletePackage(c.UserContext(), auth.Actor(c), id); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "Package deleted successfully."})
	}
}
