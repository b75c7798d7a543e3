package server

import (
	"strings"
	"time"

	"travel-backend/internal/apperr"
	"travel-backend/internal/audit"
	"travel-backend/internal/auth"
	"travel-backend/internal/booking"
	"travel-backend/internal/catalog"
	"travel-backend/internal/database"
	"travel-backend/internal/heroimage"
	"travel-backend/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const (
	Banner             = "Tour and Travel Backend API is running...."
	healthCheckTimeout = 2 * time.Second
)

// Deps are the constructed components the HTTP layer routes to.
type Deps struct {
	Logger      *zerolog.Logger
	DB          *gorm.DB
	CORSOrigins string

	Tokens *auth.TokenManager
	// Denylist enables POST /api/auth/logout. May be nil.
	Denylist auth.Denylist

	Auth      *auth.Service
	Catalog   *catalog.Store
	Bookings  *booking.Service
	HeroImage *heroimage.Service
	Audit     *audit.Recorder

	// Metrics enables request counting and GET /metrics. May be nil.
	Metrics *metrics.Metrics
}

func New(d Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "travel-backend",
		ErrorHandler: apperr.FiberErrorHandler(d.Logger),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(requestLogger(d.Logger))
	if d.Metrics != nil {
		app.Use(d.Metrics.Middleware())
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: normalizeOrigins(d.CORSOrigins),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(Banner)
	})
	app.Get("/healthz", healthHandler(d.DB))
	if d.Metrics != nil {
		app.Get("/metrics", d.Metrics.Handler())
	}

	requireToken := auth.JWTMiddleware(d.Tokens, d.Denylist)
	requireAdmin := auth.RequireAdmin()

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register", auth.RegisterHandler(d.Auth))
	api.Post("/auth/login", auth.LoginHandler(d.Auth))
	api.Post("/auth/admin/login", auth.AdminLoginHandler(d.Auth))
	api.Get("/auth/me", requireToken, auth.MeHandler(d.Auth))
	if d.Denylist != nil {
		api.Post("/auth/logout", requireToken, auth.LogoutHandler(d.Denylist))
	}

	// Hotels
	api.Get("/hotels", catalog.ListHotelsHandler(d.Catalog))
	api.Post("/hotels", requireToken, requireAdmin, catalog.CreateHotelHandler(d.Catalog))
	api.Put("/hotels/:id", requireToken, requireAdmin, catalog.UpdateHotelHandler(d.Catalog))
	api.Delete("/hotels/:id", requireToken, requireAdmin, catalog.DeleteHotelHandler(d.Catalog))

	// Packages
	api.Get("/packages", catalog.ListPackagesHandler(d.Catalog))
	api.Post("/packages", requireToken, requireAdmin, catalog.CreatePackageHandler(d.Catalog))
	api.Put("/packages/:id", requireToken, requireAdmin, catalog.UpdatePackageHandler(d.Catalog))
	api.Delete("/packages/:id", requireToken, requireAdmin, catalog.DeletePackageHandler(d.Catalog))

	// Bookings
	api.Post("/bookings", requireToken, booking.CreateHandler(d.Bookings))
	api.Get("/bookings", requireToken, booking.ListHandler(d.Bookings))

	// Hero image
	api.Get("/hero-image", heroimage.GetHandler(d.HeroImage))
	api.Put("/hero-image", requireToken, requireAdmin, heroimage.SetHandler(d.HeroImage))

	// Admin
	admin := api.Group("/admin", requireToken, requireAdmin)
	admin.Get("/audit-logs", audit.ListAuditLogsHandler(d.Audit))
	admin.Get("/bookings/export", booking.ExportHandler(d.Bookings))

	return app
}

func normalizeOrigins(raw string) string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return "*"
	}
	return strings.Join(out, ",")
}

func healthHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.Ping(c.UserContext(), db, healthCheckTimeout); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

func requestLogger(log *zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		ev := log.Info()
		if err != nil {
			status = apperr.StatusOf(err)
			ev = log.Warn().Err(err)
		}

		rid, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		ev.Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("http request")
		return err
	}
}
