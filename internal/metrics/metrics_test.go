package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-backend/internal/apperr"
	"travel-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsByRoute(t *testing.T) {
	m := New()
	logger := zerolog.New(io.Discard)
	app := fiber.New(fiber.Config{ErrorHandler: apperr.FiberErrorHandler(&logger)})
	app.Use(m.Middleware())
	app.Get("/hotels/:id", func(c *fiber.Ctx) error {
		if c.Params("id") == "404" {
			return apperr.NotFound("Hotel not found.")
		}
		return c.SendString("ok")
	})

	for _, path := range []string{"/hotels/1", "/hotels/2", "/hotels/404"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		resp.Body.Close()
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/hotels/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/hotels/:id", "404")))
}

func TestBookingCreatedAndHandler(t *testing.T) {
	m := New()
	m.BookingCreated(models.BookingTypeHotel)
	m.BookingCreated(models.BookingTypeHotel)
	m.BookingCreated(models.BookingTypePackage)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsCreated.WithLabelValues("hotel")))

	app := fiber.New()
	app.Get("/metrics", m.Handler())
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `travel_bookings_created_total{type="package"} 1`)
}
