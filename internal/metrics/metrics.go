package metrics

import (
	"strconv"

	"travel-backend/internal/apperr"
	"travel-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "travel"

// Metrics owns its registry so several instances can coexist in tests.
type Metrics struct {
	registry        *prometheus.Registry
	httpRequests    *prometheus.CounterVec
	bookingsCreated *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method, route and status.",
			},
			[]string{"method", "route", "status"},
		),
		bookingsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_created_total",
				Help:      "Bookings created by item type.",
			},
			[]string{"type"},
		),
	}
	m.registry.MustRegister(
		m.httpRequests,
		m.bookingsCreated,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// BookingCreated increments the booking counter for kind.
func (m *Metrics) BookingCreated(kind models.BookingType) {
	m.bookingsCreated.WithLabelValues(string(kind)).Inc()
}

// Middleware counts every request by its matched route pattern, so path
// parameters do not explode the label set.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = apperr.StatusOf(err)
		}

		m.httpRequests.WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).Inc()
		return err
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
