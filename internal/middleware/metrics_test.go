package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddlewareUsesRouteTemplate(t *testing.T) {
	app := fiber.New()
	app.Use(NewMetricsMiddleware(DefaultMetricsConfig()).Handler())
	app.Get("/farms/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/farms/:id", "200"))

	for _, path := range []string{"/farms/1", "/farms/2", "/farms/3"} {
		_, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
	}

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/farms/:id", "200"))
	assert.Equal(t, float64(3), after-before)
}

func TestMetricsMiddlewareRecordsErrorStatus(t *testing.T) {
	app := fiber.New()
	app.Use(NewMetricsMiddleware(DefaultMetricsConfig()).Handler())
	app.Get("/crops/:id", func(c *fiber.Ctx) error {
		return fiber.ErrBadRequest
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/crops/:id", "400"))

	_, err := app.Test(httptest.NewRequest("GET", "/crops/abc", nil))
	require.NoError(t, err)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/crops/:id", "400"))
	assert.Equal(t, float64(1), after-before)
}

func TestMetricsMiddlewareSkipsHealth(t *testing.T) {
	app := fiber.New()
	app.Use(NewMetricsMiddleware(DefaultMetricsConfig()).Handler())
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/health", "200"))
	_, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/health", "200"))

	assert.Equal(t, before, after)
}
