package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agrix/agrix/internal/middleware"
	"github.com/agrix/agrix/internal/pkg/logger"
)

// registerRoutes registers all HTTP routes. Operational routes come first
// so the rate limiter only sees the domain API.
func registerRoutes(app *fiber.App, deps *Dependencies) {
	h := deps.Handlers

	h.Health.RegisterRoutes(app)
	h.Docs.RegisterRoutes(app)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	if rl := deps.Config.RateLimit; rl.Enabled && deps.Redis != nil {
		cfg := middleware.DefaultRateLimitConfig()
		cfg.Max = rl.RequestsPerMinute
		cfg.Window = time.Minute
		cfg.Logger = logger.Named("ratelimit")
		app.Use(middleware.NewRateLimitMiddleware(deps.Redis.Client, cfg).Handler())
	}

	h.Farms.RegisterRoutes(app)
	h.Crops.RegisterRoutes(app)
	h.Fertilizers.RegisterRoutes(app)
}
