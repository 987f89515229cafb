package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	apperrors "github.com/agrix/agrix/internal/pkg/errors"
)

// RateLimitConfig configures the rate limiter
type RateLimitConfig struct {
	// Max requests per window
	Max int
	// Window duration
	Window time.Duration
	// Prefix namespaces the Redis keys
	Prefix string
	// KeyGenerator identifies the caller
	KeyGenerator func(*fiber.Ctx) string
	// Skip function
	Skip func(*fiber.Ctx) bool
	// LimitReached answers rejected requests
	LimitReached fiber.Handler
	// Logger receives Redis failures
	Logger *zap.Logger
}

// DefaultRateLimitConfig returns default rate limit config
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Max:    100,
		Window: time.Minute,
		Prefix: "agrix:ratelimit:",
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		Skip: CombinedSkipper(HealthSkipper, MetricsSkipper),
		LimitReached: func(c *fiber.Ctx) error {
			appErr := apperrors.RateLimited()
			return c.Status(appErr.StatusCode).JSON(fiber.Map{
				"error":   "Too Many Requests",
				"message": appErr.Message,
			})
		},
		Logger: zap.NewNop(),
	}
}

// RateLimitMiddleware is a Redis backed sliding window rate limiter.
// Each caller owns a sorted set of request timestamps; entries older than
// the window are trimmed before counting.
type RateLimitMiddleware struct {
	redis  *redis.Client
	config RateLimitConfig
}

// NewRateLimitMiddleware creates a new rate limit middleware
func NewRateLimitMiddleware(redisClient *redis.Client, config ...RateLimitConfig) *RateLimitMiddleware {
	cfg := DefaultRateLimitConfig()
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.KeyGenerator == nil {
		cfg.KeyGenerator = DefaultRateLimitConfig().KeyGenerator
	}
	if cfg.LimitReached == nil {
		cfg.LimitReached = DefaultRateLimitConfig().LimitReached
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &RateLimitMiddleware{
		redis:  redisClient,
		config: cfg,
	}
}

// Handler returns the rate limit handler. Requests are let through when
// Redis is unreachable.
func (m *RateLimitMiddleware) Handler() fiber.Handler {
	window := m.config.Window
	limit := strconv.Itoa(m.config.Max)

	return func(c *fiber.Ctx) error {
		if m.config.Skip != nil && m.config.Skip(c) {
			return c.Next()
		}

		ctx := c.UserContext()
		key := m.config.Prefix + m.config.KeyGenerator(c)
		now := time.Now()
		windowStart := now.Add(-window).UnixMicro()
		member := uuid.NewString()

		// Trim, record and count in one MULTI so concurrent requests from
		// the same caller each observe a distinct count.
		var count *redis.IntCmd
		_, err := m.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(windowStart, 10))
			pipe.ZAdd(ctx, key, redis.Z{Score: float64(now.UnixMicro()), Member: member})
			count = pipe.ZCard(ctx, key)
			pipe.Expire(ctx, key, window*2)
			return nil
		})
		if err != nil {
			m.config.Logger.Warn("rate limiter unavailable", zap.Error(err))
			return c.Next()
		}

		c.Set("X-RateLimit-Limit", limit)
		c.Set("X-RateLimit-Reset", strconv.FormatInt(now.Add(window).Unix(), 10))

		if count.Val() > int64(m.config.Max) {
			// Rejected requests do not take up room in the window.
			if err := m.redis.ZRem(ctx, key, member).Err(); err != nil {
				m.config.Logger.Warn("failed to release rejected request", zap.Error(err))
			}
			c.Set("X-RateLimit-Remaining", "0")
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(window.Seconds())))
			rateLimitedTotal.Inc()
			return m.config.LimitReached(c)
		}

		c.Set("X-RateLimit-Remaining", strconv.FormatInt(int64(m.config.Max)-count.Val(), 10))
		return c.Next()
	}
}
