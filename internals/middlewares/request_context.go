package middlewares

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"
	"go.uber.org/zap"
)

const (
	defaultRequestTimeout = 5 * time.Second
	exportRequestTimeout  = 60 * time.Second
)

// RequestContext assigns X-Request-ID and bounds the user context with a
// deadline that matches the DB statement_timeout. PDF exports download
// photos and get a longer one.
func RequestContext(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)

		timeout := defaultRequestTimeout
		if strings.HasSuffix(c.Path(), "/pdf") {
			timeout = exportRequestTimeout
		}
		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), timeout)
		defer cancel()
		c.SetUserContext(ctx)

		err := c.Next()
		if dur := time.Since(start); dur > time.Second {
			log.Warn("slow request",
				zap.String("request_id", id),
				zap.String("method", c.Method()),
				zap.String("path", c.OriginalURL()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("dur", dur),
			)
		}
		return err
	}
}

// SetupMiddlewares installs the global chain, outermost first.
func SetupMiddlewares(app *fiber.App, log *zap.Logger, origins string, accessLog fiber.Handler) {
	app.Use(RecoveryMiddleware(log))
	app.Use(RequestContext(log))
	if accessLog != nil {
		app.Use(accessLog)
	}
	app.Use(CorsMiddleware(origins))
	app.Use(GlobalRateLimiter())
}
