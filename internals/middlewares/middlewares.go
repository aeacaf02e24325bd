package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	loggerMw "skripsiku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar untuk semua route.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(RequestIDMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}

// RequestIDMiddleware menempelkan X-Request-ID (pakai yang dikirim klien bila ada).
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		return c.Next()
	}
}
