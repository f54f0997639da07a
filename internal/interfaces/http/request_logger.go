package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jortegav/retailos-api/pkg/logger"
)

// RequestLogger registra cada petición HTTP con método, ruta, estado y latencia.
// Si AuthMiddleware ya corrió, incluye el user_id del token.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		ev := log.Info()
		status := c.Response().StatusCode()
		if err != nil || status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}

		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start))
		if userID := GetUserID(c); userID != "" {
			ev.Str("user_id", userID)
		}
		ev.Msg("request")

		return err
	}
}
