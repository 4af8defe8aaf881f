package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/paintstock-api/pkg/logger"
)

// RequestLogger middleware que registra cada petición HTTP: método, ruta,
// estado y duración. Las respuestas 4xx se registran como warn y las 5xx como
// error; el resto a nivel debug para no ensuciar los logs en producción.
func RequestLogger(log *logger.Logger) fiber.Handler {
	zl := log.With().Str("component", "http").Logger()
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		event := zl.Debug()
		switch {
		case status >= fiber.StatusInternalServerError:
			event = zl.Error()
		case status >= fiber.StatusBadRequest:
			event = zl.Warn()
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("petición atendida")
		return err
	}
}
