package middleware

import (
	"showcase/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// Recover turns a handler panic into an error and logs it with the stack. Register it
// after RequestLogger and the metrics handler so the 500 is logged and counted.
func Recover() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			logger.Get().Error("Recovered from panic",
				zap.Any("panic", e),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("request_id", RequestIDFrom(c)),
				zap.Stack("stack"),
			)
		},
	})
}
