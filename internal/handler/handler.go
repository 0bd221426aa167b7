package handler

import (
	"showcase/internal/domain"
	"showcase/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// parseBody decodes the JSON request body into out, reporting malformed bodies as 400
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		logger.Get().Debug("Failed to parse request body", zap.String("path", c.Path()), zap.Error(err))
		return domain.NewInvalidInputError("Request body is not valid JSON", err)
	}
	return nil
}
