package middleware

import (
	"strings"

	"showcase/internal/domain"
	"showcase/internal/dto"
	"showcase/internal/logger"
	"showcase/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	ClaimsKey           = "claims" // Key for storing *dto.AuthClaims in fiber.Ctx locals
)

// RequiresPermission requires a valid bearer token granting permission. A missing or
// invalid token is 401; a valid token without the permission is 403.
func RequiresPermission(authService service.AuthService, permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := authenticate(c, authService)
		if err != nil {
			return err
		}
		if !claims.HasPermission(permission) {
			logger.Get().Info("Permission denied",
				zap.String("subject", claims.Subject),
				zap.String("permission", permission),
			)
			return domain.NewForbiddenError("Permission not found").WithContext("permission", permission)
		}
		return c.Next()
	}
}

// ClaimsFrom returns the claims stored by RequiresPermission, or nil on public routes
func ClaimsFrom(c *fiber.Ctx) *dto.AuthClaims {
	claims, _ := c.Locals(ClaimsKey).(*dto.AuthClaims)
	return claims
}

func authenticate(c *fiber.Ctx, authService service.AuthService) (*dto.AuthClaims, error) {
	authHeader := c.Get(AuthorizationHeader)
	if authHeader == "" {
		return nil, domain.NewUnauthorizedError("Authorization header is missing")
	}
	if !strings.HasPrefix(authHeader, BearerSchema) {
		return nil, domain.NewUnauthorizedError("Authorization scheme is not Bearer")
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
	if tokenString == "" {
		return nil, domain.NewUnauthorizedError("Token is empty")
	}

	claims, err := authService.ValidateJWT(c.UserContext(), tokenString)
	if err != nil {
		return nil, domain.NewError(domain.CodeUnauthorized, "Token is invalid", err)
	}
	c.Locals(ClaimsKey, claims)
	return claims, nil
}
