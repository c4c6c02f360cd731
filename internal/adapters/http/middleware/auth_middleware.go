package middleware

import (
	"errors"
	"strings"

	"prenderia/internal/pkg/jwt"
	"prenderia/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by AuthMiddleware
const (
	LocalIDUsuario      = "idUsuario"
	LocalIdentificacion = "identificacion"
	LocalUsername       = "username"
	LocalRole           = "role"
)

// TokenValidator verifies an access token and returns its claims
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// AuthMiddleware requires a valid Bearer access token
func AuthMiddleware(validator TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := bearerToken(c)
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		claims, err := validator.ValidateToken(accessToken)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		c.Locals(LocalIDUsuario, claims.IDUsuario)
		c.Locals(LocalIdentificacion, claims.Identificacion)
		c.Locals(LocalUsername, claims.Username)
		c.Locals(LocalRole, claims.Role)

		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocalRole).(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				return c.Next()
			}
		}

		return response.Forbidden(c, "No tiene permisos para este recurso")
	}
}

// AdminOnly middleware allows only ADMIN role
func AdminOnly() fiber.Handler {
	return RoleMiddleware("ADMIN")
}
