package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"prenderia/internal/adapters/http/middleware"
	"prenderia/internal/core/domain"
	"prenderia/internal/core/services"
	"prenderia/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// actorFrom builds the service actor from the locals set by AuthMiddleware
func actorFrom(c *fiber.Ctx) services.Actor {
	id, _ := c.Locals(middleware.LocalIDUsuario).(uint)
	role, _ := c.Locals(middleware.LocalRole).(string)
	return services.Actor{ID: id, Role: domain.Role(role)}
}

// paramID parses a positive numeric route parameter
func paramID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// queryInt parses an optional integer query parameter; zero when absent or invalid
func queryInt(c *fiber.Ctx, name string) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return n
}

// parseDate accepts YYYY-MM-DD or RFC 3339; empty yields the zero time
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// serviceError maps domain errors to HTTP responses. Unknown errors go to the
// fiber error handler, which logs them and answers 500.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return response.Unauthorized(c, "Credenciales inválidas")
	case errors.Is(err, domain.ErrForbidden):
		return response.Forbidden(c, "No tiene permisos para este recurso")

	case errors.Is(err, domain.ErrInvalidIdentificacion):
		return response.BadRequest(c, "La identificación debe contener solo números.")
	case errors.Is(err, domain.ErrWeakPassword):
		return response.BadRequest(c, "La contraseña debe tener al menos 8 caracteres")
	case errors.Is(err, domain.ErrInvalidRole):
		return response.BadRequest(c, "Rol inválido")
	case errors.Is(err, domain.ErrInvalidLoanStatus):
		return response.BadRequest(c, "Estado de préstamo inválido")
	case errors.Is(err, domain.ErrInvalidInterestStatus):
		return response.BadRequest(c, "Estado de interés inválido")
	case errors.Is(err, domain.ErrCannotDeleteSelf):
		return response.BadRequest(c, "No puede eliminar su propia cuenta")
	case errors.Is(err, domain.ErrInvalidInput):
		return response.BadRequest(c, "Datos inválidos")

	case errors.Is(err, domain.ErrUserNotFound):
		return response.NotFound(c, "Usuario no encontrado")
	case errors.Is(err, domain.ErrEmpenoNotFound):
		return response.NotFound(c, "Empeño no encontrado")
	case errors.Is(err, domain.ErrTipoArticuloNotFound):
		return response.NotFound(c, "Tipo de artículo no encontrado")
	case errors.Is(err, domain.ErrLoanNotFound):
		return response.NotFound(c, "Préstamo no encontrado")
	case errors.Is(err, domain.ErrInterestNotFound):
		return response.NotFound(c, "Interés no encontrado")

	case errors.Is(err, domain.ErrUserAlreadyExists):
		return response.Conflict(c, "La identificación ya está registrada")
	case errors.Is(err, domain.ErrTipoArticuloExists):
		return response.Conflict(c, "El tipo de artículo ya existe")
	case errors.Is(err, domain.ErrLoanStatusTransition):
		return response.Conflict(c, "Cambio de estado no permitido")
	}
	return err
}
