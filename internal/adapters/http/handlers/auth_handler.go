package handlers

import (
	"strings"

	"prenderia/internal/core/services"
	"prenderia/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents login request body. Username is the identificación.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles user login
// @Summary Login
// @Description Authenticate with identificación and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la solicitud inválido")
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return response.BadRequest(c, "Usuario y contraseña son requeridos")
	}

	token, err := h.authService.Login(c.Context(), &services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, response.TokenResponse{Token: token})
}
