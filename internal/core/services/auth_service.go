package services

import (
	"context"
	"errors"

	"prenderia/internal/adapters/persistence/repositories"
	"prenderia/internal/config"
	"prenderia/internal/core/domain"
	"prenderia/internal/pkg/jwt"
	"prenderia/internal/pkg/password"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthService handles authentication business logic
type AuthService struct {
	usuarioRepo repositories.UsuarioRepository
	jwtCfg      config.JWTConfig
	log         *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(usuarioRepo repositories.UsuarioRepository, jwtCfg config.JWTConfig, log *zap.Logger) *AuthService {
	return &AuthService{
		usuarioRepo: usuarioRepo,
		jwtCfg:      jwtCfg,
		log:         log,
	}
}

// LoginInput represents login input. Username carries the identificación.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates a usuario and returns a signed access token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (string, error) {
	if !domain.ValidIdentificacion(input.Username) {
		return "", domain.ErrInvalidIdentificacion
	}

	usuario, err := s.usuarioRepo.GetByIdentificacion(ctx, input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !password.Verify(input.Password, usuario.Password) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := jwt.GenerateAccessToken(
		usuario.ID,
		usuario.Identificacion,
		usuario.Nombres,
		usuario.Rol,
		s.jwtCfg.Secret,
		s.jwtCfg.AccessTokenMins,
	)
	if err != nil {
		return "", err
	}

	s.log.Info("usuario logged in", zap.Uint("id_usuario", usuario.ID), zap.String("rol", usuario.Rol))
	return token, nil
}

// ValidateToken verifies an access token and returns its claims
func (s *AuthService) ValidateToken(token string) (*jwt.Claims, error) {
	return jwt.ValidateAccessToken(token, s.jwtCfg.Secret)
}
