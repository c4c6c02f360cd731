package services

import (
	"context"
	"errors"
	"strings"

	"prenderia/internal/adapters/persistence/models"
	"prenderia/internal/adapters/persistence/repositories"
	"prenderia/internal/core/domain"
	"prenderia/internal/pkg/password"

	"gorm.io/gorm"
)

// UsuarioService handles usuario management business logic
type UsuarioService struct {
	usuarioRepo repositories.UsuarioRepository
}

// NewUsuarioService creates a new usuario service
func NewUsuarioService(usuarioRepo repositories.UsuarioRepository) *UsuarioService {
	return &UsuarioService{usuarioRepo: usuarioRepo}
}

// CreateUsuarioInput represents create usuario input
type CreateUsuarioInput struct {
	Nombres        string `json:"nombres"`
	Identificacion string `json:"identificacion"`
	Direccion      string `json:"direccion"`
	Telefono       string `json:"telefono"`
	Password       string `json:"password"`
	Rol            string `json:"rol"`
}

// UpdateUsuarioInput represents update usuario input (for admin).
// An empty password keeps the current one.
type UpdateUsuarioInput struct {
	Nombres        *string `json:"nombres"`
	Identificacion *string `json:"identificacion"`
	Direccion      *string `json:"direccion"`
	Telefono       *string `json:"telefono"`
	Password       *string `json:"password"`
	Rol            *string `json:"rol"`
}

// UpdateMeInput represents the fields a usuario may change on their own profile
type UpdateMeInput struct {
	Direccion *string `json:"direccion"`
	Telefono  *string `json:"telefono"`
}

// List lists usuarios; limit <= 0 returns all of them
func (s *UsuarioService) List(ctx context.Context, offset, limit int) ([]*models.Usuario, int64, error) {
	return s.usuarioRepo.List(ctx, offset, limit)
}

// Get gets a usuario by ID
func (s *UsuarioService) Get(ctx context.Context, id uint) (*models.Usuario, error) {
	usuario, err := s.usuarioRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return usuario, nil
}

// Create creates a usuario
func (s *UsuarioService) Create(ctx context.Context, input *CreateUsuarioInput) (*models.Usuario, error) {
	input.Identificacion = strings.TrimSpace(input.Identificacion)
	if strings.TrimSpace(input.Nombres) == "" {
		return nil, domain.ErrInvalidInput
	}
	if !domain.ValidIdentificacion(input.Identificacion) {
		return nil, domain.ErrInvalidIdentificacion
	}
	if !password.ValidatePassword(input.Password) {
		return nil, domain.ErrWeakPassword
	}
	rol := domain.Role(input.Rol)
	if rol == "" {
		rol = domain.RoleCliente
	}
	if !rol.Valid() {
		return nil, domain.ErrInvalidRole
	}

	exists, err := s.usuarioRepo.ExistsByIdentificacion(ctx, input.Identificacion)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	usuario := &models.Usuario{
		Nombres:        strings.TrimSpace(input.Nombres),
		Identificacion: input.Identificacion,
		Direccion:      input.Direccion,
		Telefono:       input.Telefono,
		Password:       hashed,
		Rol:            string(rol),
	}
	if err := s.usuarioRepo.Create(ctx, usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

// Update updates a usuario (admin)
func (s *UsuarioService) Update(ctx context.Context, id uint, input *UpdateUsuarioInput) (*models.Usuario, error) {
	usuario, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Nombres != nil {
		if strings.TrimSpace(*input.Nombres) == "" {
			return nil, domain.ErrInvalidInput
		}
		usuario.Nombres = strings.TrimSpace(*input.Nombres)
	}
	if input.Identificacion != nil && *input.Identificacion != usuario.Identificacion {
		if !domain.ValidIdentificacion(*input.Identificacion) {
			return nil, domain.ErrInvalidIdentificacion
		}
		exists, err := s.usuarioRepo.ExistsByIdentificacion(ctx, *input.Identificacion)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrUserAlreadyExists
		}
		usuario.Identificacion = *input.Identificacion
	}
	if input.Direccion != nil {
		usuario.Direccion = *input.Direccion
	}
	if input.Telefono != nil {
		usuario.Telefono = *input.Telefono
	}
	if input.Rol != nil {
		rol := domain.Role(*input.Rol)
		if !rol.Valid() {
			return nil, domain.ErrInvalidRole
		}
		usuario.Rol = string(rol)
	}
	if input.Password != nil && *input.Password != "" {
		if !password.ValidatePassword(*input.Password) {
			return nil, domain.ErrWeakPassword
		}
		hashed, err := password.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		usuario.Password = hashed
	}

	if err := s.usuarioRepo.Update(ctx, usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

// Delete deletes a usuario; an actor cannot delete themselves
func (s *UsuarioService) Delete(ctx context.Context, actor Actor, id uint) error {
	if actor.ID == id {
		return domain.ErrCannotDeleteSelf
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.usuarioRepo.Delete(ctx, id)
}

// UpdateMe updates the contact data of the calling usuario
func (s *UsuarioService) UpdateMe(ctx context.Context, id uint, input *UpdateMeInput) (*models.Usuario, error) {
	usuario, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Direccion != nil {
		usuario.Direccion = *input.Direccion
	}
	if input.Telefono != nil {
		usuario.Telefono = *input.Telefono
	}
	if err := s.usuarioRepo.Update(ctx, usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}
