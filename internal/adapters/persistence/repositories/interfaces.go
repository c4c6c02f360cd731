package repositories

import (
	"context"

	"prenderia/internal/adapters/persistence/models"
)

// UsuarioRepository defines usuario repository interface
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *models.Usuario) error
	GetByID(ctx context.Context, id uint) (*models.Usuario, error)
	GetByIdentificacion(ctx context.Context, identificacion string) (*models.Usuario, error)
	Update(ctx context.Context, usuario *models.Usuario) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.Usuario, int64, error)
	ExistsByIdentificacion(ctx context.Context, identificacion string) (bool, error)
	CountByRol(ctx context.Context, rol string) (int64, error)
}
