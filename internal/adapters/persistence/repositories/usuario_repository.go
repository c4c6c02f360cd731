package repositories

import (
	"context"

	"prenderia/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// usuarioRepository implements UsuarioRepository interface
type usuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository creates a new usuario repository
func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

// Create creates a new usuario
func (r *usuarioRepository) Create(ctx context.Context, usuario *models.Usuario) error {
	return r.db.WithContext(ctx).Create(usuario).Error
}

// GetByID gets a usuario by ID
func (r *usuarioRepository) GetByID(ctx context.Context, id uint) (*models.Usuario, error) {
	var usuario models.Usuario
	err := r.db.WithContext(ctx).Where("id_usuario = ?", id).First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

// GetByIdentificacion gets a usuario by identification number
func (r *usuarioRepository) GetByIdentificacion(ctx context.Context, identificacion string) (*models.Usuario, error) {
	var usuario models.Usuario
	err := r.db.WithContext(ctx).Where("identificacion = ?", identificacion).First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

// Update updates a usuario
func (r *usuarioRepository) Update(ctx context.Context, usuario *models.Usuario) error {
	return r.db.WithContext(ctx).Save(usuario).Error
}

// Delete soft deletes a usuario
func (r *usuarioRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Usuario{}, id).Error
}

// List lists usuarios; a non-positive limit returns every row
func (r *usuarioRepository) List(ctx context.Context, offset, limit int) ([]*models.Usuario, int64, error) {
	var usuarios []*models.Usuario
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Usuario{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).Order("id_usuario ASC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	if err := q.Find(&usuarios).Error; err != nil {
		return nil, 0, err
	}

	return usuarios, total, nil
}

// ExistsByIdentificacion checks if identificacion exists, including soft-deleted rows
// since the unique index still covers them
func (r *usuarioRepository) ExistsByIdentificacion(ctx context.Context, identificacion string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().Model(&models.Usuario{}).Where("identificacion = ?", identificacion).Count(&count).Error
	return count > 0, err
}

// CountByRol counts usuarios with the given rol
func (r *usuarioRepository) CountByRol(ctx context.Context, rol string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Usuario{}).Where("rol = ?", rol).Count(&count).Error
	return count, err
}
