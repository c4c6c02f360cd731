package repositories

import (
	"context"

	"prenderia/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// EmpenoRepository handles empeño, artículo and tipo de artículo data access
type EmpenoRepository struct {
	db *gorm.DB
}

// NewEmpenoRepository creates a new empeño repository
func NewEmpenoRepository(db *gorm.DB) *EmpenoRepository {
	return &EmpenoRepository{db: db}
}

// ============================================================
// Empeños
// ============================================================

// Create creates an empeño together with its artículos
func (r *EmpenoRepository) Create(ctx context.Context, empeno *models.Empeno) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(empeno).Error
	})
}

// GetByID gets an empeño with its owner and artículos
func (r *EmpenoRepository) GetByID(ctx context.Context, id uint) (*models.Empeno, error) {
	var empeno models.Empeno
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Preload("Articulos.TipoArticulo").
		Where("id_empeno = ?", id).
		First(&empeno).Error
	if err != nil {
		return nil, err
	}
	return &empeno, nil
}

// List lists empeños; a non-positive limit returns every row
func (r *EmpenoRepository) List(ctx context.Context, offset, limit int) ([]*models.Empeno, int64, error) {
	var empenos []*models.Empeno
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Empeno{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).
		Preload("Usuario").
		Preload("Articulos.TipoArticulo").
		Order("id_empeno DESC")
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	err := q.Find(&empenos).Error
	return empenos, total, err
}

// Update saves the empeño header and inserts artículos that have no ID yet
func (r *EmpenoRepository) Update(ctx context.Context, empeno *models.Empeno, nuevos []models.Articulo) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(empeno).Select("UsuarioID", "Descripcion", "InteresPorcentaje", "Meses").Updates(empeno).Error; err != nil {
			return err
		}
		for i := range nuevos {
			nuevos[i].EmpenoID = empeno.ID
			if err := tx.Create(&nuevos[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ============================================================
// Artículos
// ============================================================

// CreateArticulo creates a single artículo
func (r *EmpenoRepository) CreateArticulo(ctx context.Context, articulo *models.Articulo) error {
	return r.db.WithContext(ctx).Create(articulo).Error
}

// ListArticulos lists artículos, optionally filtered by estado
func (r *EmpenoRepository) ListArticulos(ctx context.Context, estado string) ([]*models.Articulo, error) {
	var articulos []*models.Articulo
	q := r.db.WithContext(ctx).
		Preload("TipoArticulo").
		Preload("Empeno.Usuario").
		Order("id_articulo DESC")
	if estado != "" {
		q = q.Where("estado = ?", estado)
	}
	err := q.Find(&articulos).Error
	return articulos, err
}

// ============================================================
// Tipos de artículo
// ============================================================

// CreateTipo creates a tipo de artículo
func (r *EmpenoRepository) CreateTipo(ctx context.Context, tipo *models.TipoArticulo) error {
	return r.db.WithContext(ctx).Create(tipo).Error
}

// ListTipos lists every tipo de artículo by name
func (r *EmpenoRepository) ListTipos(ctx context.Context) ([]*models.TipoArticulo, error) {
	var tipos []*models.TipoArticulo
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&tipos).Error
	return tipos, err
}

// TipoExists checks whether a tipo with the given ID exists
func (r *EmpenoRepository) TipoExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.TipoArticulo{}).Where("id_tipo_articulo = ?", id).Count(&count).Error
	return count > 0, err
}

// TipoExistsByNombre checks whether a tipo with the given name exists
func (r *EmpenoRepository) TipoExistsByNombre(ctx context.Context, nombre string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.TipoArticulo{}).Where("nombre = ?", nombre).Count(&count).Error
	return count > 0, err
}
