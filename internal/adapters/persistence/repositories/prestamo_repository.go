package repositories

import (
	"context"

	"prenderia/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// PrestamoRepository handles préstamo and interés data access
type PrestamoRepository struct {
	db *gorm.DB
}

// NewPrestamoRepository creates a new préstamo repository
func NewPrestamoRepository(db *gorm.DB) *PrestamoRepository {
	return &PrestamoRepository{db: db}
}

// CreateWithIntereses creates a préstamo and its installment schedule atomically
func (r *PrestamoRepository) CreateWithIntereses(ctx context.Context, prestamo *models.Prestamo, intereses []models.Interes) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Intereses", "Empeno").Create(prestamo).Error; err != nil {
			return err
		}
		for i := range intereses {
			intereses[i].PrestamoID = prestamo.ID
		}
		if len(intereses) > 0 {
			if err := tx.Create(&intereses).Error; err != nil {
				return err
			}
		}
		prestamo.Intereses = intereses
		return nil
	})
}

// GetByID gets a préstamo with its empeño, owner and installments
func (r *PrestamoRepository) GetByID(ctx context.Context, id uint) (*models.Prestamo, error) {
	var prestamo models.Prestamo
	err := r.db.WithContext(ctx).
		Preload("Empeno.Usuario").
		Preload("Empeno.Articulos").
		Preload("Intereses", func(db *gorm.DB) *gorm.DB {
			return db.Order("mes ASC, id_interes ASC")
		}).
		Where("id_prestamo = ?", id).
		First(&prestamo).Error
	if err != nil {
		return nil, err
	}
	return &prestamo, nil
}

// List lists préstamos; a non-positive limit returns every row
func (r *PrestamoRepository) List(ctx context.Context, estado string, offset, limit int) ([]*models.Prestamo, int64, error) {
	var prestamos []*models.Prestamo
	var total int64

	count := r.db.WithContext(ctx).Model(&models.Prestamo{})
	if estado != "" {
		count = count.Where("estado = ?", estado)
	}
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).
		Preload("Empeno.Usuario").
		Order("id_prestamo DESC")
	if estado != "" {
		q = q.Where("estado = ?", estado)
	}
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	err := q.Find(&prestamos).Error
	return prestamos, total, err
}

// ListByUsuario lists the préstamos whose empeño belongs to the usuario
func (r *PrestamoRepository) ListByUsuario(ctx context.Context, usuarioID uint) ([]*models.Prestamo, error) {
	var prestamos []*models.Prestamo
	err := r.db.WithContext(ctx).
		Preload("Empeno.Articulos").
		Joins("JOIN empenos ON empenos.id_empeno = prestamos.empeno_id").
		Where("empenos.usuario_id = ?", usuarioID).
		Order("prestamos.id_prestamo DESC").
		Find(&prestamos).Error
	return prestamos, err
}

// UpdateEstado sets the estado of a préstamo
func (r *PrestamoRepository) UpdateEstado(ctx context.Context, id uint, estado string) error {
	return r.db.WithContext(ctx).Model(&models.Prestamo{}).
		Where("id_prestamo = ?", id).
		Update("estado", estado).Error
}

// ListSettleable returns non-PAGADO préstamos that have installments and none pending
func (r *PrestamoRepository) ListSettleable(ctx context.Context) ([]*models.Prestamo, error) {
	var prestamos []*models.Prestamo
	err := r.db.WithContext(ctx).
		Where("estado <> ?", "PAGADO").
		Where("EXISTS (SELECT 1 FROM intereses i WHERE i.prestamo_id = prestamos.id_prestamo)").
		Where("NOT EXISTS (SELECT 1 FROM intereses i WHERE i.prestamo_id = prestamos.id_prestamo AND i.estado <> ?)", "PAGADO").
		Find(&prestamos).Error
	return prestamos, err
}

// ============================================================
// Intereses
// ============================================================

// ListIntereses lists the installments of a préstamo in month order
func (r *PrestamoRepository) ListIntereses(ctx context.Context, prestamoID uint) ([]*models.Interes, error) {
	var intereses []*models.Interes
	err := r.db.WithContext(ctx).
		Where("prestamo_id = ?", prestamoID).
		Order("mes ASC, id_interes ASC").
		Find(&intereses).Error
	return intereses, err
}

// GetInteres gets a single installment
func (r *PrestamoRepository) GetInteres(ctx context.Context, id uint) (*models.Interes, error) {
	var interes models.Interes
	err := r.db.WithContext(ctx).Where("id_interes = ?", id).First(&interes).Error
	if err != nil {
		return nil, err
	}
	return &interes, nil
}

// UpdateInteresEstado sets the estado of an installment
func (r *PrestamoRepository) UpdateInteresEstado(ctx context.Context, id uint, estado string) error {
	return r.db.WithContext(ctx).Model(&models.Interes{}).
		Where("id_interes = ?", id).
		Update("estado", estado).Error
}
