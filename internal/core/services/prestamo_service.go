package services

import (
	"context"
	"errors"
	"math"
	"time"

	"prenderia/internal/adapters/persistence/models"
	"prenderia/internal/adapters/persistence/repositories"
	"prenderia/internal/core/domain"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PrestamoService handles préstamos and their interés installments
type PrestamoService struct {
	prestamoRepo *repositories.PrestamoRepository
	empenoRepo   *repositories.EmpenoRepository
	log          *zap.Logger
}

// NewPrestamoService creates a new préstamo service
func NewPrestamoService(prestamoRepo *repositories.PrestamoRepository, empenoRepo *repositories.EmpenoRepository, log *zap.Logger) *PrestamoService {
	return &PrestamoService{
		prestamoRepo: prestamoRepo,
		empenoRepo:   empenoRepo,
		log:          log,
	}
}

// CreatePrestamoInput represents create préstamo input
type CreatePrestamoInput struct {
	EmpenoID      uint
	Valor         float64
	Estado        string
	FechaPrestamo time.Time
}

// InstallmentValue is the monthly interest owed on valor at pct percent, rounded to cents
func InstallmentValue(valor, pct float64) float64 {
	return math.Round(valor*pct) / 100
}

// BuildSchedule returns the meses PENDIENTE installments of a préstamo;
// month i is due i months after fecha
func BuildSchedule(valor, pct float64, meses int, fecha time.Time) []models.Interes {
	cuota := InstallmentValue(valor, pct)
	intereses := make([]models.Interes, 0, meses)
	for i := 1; i <= meses; i++ {
		intereses = append(intereses, models.Interes{
			Mes:          i,
			FechaInteres: fecha.AddDate(0, i, 0),
			Valor:        cuota,
			Estado:       string(domain.InterestPendiente),
		})
	}
	return intereses
}

// List lists préstamos, optionally filtered by estado
func (s *PrestamoService) List(ctx context.Context, estado string, offset, limit int) ([]*models.Prestamo, int64, error) {
	if estado != "" && !domain.LoanStatus(estado).Valid() {
		return nil, 0, domain.ErrInvalidLoanStatus
	}
	return s.prestamoRepo.List(ctx, estado, offset, limit)
}

// ListMine lists the préstamos owned by the usuario
func (s *PrestamoService) ListMine(ctx context.Context, usuarioID uint) ([]*models.Prestamo, error) {
	return s.prestamoRepo.ListByUsuario(ctx, usuarioID)
}

// Get gets a préstamo; a CLIENTE may only read their own
func (s *PrestamoService) Get(ctx context.Context, actor Actor, id uint) (*models.Prestamo, error) {
	prestamo, err := s.prestamoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLoanNotFound
		}
		return nil, err
	}
	if !actor.IsAdmin() && (prestamo.Empeno == nil || prestamo.Empeno.UsuarioID != actor.ID) {
		return nil, domain.ErrForbidden
	}
	return prestamo, nil
}

// Create creates a préstamo and its installment schedule
func (s *PrestamoService) Create(ctx context.Context, input *CreatePrestamoInput) (*models.Prestamo, error) {
	if input.Valor <= 0 {
		return nil, domain.ErrInvalidInput
	}
	estado := domain.LoanStatus(input.Estado)
	if estado == "" {
		estado = domain.LoanActivo
	}
	if !estado.Valid() || estado == domain.LoanPagado {
		return nil, domain.ErrInvalidLoanStatus
	}

	empeno, err := s.empenoRepo.GetByID(ctx, input.EmpenoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmpenoNotFound
		}
		return nil, err
	}

	fecha := input.FechaPrestamo
	if fecha.IsZero() {
		fecha = time.Now()
	}

	prestamo := &models.Prestamo{
		EmpenoID:      empeno.ID,
		Valor:         input.Valor,
		Estado:        string(estado),
		FechaPrestamo: fecha,
	}
	schedule := BuildSchedule(input.Valor, empeno.InteresPorcentaje, empeno.Meses, fecha)
	if err := s.prestamoRepo.CreateWithIntereses(ctx, prestamo, schedule); err != nil {
		return nil, err
	}

	s.log.Info("prestamo created",
		zap.Uint("id_prestamo", prestamo.ID),
		zap.Uint("empeno_id", empeno.ID),
		zap.Int("cuotas", len(schedule)),
	)
	return prestamo, nil
}

// UpdateEstado changes the estado of a préstamo; PAGADO is terminal
func (s *PrestamoService) UpdateEstado(ctx context.Context, id uint, estado string) (*models.Prestamo, error) {
	next := domain.LoanStatus(estado)
	if !next.Valid() {
		return nil, domain.ErrInvalidLoanStatus
	}

	prestamo, err := s.prestamoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLoanNotFound
		}
		return nil, err
	}
	if !domain.LoanStatus(prestamo.Estado).CanTransitionTo(next) {
		return nil, domain.ErrLoanStatusTransition
	}

	if prestamo.Estado != string(next) {
		if err := s.prestamoRepo.UpdateEstado(ctx, id, string(next)); err != nil {
			return nil, err
		}
		s.log.Info("prestamo estado changed",
			zap.Uint("id_prestamo", id),
			zap.String("from", prestamo.Estado),
			zap.String("to", string(next)),
		)
		prestamo.Estado = string(next)
	}
	return prestamo, nil
}

// ListIntereses lists the installments of a préstamo for its owner or an admin
func (s *PrestamoService) ListIntereses(ctx context.Context, actor Actor, prestamoID uint) ([]*models.Interes, error) {
	if _, err := s.Get(ctx, actor, prestamoID); err != nil {
		return nil, err
	}
	return s.prestamoRepo.ListIntereses(ctx, prestamoID)
}

// UpdateInteresEstado changes the estado of an installment.
// Installments of a PAGADO préstamo cannot go back to PENDIENTE.
func (s *PrestamoService) UpdateInteresEstado(ctx context.Context, id uint, estado string) (*models.Interes, error) {
	next := domain.InterestStatus(estado)
	if !next.Valid() {
		return nil, domain.ErrInvalidInterestStatus
	}

	interes, err := s.prestamoRepo.GetInteres(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInterestNotFound
		}
		return nil, err
	}
	if interes.Estado == string(next) {
		return interes, nil
	}

	if next == domain.InterestPendiente {
		prestamo, err := s.prestamoRepo.GetByID(ctx, interes.PrestamoID)
		if err != nil {
			return nil, err
		}
		if prestamo.Estado == string(domain.LoanPagado) {
			return nil, domain.ErrLoanStatusTransition
		}
	}

	if err := s.prestamoRepo.UpdateInteresEstado(ctx, id, string(next)); err != nil {
		return nil, err
	}
	interes.Estado = string(next)
	return interes, nil
}

// Reconcile marks PAGADO every préstamo whose installments are all PAGADO.
// It returns the number of préstamos settled.
func (s *PrestamoService) Reconcile(ctx context.Context) (int, error) {
	prestamos, err := s.prestamoRepo.ListSettleable(ctx)
	if err != nil {
		return 0, err
	}

	settled := 0
	for _, p := range prestamos {
		if err := s.prestamoRepo.UpdateEstado(ctx, p.ID, string(domain.LoanPagado)); err != nil {
			s.log.Error("reconcile prestamo failed", zap.Uint("id_prestamo", p.ID), zap.Error(err))
			continue
		}
		settled++
	}
	return settled, nil
}
