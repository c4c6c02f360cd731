package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"prenderia/internal/adapters/persistence/models"
	"prenderia/internal/adapters/persistence/repositories"
	"prenderia/internal/core/domain"

	"gorm.io/gorm"
)

// EmpenoService handles empeños, artículos and the tipo de artículo catalog
type EmpenoService struct {
	empenoRepo  *repositories.EmpenoRepository
	usuarioRepo repositories.UsuarioRepository
}

// NewEmpenoService creates a new empeño service
func NewEmpenoService(empenoRepo *repositories.EmpenoRepository, usuarioRepo repositories.UsuarioRepository) *EmpenoService {
	return &EmpenoService{
		empenoRepo:  empenoRepo,
		usuarioRepo: usuarioRepo,
	}
}

// ArticuloInput is an artículo nested in an empeño form
type ArticuloInput struct {
	ID             uint    `json:"id_articulo"`
	Descripcion    string  `json:"descripcion"`
	TipoArticuloID uint    `json:"tipo_articulo_id"`
	Valor          float64 `json:"valor"`
}

// EmpenoInput represents create/update empeño input
type EmpenoInput struct {
	UsuarioID         uint            `json:"usuarioId"`
	Descripcion       string          `json:"descripcion"`
	InteresPorcentaje float64         `json:"interes_porcentaje"`
	Meses             int             `json:"meses"`
	Articulos         []ArticuloInput `json:"articulos"`
}

// CreateArticuloInput represents a standalone artículo
type CreateArticuloInput struct {
	EmpenoID       uint    `json:"empeno_id"`
	TipoArticuloID uint    `json:"tipo_articulo_id"`
	Descripcion    string  `json:"descripcion"`
	ValorAvaluo    float64 `json:"valor_avaluo"`
}

func (in *EmpenoInput) validate() error {
	if in.UsuarioID == 0 || in.Meses <= 0 || in.InteresPorcentaje < 0 {
		return domain.ErrInvalidInput
	}
	for _, a := range in.Articulos {
		if strings.TrimSpace(a.Descripcion) == "" || a.Valor < 0 || a.TipoArticuloID == 0 {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

// ListEmpenos lists empeños with owner and artículos
func (s *EmpenoService) ListEmpenos(ctx context.Context, offset, limit int) ([]*models.Empeno, int64, error) {
	return s.empenoRepo.List(ctx, offset, limit)
}

// CreateEmpeno creates an empeño; nested artículos start EMPENADO
func (s *EmpenoService) CreateEmpeno(ctx context.Context, input *EmpenoInput) (*models.Empeno, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if err := s.checkRefs(ctx, input); err != nil {
		return nil, err
	}

	empeno := &models.Empeno{
		UsuarioID:         input.UsuarioID,
		Descripcion:       input.Descripcion,
		InteresPorcentaje: input.InteresPorcentaje,
		Meses:             input.Meses,
		FechaEmpeno:       time.Now(),
		Articulos:         toArticulos(input.Articulos),
	}
	if err := s.empenoRepo.Create(ctx, empeno); err != nil {
		return nil, err
	}
	return s.empenoRepo.GetByID(ctx, empeno.ID)
}

// UpdateEmpeno updates the empeño header and appends new artículos
func (s *EmpenoService) UpdateEmpeno(ctx context.Context, id uint, input *EmpenoInput) (*models.Empeno, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	empeno, err := s.empenoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmpenoNotFound
		}
		return nil, err
	}
	if err := s.checkRefs(ctx, input); err != nil {
		return nil, err
	}

	empeno.UsuarioID = input.UsuarioID
	empeno.Descripcion = input.Descripcion
	empeno.InteresPorcentaje = input.InteresPorcentaje
	empeno.Meses = input.Meses

	var nuevos []ArticuloInput
	for _, a := range input.Articulos {
		if a.ID == 0 {
			nuevos = append(nuevos, a)
		}
	}

	if err := s.empenoRepo.Update(ctx, empeno, toArticulos(nuevos)); err != nil {
		return nil, err
	}
	return s.empenoRepo.GetByID(ctx, id)
}

func (s *EmpenoService) checkRefs(ctx context.Context, input *EmpenoInput) error {
	if _, err := s.usuarioRepo.GetByID(ctx, input.UsuarioID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	for _, a := range input.Articulos {
		if err := s.checkTipo(ctx, a.TipoArticuloID); err != nil {
			return err
		}
	}
	return nil
}

func (s *EmpenoService) checkTipo(ctx context.Context, id uint) error {
	ok, err := s.empenoRepo.TipoExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrTipoArticuloNotFound
	}
	return nil
}

func toArticulos(in []ArticuloInput) []models.Articulo {
	out := make([]models.Articulo, 0, len(in))
	for _, a := range in {
		out = append(out, models.Articulo{
			TipoArticuloID: a.TipoArticuloID,
			Descripcion:    strings.TrimSpace(a.Descripcion),
			ValorAvaluo:    a.Valor,
			Estado:         string(domain.ItemEmpenado),
		})
	}
	return out
}

// ============================================================
// Artículos
// ============================================================

// ListArticulos lists artículos, optionally filtered by estado
func (s *EmpenoService) ListArticulos(ctx context.Context, estado string) ([]*models.Articulo, error) {
	if estado != "" && !domain.ItemStatus(estado).Valid() {
		return nil, domain.ErrInvalidInput
	}
	return s.empenoRepo.ListArticulos(ctx, estado)
}

// CreateArticulo adds an artículo to an existing empeño
func (s *EmpenoService) CreateArticulo(ctx context.Context, input *CreateArticuloInput) (*models.Articulo, error) {
	if strings.TrimSpace(input.Descripcion) == "" || input.ValorAvaluo < 0 {
		return nil, domain.ErrInvalidInput
	}
	if _, err := s.empenoRepo.GetByID(ctx, input.EmpenoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmpenoNotFound
		}
		return nil, err
	}
	if err := s.checkTipo(ctx, input.TipoArticuloID); err != nil {
		return nil, err
	}

	articulo := &models.Articulo{
		EmpenoID:       input.EmpenoID,
		TipoArticuloID: input.TipoArticuloID,
		Descripcion:    strings.TrimSpace(input.Descripcion),
		ValorAvaluo:    input.ValorAvaluo,
		Estado:         string(domain.ItemEmpenado),
	}
	if err := s.empenoRepo.CreateArticulo(ctx, articulo); err != nil {
		return nil, err
	}
	return articulo, nil
}

// ============================================================
// Tipos de artículo
// ============================================================

// ListTipos lists the tipo de artículo catalog
func (s *EmpenoService) ListTipos(ctx context.Context) ([]*models.TipoArticulo, error) {
	return s.empenoRepo.ListTipos(ctx)
}

// CreateTipo adds a tipo de artículo
func (s *EmpenoService) CreateTipo(ctx context.Context, nombre string) (*models.TipoArticulo, error) {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	exists, err := s.empenoRepo.TipoExistsByNombre(ctx, nombre)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrTipoArticuloExists
	}

	tipo := &models.TipoArticulo{Nombre: nombre}
	if err := s.empenoRepo.CreateTipo(ctx, tipo); err != nil {
		return nil, err
	}
	return tipo, nil
}
