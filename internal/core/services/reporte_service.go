package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"prenderia/internal/adapters/persistence/models"
	"prenderia/internal/core/domain"

	"gorm.io/gorm"
)

// ReporteService builds the admin reports
type ReporteService struct {
	db *gorm.DB
}

// NewReporteService creates a new report service
func NewReporteService(db *gorm.DB) *ReporteService {
	return &ReporteService{db: db}
}

// StatsResumen is the headline numbers of the report screen
type StatsResumen struct {
	TotalPrestamosActivos  int64   `json:"totalPrestamosActivos"`
	ValorTotalActivo       float64 `json:"valorTotalActivo"`
	TotalPrestamosPagados  int64   `json:"totalPrestamosPagados"`
	TotalUsuarios          int64   `json:"totalUsuarios"`
	InteresesPendientes    int64   `json:"interesesPendientes"`
	ValorInteresesCobrados float64 `json:"valorInteresesCobrados"`
}

// InteresMensual is the interest collected in one month
type InteresMensual struct {
	Mes   string  `json:"mes"`
	Valor float64 `json:"valor"`
}

// EmpenosPorTipo counts the artículos of one tipo
type EmpenosPorTipo struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// HistorialFilter narrows the pawn history. Zero values do not filter.
type HistorialFilter struct {
	UsuarioID uint
	Mes       int
	Anio      int
}

// HistorialEmpeno is one row of the pawn history
type HistorialEmpeno struct {
	IDEmpeno              uint      `json:"id_empeno"`
	FechaEmpeno           time.Time `json:"fecha_empeno"`
	NombreCliente         string    `json:"nombre_cliente"`
	IdentificacionCliente string    `json:"identificacion_cliente"`
	ValorPrestamo         *float64  `json:"valor_prestamo"`
	EstadoPrestamo        *string   `json:"estado_prestamo"`
	ArticulosResumen      string    `json:"articulos_resumen"`
}

// GetStatsResumen returns the summary figures
func (s *ReporteService) GetStatsResumen(ctx context.Context) (*StatsResumen, error) {
	data := &StatsResumen{}
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.Prestamo{}).Where("estado = ?", domain.LoanActivo).Count(&data.TotalPrestamosActivos).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Prestamo{}).Where("estado = ?", domain.LoanActivo).
		Select("COALESCE(SUM(valor), 0)").Scan(&data.ValorTotalActivo).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Prestamo{}).Where("estado = ?", domain.LoanPagado).Count(&data.TotalPrestamosPagados).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Usuario{}).Count(&data.TotalUsuarios).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Interes{}).Where("estado = ?", domain.InterestPendiente).Count(&data.InteresesPendientes).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Interes{}).Where("estado = ?", domain.InterestPagado).
		Select("COALESCE(SUM(valor), 0)").Scan(&data.ValorInteresesCobrados).Error; err != nil {
		return nil, err
	}

	return data, nil
}

// GetInteresesMensuales sums PAGADO installments per due month (YYYY-MM), oldest first
func (s *ReporteService) GetInteresesMensuales(ctx context.Context, anio int) ([]InteresMensual, error) {
	var intereses []models.Interes
	q := s.db.WithContext(ctx).Where("estado = ?", domain.InterestPagado)
	if anio > 0 {
		from := time.Date(anio, time.January, 1, 0, 0, 0, 0, time.Local)
		q = q.Where("fecha_interes >= ? AND fecha_interes < ?", from, from.AddDate(1, 0, 0))
	}
	if err := q.Find(&intereses).Error; err != nil {
		return nil, err
	}

	sums := make(map[string]float64)
	for _, i := range intereses {
		sums[i.FechaInteres.Format("2006-01")] += i.Valor
	}

	out := make([]InteresMensual, 0, len(sums))
	for mes, valor := range sums {
		out = append(out, InteresMensual{Mes: mes, Valor: valor})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Mes < out[b].Mes })
	return out, nil
}

// GetEmpenosPorTipo counts artículos per tipo de artículo
func (s *ReporteService) GetEmpenosPorTipo(ctx context.Context) ([]EmpenosPorTipo, error) {
	var out []EmpenosPorTipo
	err := s.db.WithContext(ctx).
		Table("tipos_articulos").
		Select("tipos_articulos.nombre AS name, COUNT(articulos.id_articulo) AS value").
		Joins("JOIN articulos ON articulos.tipo_articulo_id = tipos_articulos.id_tipo_articulo").
		Group("tipos_articulos.id_tipo_articulo, tipos_articulos.nombre").
		Order("value DESC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []EmpenosPorTipo{}
	}
	return out, nil
}

// GetHistorialEmpenos lists empeños with their latest préstamo, newest first
func (s *ReporteService) GetHistorialEmpenos(ctx context.Context, filter HistorialFilter) ([]HistorialEmpeno, error) {
	q := s.db.WithContext(ctx).
		Preload("Usuario").
		Preload("Articulos").
		Order("fecha_empeno DESC, id_empeno DESC")
	if filter.UsuarioID > 0 {
		q = q.Where("usuario_id = ?", filter.UsuarioID)
	}
	if filter.Anio > 0 {
		from := time.Date(filter.Anio, time.January, 1, 0, 0, 0, 0, time.Local)
		to := from.AddDate(1, 0, 0)
		if filter.Mes >= 1 && filter.Mes <= 12 {
			from = time.Date(filter.Anio, time.Month(filter.Mes), 1, 0, 0, 0, 0, time.Local)
			to = from.AddDate(0, 1, 0)
		}
		q = q.Where("fecha_empeno >= ? AND fecha_empeno < ?", from, to)
	}

	var empenos []models.Empeno
	if err := q.Find(&empenos).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(empenos))
	for _, e := range empenos {
		ids = append(ids, e.ID)
	}
	latest := make(map[uint]models.Prestamo)
	if len(ids) > 0 {
		var prestamos []models.Prestamo
		if err := s.db.WithContext(ctx).Where("empeno_id IN ?", ids).Order("id_prestamo ASC").Find(&prestamos).Error; err != nil {
			return nil, err
		}
		for _, p := range prestamos {
			latest[p.EmpenoID] = p
		}
	}

	out := make([]HistorialEmpeno, 0, len(empenos))
	for _, e := range empenos {
		// month without year filters in memory
		if filter.Anio == 0 && filter.Mes > 0 && int(e.FechaEmpeno.Month()) != filter.Mes {
			continue
		}

		row := HistorialEmpeno{
			IDEmpeno:         e.ID,
			FechaEmpeno:      e.FechaEmpeno,
			ArticulosResumen: resumenArticulos(e.Articulos),
		}
		if e.Usuario != nil {
			row.NombreCliente = e.Usuario.Nombres
			row.IdentificacionCliente = e.Usuario.Identificacion
		}
		if p, ok := latest[e.ID]; ok {
			valor, estado := p.Valor, p.Estado
			row.ValorPrestamo = &valor
			row.EstadoPrestamo = &estado
		}
		out = append(out, row)
	}
	return out, nil
}

func resumenArticulos(articulos []models.Articulo) string {
	parts := make([]string, 0, len(articulos))
	for _, a := range articulos {
		parts = append(parts, a.Descripcion)
	}
	return strings.Join(parts, ", ")
}
