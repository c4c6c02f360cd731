package api

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
)

// StatsResumen is the dashboard summary.
type StatsResumen struct {
	TotalPrestamosActivos  int64   `json:"totalPrestamosActivos"`
	ValorTotalActivo       float64 `json:"valorTotalActivo"`
	TotalPrestamosPagados  int64   `json:"totalPrestamosPagados"`
	TotalUsuarios          int64   `json:"totalUsuarios"`
	InteresesPendientes    int64   `json:"interesesPendientes"`
	ValorInteresesCobrados float64 `json:"valorInteresesCobrados"`
}

// InteresMensual is the interest collected in one month ("2006-01").
type InteresMensual struct {
	Mes   string  `json:"mes"`
	Valor float64 `json:"valor"`
}

// EmpenosPorTipo counts pawned items per category.
type EmpenosPorTipo struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// HistorialEmpeno is one row of the pawn history.
type HistorialEmpeno struct {
	IDEmpeno              uint      `json:"id_empeno"`
	FechaEmpeno           time.Time `json:"fecha_empeno"`
	NombreCliente         string    `json:"nombre_cliente"`
	IdentificacionCliente string    `json:"identificacion_cliente"`
	ValorPrestamo         *float64  `json:"valor_prestamo"`
	EstadoPrestamo        *string   `json:"estado_prestamo"`
	ArticulosResumen      string    `json:"articulos_resumen"`
}

// ReportFilter narrows the report reads. Zero fields are not sent.
type ReportFilter struct {
	UsuarioID uint
	Mes       int
	Anio      int
}

func (f ReportFilter) values() url.Values {
	q := url.Values{}
	if f.UsuarioID > 0 {
		q.Set("usuario_id", strconv.FormatUint(uint64(f.UsuarioID), 10))
	}
	if f.Mes > 0 {
		q.Set("mes", strconv.Itoa(f.Mes))
	}
	if f.Anio > 0 {
		q.Set("anio", strconv.Itoa(f.Anio))
	}
	return q
}

// Report bundles the four report reads.
type Report struct {
	Resumen            StatsResumen
	InteresesMensuales []InteresMensual
	EmpenosPorTipo     []EmpenosPorTipo
	Historial          []HistorialEmpeno
}

// FetchReport reads the four reports in parallel. The first failure cancels
// the others and is returned.
func (c *Client) FetchReport(ctx context.Context, filter ReportFilter) (*Report, error) {
	q := filter.values()
	var r Report

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return c.do(ctx, http.MethodGet, "/stats-resumen", q, nil, &r.Resumen)
	})
	eg.Go(func() error {
		return c.do(ctx, http.MethodGet, "/intereses-mensuales", q, nil, &r.InteresesMensuales)
	})
	eg.Go(func() error {
		return c.do(ctx, http.MethodGet, "/empenos-por-tipo", nil, nil, &r.EmpenosPorTipo)
	})
	eg.Go(func() error {
		return c.do(ctx, http.MethodGet, "/historial-empenos", q, nil, &r.Historial)
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return &r, nil
}

var historialHeader = []string{"Cliente", "Identificación", "Valor Préstamo", "Estado", "Artículos"}

// WriteHistorialCSV writes the pawn history as CSV with a header row.
// Empeños without a loan leave the loan columns empty.
func WriteHistorialCSV(w io.Writer, rows []HistorialEmpeno) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(historialHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range rows {
		valor, estado := "", ""
		if row.ValorPrestamo != nil {
			valor = strconv.FormatFloat(*row.ValorPrestamo, 'f', -1, 64)
		}
		if row.EstadoPrestamo != nil {
			estado = *row.EstadoPrestamo
		}
		record := []string{row.NombreCliente, row.IdentificacionCliente, valor, estado, row.ArticulosResumen}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row %d: %w", row.IDEmpeno, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
