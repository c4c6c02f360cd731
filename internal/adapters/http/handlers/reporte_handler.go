package handlers

import (
	"prenderia/internal/core/services"
	"prenderia/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ReporteHandler handles report endpoints
type ReporteHandler struct {
	reporteService *services.ReporteService
}

// NewReporteHandler creates a new report handler
func NewReporteHandler(reporteService *services.ReporteService) *ReporteHandler {
	return &ReporteHandler{reporteService: reporteService}
}

// StatsResumen returns the summary figures
// @Summary Summary statistics
// @Tags Reportes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.StatsResumen
// @Router /stats-resumen [get]
func (h *ReporteHandler) StatsResumen(c *fiber.Ctx) error {
	data, err := h.reporteService.GetStatsResumen(c.Context())
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, data)
}

// InteresesMensuales returns interest collected per month
// @Summary Monthly interest
// @Tags Reportes
// @Produce json
// @Security BearerAuth
// @Param anio query int false "Year"
// @Success 200 {array} services.InteresMensual
// @Router /intereses-mensuales [get]
func (h *ReporteHandler) InteresesMensuales(c *fiber.Ctx) error {
	data, err := h.reporteService.GetInteresesMensuales(c.Context(), queryInt(c, "anio"))
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, data)
}

// EmpenosPorTipo returns the artículo count per tipo
// @Summary Artículos per tipo
// @Tags Reportes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} services.EmpenosPorTipo
// @Router /empenos-por-tipo [get]
func (h *ReporteHandler) EmpenosPorTipo(c *fiber.Ctx) error {
	data, err := h.reporteService.GetEmpenosPorTipo(c.Context())
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, data)
}

// HistorialEmpenos returns the pawn history
// @Summary Pawn history
// @Tags Reportes
// @Produce json
// @Security BearerAuth
// @Param usuario_id query int false "Usuario ID"
// @Param mes query int false "Month 1-12"
// @Param anio query int false "Year"
// @Success 200 {array} services.HistorialEmpeno
// @Router /historial-empenos [get]
func (h *ReporteHandler) HistorialEmpenos(c *fiber.Ctx) error {
	filter := services.HistorialFilter{
		Mes:  queryInt(c, "mes"),
		Anio: queryInt(c, "anio"),
	}
	if id := queryInt(c, "usuario_id"); id > 0 {
		filter.UsuarioID = uint(id)
	}

	data, err := h.reporteService.GetHistorialEmpenos(c.Context(), filter)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, data)
}
