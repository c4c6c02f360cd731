package handlers

import (
	"strings"

	"prenderia/internal/core/services"
	"prenderia/internal/pkg/pagination"
	"prenderia/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PrestamoHandler handles préstamo and interés endpoints
type PrestamoHandler struct {
	prestamoService *services.PrestamoService
}

// NewPrestamoHandler creates a new préstamo handler
func NewPrestamoHandler(prestamoService *services.PrestamoService) *PrestamoHandler {
	return &PrestamoHandler{prestamoService: prestamoService}
}

// CreatePrestamoRequest represents create préstamo request.
// FechaPrestamo accepts YYYY-MM-DD or RFC 3339.
type CreatePrestamoRequest struct {
	EmpenoID      uint    `json:"empeno_id"`
	Valor         float64 `json:"valor"`
	Estado        string  `json:"estado"`
	FechaPrestamo string  `json:"fecha_prestamo"`
}

// EstadoRequest represents a status change
type EstadoRequest struct {
	Estado string `json:"estado"`
}

// List lists préstamos
// @Summary List préstamos
// @Tags Prestamos
// @Produce json
// @Security BearerAuth
// @Param estado query string false "ACTIVO, INACTIVO or PAGADO"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {array} models.Prestamo
// @Router /prestamos [get]
func (h *PrestamoHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	prestamos, total, err := h.prestamoService.List(c.Context(), strings.ToUpper(c.Query("estado")), params.Offset, params.Limit)
	if err != nil {
		return serviceError(c, err)
	}

	pagination.SetHeaders(c, params, total)
	return response.Success(c, prestamos)
}

// ListMine lists the préstamos of the calling usuario
// @Summary My préstamos
// @Tags Prestamos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Prestamo
// @Router /prestamos/mios [get]
func (h *PrestamoHandler) ListMine(c *fiber.Ctx) error {
	prestamos, err := h.prestamoService.ListMine(c.Context(), actorFrom(c).ID)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, prestamos)
}

// Get gets a préstamo
// @Summary Get préstamo
// @Tags Prestamos
// @Produce json
// @Security BearerAuth
// @Param id path int true "Préstamo ID"
// @Success 200 {object} models.Prestamo
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /prestamos/{id} [get]
func (h *PrestamoHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}

	prestamo, err := h.prestamoService.Get(c.Context(), actorFrom(c), id)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, prestamo)
}

// Create creates a préstamo and its monthly installments
// @Summary Create préstamo
// @Tags Prestamos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreatePrestamoRequest true "Préstamo"
// @Success 201 {object} models.Prestamo
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /prestamos [post]
func (h *PrestamoHandler) Create(c *fiber.Ctx) error {
	var req CreatePrestamoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la solicitud inválido")
	}

	fecha, err := parseDate(req.FechaPrestamo)
	if err != nil {
		return response.BadRequest(c, "Fecha de préstamo inválida")
	}

	prestamo, err := h.prestamoService.Create(c.Context(), &services.CreatePrestamoInput{
		EmpenoID:      req.EmpenoID,
		Valor:         req.Valor,
		Estado:        strings.ToUpper(req.Estado),
		FechaPrestamo: fecha,
	})
	if err != nil {
		return serviceError(c, err)
	}
	return response.Created(c, prestamo)
}

// UpdateEstado changes the estado of a préstamo
// @Summary Update préstamo estado
// @Tags Prestamos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Préstamo ID"
// @Param body body EstadoRequest true "Estado"
// @Success 200 {object} models.Prestamo
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /prestamos/{id}/estado [put]
func (h *PrestamoHandler) UpdateEstado(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}

	var req EstadoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la solicitud inválido")
	}

	prestamo, err := h.prestamoService.UpdateEstado(c.Context(), id, strings.ToUpper(req.Estado))
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, prestamo)
}

// ListIntereses lists the installments of a préstamo
// @Summary List intereses of a préstamo
// @Tags Intereses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Préstamo ID"
// @Success 200 {array} models.Interes
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /intereses/prestamo/{id} [get]
func (h *PrestamoHandler) ListIntereses(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}

	intereses, err := h.prestamoService.ListIntereses(c.Context(), actorFrom(c), id)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, intereses)
}

// UpdateInteresEstado changes the estado of an installment
// @Summary Update interés estado
// @Tags Intereses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Interés ID"
// @Param body body EstadoRequest true "Estado"
// @Success 200 {object} models.Interes
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /intereses/{id}/estado [put]
func (h *PrestamoHandler) UpdateInteresEstado(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}

	var req EstadoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la solicitud inválido")
	}

	interes, err := h.prestamoService.UpdateInteresEstado(c.Context(), id, strings.ToUpper(req.Estado))
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, interes)
}
