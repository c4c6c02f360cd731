package handlers

import (
	"strings"

	"prenderia/internal/core/services"
	"prenderia/internal/pkg/pagination"
	"prenderia/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// EmpenoHandler handles empeños, artículos and tipos de artículo
type EmpenoHandler struct {
	empenoService *services.EmpenoService
}

// NewEmpenoHandler creates a new empeño handler
func NewEmpenoHandler(empenoService *services.EmpenoService) *EmpenoHandler {
	return &EmpenoHandler{empenoService: empenoService}
}

// TipoRequest represents create tipo de artículo request
type TipoRequest struct {
	Nombre string `json:"nombre"`
}

// ListEmpenos lists empeños
// @Summary List empeños
// @Tags Empenos
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {array} models.Empeno
// @Router /empenos [get]
func (h *EmpenoHandler) ListEmpenos(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	empenos, total, err := h.empenoService.ListEmpenos(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return serviceError(c, err)
	}

	pagination.SetHeaders(c, params, total)
	return response.Success(c, empenos)
}

// CreateEmpeno creates an empeño with its artículos
// @Summary Create empeño
// @Tags Empenos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.EmpenoInput true "Empeño"
// @Success 201 {object} models.Empeno
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /empenos [post]
func (h *EmpenoHandler) CreateEmpeno(c *fiber.Ctx) error {
	var req services.EmpenoInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la solicitud inválido")
	}

	empeno, err := h.empenoService.CreateEmpeno(c.Context(), &req)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Created(c, empeno)
}

// UpdateEmpeno updates an empeño
// @Summary Update empeño
// @Tags Empenos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Empeño ID"
// @Param body body services.EmpenoInput true "Empeño"
// @Success 200 {object} models.Empeno
// @Failure 404 {object} response.ErrorResponse
// @Router /empenos/{id} [put]
func (h *EmpenoHandler) UpdateEmpeno(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}

	var req services.EmpenoInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la solicitud inválido")
	}

	empeno, err := h.empenoService.UpdateEmpeno(c.Context(), id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, empeno)
}

// ListArticulos lists artículos
// @Summary List artículos
// @Tags Articulos
// @Produce json
// @Security BearerAuth
// @Param estado query string false "EMPENADO, DEVUELTO or VENDIDO"
// @Success 200 {array} models.Articulo
// @Router /articulos [get]
func (h *EmpenoHandler) ListArticulos(c *fiber.Ctx) error {
	articulos, err := h.empenoService.ListArticulos(c.Context(), strings.ToUpper(c.Query("estado")))
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, articulos)
}

// CreateArticulo adds an artículo to an empeño
// @Summary Create artículo
// @Tags Articulos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateArticuloInput true "Artículo"
// @Success 201 {object} models.Articulo
// @Router /articulos [post]
func (h *EmpenoHandler) CreateArticulo(c *fiber.Ctx) error {
	var req services.CreateArticuloInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la solicitud inválido")
	}

	articulo, err := h.empenoService.CreateArticulo(c.Context(), &req)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Created(c, articulo)
}

// ListTipos lists tipos de artículo
// @Summary List tipos de artículo
// @Tags Articulos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.TipoArticulo
// @Router /tipos-articulos [get]
func (h *EmpenoHandler) ListTipos(c *fiber.Ctx) error {
	tipos, err := h.empenoService.ListTipos(c.Context())
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, tipos)
}

// CreateTipo creates a tipo de artículo
// @Summary Create tipo de artículo
// @Tags Articulos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body TipoRequest true "Tipo"
// @Success 201 {object} models.TipoArticulo
// @Failure 409 {object} response.ErrorResponse
// @Router /tipos-articulos [post]
func (h *EmpenoHandler) CreateTipo(c *fiber.Ctx) error {
	var req TipoRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la solicitud inválido")
	}

	tipo, err := h.empenoService.CreateTipo(c.Context(), req.Nombre)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Created(c, tipo)
}
