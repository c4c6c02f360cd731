package handlers

import (
	"prenderia/internal/core/services"
	"prenderia/internal/pkg/pagination"
	"prenderia/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UsuarioHandler handles usuario management and profile endpoints
type UsuarioHandler struct {
	usuarioService *services.UsuarioService
}

// NewUsuarioHandler creates a new usuario handler
func NewUsuarioHandler(usuarioService *services.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{usuarioService: usuarioService}
}

// List lists usuarios
// @Summary List usuarios
// @Tags Usuarios
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {array} models.Usuario
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /usuarios [get]
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	usuarios, total, err := h.usuarioService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return serviceError(c, err)
	}

	pagination.SetHeaders(c, params, total)
	return response.Success(c, usuarios)
}

// Create creates a usuario
// @Summary Create usuario
// @Tags Usuarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateUsuarioInput true "Usuario"
// @Success 201 {object} models.Usuario
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /usuarios [post]
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var req services.CreateUsuarioInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la solicitud inválido")
	}

	usuario, err := h.usuarioService.Create(c.Context(), &req)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Created(c, usuario)
}

// Update updates a usuario
// @Summary Update usuario
// @Tags Usuarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Usuario ID"
// @Param body body services.UpdateUsuarioInput true "Fields to change"
// @Success 200 {object} models.Usuario
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /usuarios/{id} [put]
func (h *UsuarioHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}

	var req services.UpdateUsuarioInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la solicitud inválido")
	}

	usuario, err := h.usuarioService.Update(c.Context(), id, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, usuario)
}

// Delete deletes a usuario
// @Summary Delete usuario
// @Tags Usuarios
// @Security BearerAuth
// @Param id path int true "Usuario ID"
// @Success 204
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /usuarios/{id} [delete]
func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return response.BadRequest(c, "ID inválido")
	}

	if err := h.usuarioService.Delete(c.Context(), actorFrom(c), id); err != nil {
		return serviceError(c, err)
	}
	return response.NoContent(c)
}

// GetMe returns the calling usuario
// @Summary Current usuario
// @Tags Usuarios
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Usuario
// @Failure 401 {object} response.ErrorResponse
// @Router /me [get]
func (h *UsuarioHandler) GetMe(c *fiber.Ctx) error {
	usuario, err := h.usuarioService.Get(c.Context(), actorFrom(c).ID)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, usuario)
}

// UpdateMe updates the contact data of the calling usuario
// @Summary Update current usuario
// @Tags Usuarios
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.UpdateMeInput true "Contact data"
// @Success 200 {object} models.Usuario
// @Router /me [put]
func (h *UsuarioHandler) UpdateMe(c *fiber.Ctx) error {
	var req services.UpdateMeInput
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Cuerpo de la solicitud inválido")
	}

	usuario, err := h.usuarioService.UpdateMe(c.Context(), actorFrom(c).ID, &req)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, usuario)
}
