package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/election-api/internal/application/dto"
	"github.com/jhoicas/election-api/internal/application/usecase"
)

// ElectionHandler maneja el ciclo de vida de las elecciones.
type ElectionHandler struct {
	uc *usecase.ElectionUseCase
}

// NewElectionHandler construye el handler de elecciones.
func NewElectionHandler(uc *usecase.ElectionUseCase) *ElectionHandler {
	return &ElectionHandler{uc: uc}
}

// Create godoc
// @Summary      Crear elección (nace inactiva)
// @Tags         elections
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateElectionRequest  true  "title, description"
// @Success      201   {object}  dto.ElectionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/elections [post]
func (h *ElectionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateElectionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title es requerido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar elección
// @Tags         elections
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la elección"
// @Param        body  body  dto.UpdateElectionRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ElectionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/elections/{id} [put]
func (h *ElectionHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateElectionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar elección
// @Tags         elections
// @Produce      json
// @Param        id  path  string  true  "ID de la elección"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/elections/{id} [delete]
func (h *ElectionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Elección eliminada"})
}

// GetByID godoc
// @Summary      Obtener elección por ID (con candidatos)
// @Tags         elections
// @Produce      json
// @Param        id  path  string  true  "ID de la elección"
// @Success      200  {object}  dto.ElectionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/elections/{id} [get]
func (h *ElectionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar todas las elecciones (con candidatos)
// @Tags         elections
// @Produce      json
// @Success      200  {array}  dto.ElectionResponse
// @Router       /api/elections [get]
func (h *ElectionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListActive godoc
// @Summary      Listar elecciones activas y dentro de su ventana de tiempo
// @Tags         elections
// @Produce      json
// @Success      200  {array}  dto.ElectionResponse
// @Router       /api/elections/active [get]
func (h *ElectionHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.ListActive()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Activate godoc
// @Summary      Activar elección (idempotente; preserva start_time previo)
// @Tags         elections
// @Produce      json
// @Param        id  path  string  true  "ID de la elección"
// @Success      200  {object}  dto.ElectionStatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/elections/{id}/activate [put]
func (h *ElectionHandler) Activate(c *fiber.Ctx) error {
	out, err := h.uc.Activate(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ElectionStatusResponse{Message: "Elección activada", Election: *out})
}

// End godoc
// @Summary      Finalizar elección (idempotente; preserva end_time previo)
// @Tags         elections
// @Produce      json
// @Param        id  path  string  true  "ID de la elección"
// @Success      200  {object}  dto.ElectionStatusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/elections/{id}/end [put]
func (h *ElectionHandler) End(c *fiber.Ctx) error {
	out, err := h.uc.End(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ElectionStatusResponse{Message: "Elección finalizada", Election: *out})
}
