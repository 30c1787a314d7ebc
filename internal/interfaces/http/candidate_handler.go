package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/election-api/internal/application/dto"
	"github.com/jhoicas/election-api/internal/application/usecase"
)

// CandidateHandler maneja el registro de candidatos.
type CandidateHandler struct {
	uc *usecase.CandidateUseCase
}

// NewCandidateHandler construye el handler de candidatos.
func NewCandidateHandler(uc *usecase.CandidateUseCase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar candidato (antes de que comience la elección)
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCandidateRequest  true  "name, party, election_id"
// @Success      201   {object}  dto.CandidateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/candidates [post]
func (h *CandidateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCandidateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Party == "" || in.ElectionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, party y election_id son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar candidato (mismas reglas de ventana que el alta)
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del candidato"
// @Param        body  body  dto.UpdateCandidateRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CandidateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/candidates/{id} [put]
func (h *CandidateHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCandidateRequest
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
// @Summary      Eliminar candidato (permitido en cualquier momento)
// @Tags         candidates
// @Produce      json
// @Param        id  path  string  true  "ID del candidato"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Candidato eliminado"})
}

// List godoc
// @Summary      Listar todos los candidatos
// @Tags         candidates
// @Produce      json
// @Success      200  {array}  dto.CandidateResponse
// @Router       /api/candidates [get]
func (h *CandidateHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByElection godoc
// @Summary      Listar candidatos de una elección
// @Tags         candidates
// @Produce      json
// @Param        electionId  path  string  true  "ID de la elección"
// @Success      200  {array}   dto.CandidateResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/candidates/{electionId} [get]
func (h *CandidateHandler) ListByElection(c *fiber.Ctx) error {
	out, err := h.uc.ListByElection(c.Params("electionId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
