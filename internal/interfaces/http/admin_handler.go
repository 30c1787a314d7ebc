package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/election-api/internal/application/dto"
	"github.com/jhoicas/election-api/internal/application/results"
	"github.com/jhoicas/election-api/internal/application/usecase"
)

// AdminHandler maneja la administración de usuarios y los reportes del
// panel (monitoreo, resultados globales y su versión PDF).
type AdminHandler struct {
	uc      *usecase.AdminUseCase
	results *results.ResultsUseCase
}

// NewAdminHandler construye el handler de administración.
func NewAdminHandler(uc *usecase.AdminUseCase, results *results.ResultsUseCase) *AdminHandler {
	return &AdminHandler{uc: uc, results: results}
}

// ListUsers godoc
// @Summary      Listar todos los usuarios
// @Tags         admin
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/admin [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListUsers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GenerateAccessCodes godoc
// @Summary      Generar códigos de acceso para votantes
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateAccessCodesRequest  true  "voter_ids"
// @Success      200   {object}  dto.GenerateAccessCodesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/generate-access-codes [post]
func (h *AdminHandler) GenerateAccessCodes(c *fiber.Ctx) error {
	var in dto.GenerateAccessCodesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.VoterIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "voter_ids es requerido"})
	}
	out, err := h.uc.GenerateAccessCodes(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateVoter godoc
// @Summary      Editar un votante
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del votante"
// @Param        body  body  dto.UpdateVoterRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/voter/{id} [put]
func (h *AdminHandler) UpdateVoter(c *fiber.Ctx) error {
	var in dto.UpdateVoterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateVoter(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteVoter godoc
// @Summary      Eliminar un votante
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "ID del votante"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/voter/{id} [delete]
func (h *AdminHandler) DeleteVoter(c *fiber.Ctx) error {
	if err := h.uc.DeleteVoter(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Votante eliminado"})
}

// Monitor godoc
// @Summary      Actividad del sistema: totales, votos por elección y padrón
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.MonitorResponse
// @Router       /api/admin/monitor [get]
func (h *AdminHandler) Monitor(c *fiber.Ctx) error {
	out, err := h.results.Monitor(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AllResults godoc
// @Summary      Resultados de todas las elecciones (incluye conteos en cero)
// @Tags         admin
// @Produce      json
// @Success      200  {array}  dto.AllResultsElection
// @Router       /api/admin/results [get]
func (h *AdminHandler) AllResults(c *fiber.Ctx) error {
	out, err := h.results.AllResults(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ResultsPDF godoc
// @Summary      Reporte de resultados en PDF
// @Tags         admin
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/admin/results/pdf [get]
func (h *AdminHandler) ResultsPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.results.ResultsPDF(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	filename := fmt.Sprintf("resultados-%s.pdf", time.Now().Format("20060102-150405"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
