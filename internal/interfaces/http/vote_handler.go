package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/election-api/internal/application/dto"
	"github.com/jhoicas/election-api/internal/application/results"
	"github.com/jhoicas/election-api/internal/application/voting"
)

// VoteHandler maneja la emisión de votos y las consultas del votante.
type VoteHandler struct {
	uc      *voting.VotingUseCase
	results *results.ResultsUseCase
}

// NewVoteHandler construye el handler de votación.
func NewVoteHandler(uc *voting.VotingUseCase, results *results.ResultsUseCase) *VoteHandler {
	return &VoteHandler{uc: uc, results: results}
}

// CastVote godoc
// @Summary      Emitir un voto
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CastVoteRequest  true  "candidate_id, election_id"
// @Success      201   {object}  dto.CastVoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/votes [post]
func (h *VoteHandler) CastVote(c *fiber.Ctx) error {
	var in dto.CastVoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CastVote(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetMyVotes godoc
// @Summary      Listar mis votos con candidato y elección resueltos
// @Tags         votes
// @Produce      json
// @Success      200  {array}  dto.MyVoteResponse
// @Router       /api/votes/my [get]
func (h *VoteHandler) GetMyVotes(c *fiber.Ctx) error {
	out, err := h.uc.GetMyVotes(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Results godoc
// @Summary      Escrutinio de una elección (solo candidatos con votos)
// @Tags         votes
// @Produce      json
// @Param        electionId  query  string  true  "ID de la elección"
// @Success      200  {object}  dto.ElectionResultsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/votes/results [get]
func (h *VoteHandler) Results(c *fiber.Ctx) error {
	out, err := h.results.ResultsFor(c.Context(), c.Query("electionId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
