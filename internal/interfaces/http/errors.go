package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/election-api/internal/application/dto"
	"github.com/jhoicas/election-api/internal/domain"
)

// statusFor mapea cada error de dominio a su código HTTP y código de error
// de la API. Todos los handlers pasan por acá para que el contrato de
// errores sea uniforme.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrInvalidID):
		return fiber.StatusBadRequest, "INVALID_ID"
	case errors.Is(err, domain.ErrElectionNotActive):
		return fiber.StatusBadRequest, "ELECTION_NOT_ACTIVE"
	case errors.Is(err, domain.ErrElectionStarted):
		return fiber.StatusBadRequest, "ELECTION_STARTED"
	case errors.Is(err, domain.ErrElectionEnded):
		return fiber.StatusBadRequest, "ELECTION_ENDED"
	case errors.Is(err, domain.ErrDuplicateParty):
		return fiber.StatusBadRequest, "DUPLICATE_PARTY"
	case errors.Is(err, domain.ErrAlreadyVoted):
		return fiber.StatusBadRequest, "ALREADY_VOTED"
	case errors.Is(err, domain.ErrInvalidCandidate):
		return fiber.StatusBadRequest, "INVALID_CANDIDATE"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrElectionNotFound),
		errors.Is(err, domain.ErrCandidateNotFound),
		errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, "EMAIL_EXISTS"
	case errors.Is(err, domain.ErrRoleAlreadyTaken):
		return fiber.StatusConflict, "ROLE_TAKEN"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// respondError serializa un error de dominio como dto.ErrorResponse.
func respondError(c *fiber.Ctx, err error) error {
	status, code := statusFor(err)
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
