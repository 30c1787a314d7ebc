package usecase

import (
	"time"

	"github.com/jhoicas/election-api/internal/application/dto"
	"github.com/jhoicas/election-api/internal/application/ports"
	"github.com/jhoicas/election-api/internal/domain"
	"github.com/jhoicas/election-api/internal/domain/entity"
	"github.com/jhoicas/election-api/internal/domain/repository"
	"github.com/jhoicas/election-api/pkg/accesscode"
	"github.com/jhoicas/election-api/pkg/logger"
)

// Reintentos ante colisión del código generado (índice único en access_code).
const maxCodeAttempts = 5

// AdminUseCase gestión de usuarios: listado, edición y borrado de votantes,
// y generación de códigos de acceso con envío por correo.
type AdminUseCase struct {
	userRepo repository.UserRepository
	mailer   ports.Mailer
	log      *logger.Logger
}

// NewAdminUseCase construye el caso de uso de administración.
func NewAdminUseCase(userRepo repository.UserRepository, mailer ports.Mailer, log *logger.Logger) *AdminUseCase {
	return &AdminUseCase{userRepo: userRepo, mailer: mailer, log: log}
}

// ListUsers devuelve todos los usuarios con su estado de voto derivado del
// registro de votos.
func (uc *AdminUseCase) ListUsers() ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			ID:         u.ID,
			Name:       u.Name,
			Email:      u.Email,
			Role:       u.Role,
			AccessCode: u.AccessCode,
			HasVoted:   u.HasVoted,
			CreatedAt:  u.CreatedAt,
			UpdatedAt:  u.UpdatedAt,
		})
	}
	return out, nil
}

// UpdateVoter edita nombre y/o email de un votante.
func (uc *AdminUseCase) UpdateVoter(id string, in dto.UpdateVoterRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Role != entity.RoleVoter {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		AccessCode: user.AccessCode,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}, nil
}

// DeleteVoter elimina un votante. Sus votos quedan en el registro (referencias
// débiles); el monitoreo los tolera.
func (uc *AdminUseCase) DeleteVoter(id string) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil || user.Role != entity.RoleVoter {
		return domain.ErrUserNotFound
	}
	return uc.userRepo.Delete(id)
}

// GenerateAccessCodes asigna un código nuevo a cada votante indicado y se lo
// envía por correo. El envío es best-effort: un fallo de correo no revierte
// la asignación (se loguea y se continúa). Los IDs que no correspondan a un
// votante se ignoran, igual que hacía la versión original.
func (uc *AdminUseCase) GenerateAccessCodes(in dto.GenerateAccessCodesRequest) (*dto.GenerateAccessCodesResponse, error) {
	if len(in.VoterIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}

	voters := make([]dto.UserResponse, 0, len(in.VoterIDs))
	for _, id := range in.VoterIDs {
		user, err := uc.userRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if user == nil || user.Role != entity.RoleVoter {
			continue
		}

		code, err := uc.assignCode(user.ID)
		if err != nil {
			return nil, err
		}
		user.AccessCode = code

		if user.Email != "" {
			if err := uc.mailer.SendAccessCode(user.Name, user.Email, code); err != nil {
				uc.log.Warn().Err(err).Str("voter", user.ID).Msg("fallo el envío del código de acceso")
			}
		}

		voters = append(voters, dto.UserResponse{
			ID:         user.ID,
			Name:       user.Name,
			Email:      user.Email,
			Role:       user.Role,
			AccessCode: code,
			CreatedAt:  user.CreatedAt,
			UpdatedAt:  user.UpdatedAt,
		})
	}

	return &dto.GenerateAccessCodesResponse{
		Message: "Códigos de acceso generados y enviados",
		Voters:  voters,
	}, nil
}

// assignCode genera y persiste un código, reintentando si colisiona con el
// índice único de access_code.
func (uc *AdminUseCase) assignCode(voterID string) (string, error) {
	var lastErr error
	for i := 0; i < maxCodeAttempts; i++ {
		code, err := accesscode.Generate()
		if err != nil {
			return "", err
		}
		err = uc.userRepo.SetAccessCode(voterID, code)
		if err == nil {
			return code, nil
		}
		if err != domain.ErrAccessCodeTaken {
			return "", err
		}
		lastErr = err
	}
	return "", lastErr
}
