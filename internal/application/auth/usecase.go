package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/election-api/internal/application/dto"
	"github.com/jhoicas/election-api/internal/application/ports"
	"github.com/jhoicas/election-api/internal/domain"
	"github.com/jhoicas/election-api/internal/domain/entity"
	"github.com/jhoicas/election-api/internal/domain/repository"
	"github.com/jhoicas/election-api/pkg/logger"
)

// AuthUseCase casos de uso de identidad: registro, login con password,
// login con código de acceso y getme.
type AuthUseCase struct {
	userRepo repository.UserRepository
	voteRepo repository.VoteRepository
	mailer   ports.Mailer
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, voteRepo repository.VoteRepository, mailer ports.Mailer, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, voteRepo: voteRepo, mailer: mailer, log: log}
}

// Register crea un usuario según su rol.
//
// admin/chairman: exige password, hashea con bcrypt y aplica la regla de
// singleton (un solo admin y un solo chairman en todo el sistema). El
// chequeo en runtime da el mensaje amable; el índice parcial único en
// users(role) cierra la carrera entre registros concurrentes.
//
// voter: sin password; queda a la espera de que el admin le genere su
// código de acceso. Se avisa por correo a admin/chairman (best-effort).
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Email == "" || !entity.IsValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	now := time.Now()
	user := &entity.User{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if entity.IsSingletonRole(in.Role) {
		if in.Password == "" {
			return nil, domain.ErrInvalidInput
		}
		taken, err := uc.userRepo.RoleExists(in.Role)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrRoleAlreadyTaken
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	if user.Role == entity.RoleVoter {
		uc.notifyAdmins(user)
	}

	return toUserResponse(user, false), nil
}

// Login verifica email/password para admin/chairman. Los votantes deben usar
// el código de acceso y reciben ErrForbidden.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !entity.IsSingletonRole(user.Role) {
		return nil, domain.ErrForbidden // los votantes entran con código
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return toUserResponse(user, false), nil
}

// VoterLogin autentica un votante por código de acceso (match exacto). El
// código sigue siendo válido para logins posteriores.
func (uc *AuthUseCase) VoterLogin(in dto.VoterLoginRequest) (*dto.UserResponse, error) {
	if in.AccessCode == "" {
		return nil, domain.ErrInvalidInput
	}
	voter, err := uc.userRepo.GetByAccessCode(in.AccessCode)
	if err != nil {
		return nil, err
	}
	if voter == nil || voter.Role != entity.RoleVoter {
		return nil, domain.ErrUserNotFound
	}
	hasVoted, err := uc.voteRepo.HasVotedAny(voter.ID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(voter, hasVoted), nil
}

// GetMe devuelve la identidad del usuario de la sesión.
func (uc *AuthUseCase) GetMe(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	hasVoted := false
	if user.Role == entity.RoleVoter {
		if hasVoted, err = uc.voteRepo.HasVotedAny(user.ID); err != nil {
			return nil, err
		}
	}
	return toUserResponse(user, hasVoted), nil
}

func (uc *AuthUseCase) notifyAdmins(voter *entity.User) {
	admins, err := uc.userRepo.ListByRoles(entity.RoleAdmin, entity.RoleChairman)
	if err != nil {
		uc.log.Warn().Err(err).Msg("no se pudieron listar admins para notificar registro")
		return
	}
	emails := make([]string, 0, len(admins))
	for _, a := range admins {
		if a.Email != "" {
			emails = append(emails, a.Email)
		}
	}
	if len(emails) == 0 {
		return
	}
	if err := uc.mailer.SendVoterRegisteredNotice(emails, voter.Name, voter.Email); err != nil {
		// Best-effort: se loguea y la operación principal sigue adelante.
		uc.log.Warn().Err(err).Str("voter", voter.ID).Msg("fallo el aviso de registro por correo")
	}
}

func toUserResponse(u *entity.User, hasVoted bool) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		AccessCode: u.AccessCode,
		HasVoted:   hasVoted,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
