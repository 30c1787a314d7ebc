package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/election-api/internal/application/dto"
	"github.com/jhoicas/election-api/internal/domain"
	"github.com/jhoicas/election-api/internal/domain/entity"
	"github.com/jhoicas/election-api/internal/domain/repository"
)

// ElectionUseCase ciclo de vida de las elecciones: CRUD y transiciones
// borrador → activa → terminada.
type ElectionUseCase struct {
	electionRepo  repository.ElectionRepository
	candidateRepo repository.CandidateRepository
	now           func() time.Time
}

// NewElectionUseCase construye el caso de uso. El reloj se inyecta para que
// los tests controlen la ventana temporal.
func NewElectionUseCase(electionRepo repository.ElectionRepository, candidateRepo repository.CandidateRepository) *ElectionUseCase {
	return &ElectionUseCase{electionRepo: electionRepo, candidateRepo: candidateRepo, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *ElectionUseCase) WithClock(now func() time.Time) *ElectionUseCase {
	uc.now = now
	return uc
}

// Create crea una elección inactiva, sin ventana temporal todavía.
func (uc *ElectionUseCase) Create(createdBy string, in dto.CreateElectionRequest) (*dto.ElectionResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	e := &entity.Election{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		IsActive:    false,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.electionRepo.Create(e); err != nil {
		return nil, err
	}
	return toElectionResponse(e, nil), nil
}

// Update edita título, descripción y ventana temporal. end_time anterior a
// start_time se rechaza.
func (uc *ElectionUseCase) Update(id string, in dto.UpdateElectionRequest) (*dto.ElectionResponse, error) {
	e, err := uc.getElection(id)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		e.Title = *in.Title
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.StartTime != nil {
		e.StartTime = in.StartTime
	}
	if in.EndTime != nil {
		e.EndTime = in.EndTime
	}
	if e.StartTime != nil && e.EndTime != nil && e.EndTime.Before(*e.StartTime) {
		return nil, domain.ErrInvalidInput
	}
	e.UpdatedAt = uc.now()
	if err := uc.electionRepo.Update(e); err != nil {
		return nil, err
	}
	return toElectionResponse(e, nil), nil
}

// Delete borra la elección. Candidatos y votos que la referencien quedan
// huérfanos a propósito (referencias débiles, sin cascada).
func (uc *ElectionUseCase) Delete(id string) error {
	if _, err := uc.getElection(id); err != nil {
		return err
	}
	return uc.electionRepo.Delete(id)
}

// GetByID devuelve una elección con sus candidatos.
func (uc *ElectionUseCase) GetByID(id string) (*dto.ElectionResponse, error) {
	e, err := uc.getElection(id)
	if err != nil {
		return nil, err
	}
	candidates, err := uc.candidateRepo.ListByElection(e.ID)
	if err != nil {
		return nil, err
	}
	return toElectionResponse(e, candidates), nil
}

// List devuelve todas las elecciones con candidatos embebidos.
func (uc *ElectionUseCase) List() ([]dto.ElectionResponse, error) {
	elections, err := uc.electionRepo.List()
	if err != nil {
		return nil, err
	}
	return uc.withCandidates(elections)
}

// ListActive devuelve las elecciones abiertas para votar ahora mismo:
// activas, con start_time alcanzado y end_time nulo o futuro.
func (uc *ElectionUseCase) ListActive() ([]dto.ElectionResponse, error) {
	elections, err := uc.electionRepo.ListActive(uc.now())
	if err != nil {
		return nil, err
	}
	return uc.withCandidates(elections)
}

// Activate marca la elección activa. Si start_time no estaba fijado queda en
// now; si la elección ya estaba activa la operación es idempotente y nunca
// sobreescribe el start_time original.
func (uc *ElectionUseCase) Activate(id string) (*dto.ElectionResponse, error) {
	e, err := uc.getElection(id)
	if err != nil {
		return nil, err
	}
	e.Activate(uc.now())
	if err := uc.electionRepo.Update(e); err != nil {
		return nil, err
	}
	return toElectionResponse(e, nil), nil
}

// End desactiva la elección y fija end_time si no lo estaba.
func (uc *ElectionUseCase) End(id string) (*dto.ElectionResponse, error) {
	e, err := uc.getElection(id)
	if err != nil {
		return nil, err
	}
	e.End(uc.now())
	if err := uc.electionRepo.Update(e); err != nil {
		return nil, err
	}
	return toElectionResponse(e, nil), nil
}

func (uc *ElectionUseCase) getElection(id string) (*entity.Election, error) {
	if uuid.Validate(id) != nil {
		return nil, domain.ErrInvalidID
	}
	e, err := uc.electionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrElectionNotFound
	}
	return e, nil
}

func (uc *ElectionUseCase) withCandidates(elections []*entity.Election) ([]dto.ElectionResponse, error) {
	out := make([]dto.ElectionResponse, 0, len(elections))
	for _, e := range elections {
		candidates, err := uc.candidateRepo.ListByElection(e.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toElectionResponse(e, candidates))
	}
	return out, nil
}

func toElectionResponse(e *entity.Election, candidates []*repository.CandidateWithElection) *dto.ElectionResponse {
	resp := &dto.ElectionResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		IsActive:    e.IsActive,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	for _, c := range candidates {
		resp.Candidates = append(resp.Candidates, toCandidateResponse(c))
	}
	return resp
}
