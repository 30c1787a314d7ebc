package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/election-api/internal/application/dto"
	"github.com/jhoicas/election-api/internal/domain"
	"github.com/jhoicas/election-api/internal/domain/entity"
	"github.com/jhoicas/election-api/internal/domain/repository"
)

// CandidateUseCase altas, ediciones y bajas de candidatos, con las reglas de
// ventana electoral: crear y editar solo antes del start_time; borrar
// siempre, incluso con la elección terminada (asimetría deliberada del
// sistema original).
type CandidateUseCase struct {
	candidateRepo repository.CandidateRepository
	electionRepo  repository.ElectionRepository
	now           func() time.Time
}

// NewCandidateUseCase construye el caso de uso.
func NewCandidateUseCase(candidateRepo repository.CandidateRepository, electionRepo repository.ElectionRepository) *CandidateUseCase {
	return &CandidateUseCase{candidateRepo: candidateRepo, electionRepo: electionRepo, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *CandidateUseCase) WithClock(now func() time.Time) *CandidateUseCase {
	uc.now = now
	return uc
}

// Create registra un candidato en una elección que no haya comenzado. El par
// (elección, partido) debe ser único; el índice de la tabla es el respaldo
// del chequeo.
func (uc *CandidateUseCase) Create(in dto.CreateCandidateRequest) (*dto.CandidateResponse, error) {
	if in.Name == "" || in.Party == "" || in.ElectionID == "" {
		return nil, domain.ErrInvalidInput
	}
	election, err := uc.getElection(in.ElectionID)
	if err != nil {
		return nil, err
	}
	if err := uc.checkWindow(election); err != nil {
		return nil, err
	}
	if err := uc.checkParty(in.ElectionID, in.Party, ""); err != nil {
		return nil, err
	}

	now := uc.now()
	c := &entity.Candidate{
		ID:         uuid.New().String(),
		Name:       in.Name,
		Party:      in.Party,
		Photo:      in.Photo,
		ElectionID: in.ElectionID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.candidateRepo.Create(c); err != nil {
		return nil, err
	}
	return toCandidateResponsePtr(c, election.Title), nil
}

// Update edita un candidato mientras su elección no haya comenzado. Si se lo
// mueve a otra elección, la nueva tampoco puede haber comenzado y el partido
// se re-chequea allí.
func (uc *CandidateUseCase) Update(id string, in dto.UpdateCandidateRequest) (*dto.CandidateResponse, error) {
	c, err := uc.getCandidate(id)
	if err != nil {
		return nil, err
	}

	current, err := uc.getElection(c.ElectionID)
	if err != nil {
		return nil, err
	}
	if current.HasStarted(uc.now()) {
		return nil, domain.ErrElectionStarted
	}

	targetElection := current
	if in.ElectionID != "" && in.ElectionID != c.ElectionID {
		targetElection, err = uc.getElection(in.ElectionID)
		if err != nil {
			return nil, err
		}
		if targetElection.HasStarted(uc.now()) {
			return nil, domain.ErrElectionStarted
		}
		c.ElectionID = in.ElectionID
	}

	if in.Name != "" {
		c.Name = in.Name
	}
	if in.Party != "" {
		c.Party = in.Party
	}
	if in.Photo != "" {
		c.Photo = in.Photo
	}
	if err := uc.checkParty(c.ElectionID, c.Party, c.ID); err != nil {
		return nil, err
	}

	c.UpdatedAt = uc.now()
	if err := uc.candidateRepo.Update(c); err != nil {
		return nil, err
	}
	return toCandidateResponsePtr(c, targetElection.Title), nil
}

// Delete borra un candidato sin mirar la ventana: se permite incluso después
// de terminada la elección.
func (uc *CandidateUseCase) Delete(id string) error {
	if _, err := uc.getCandidate(id); err != nil {
		return err
	}
	return uc.candidateRepo.Delete(id)
}

// GetByID devuelve un candidato con el título de su elección (vacío si la
// elección fue borrada).
func (uc *CandidateUseCase) GetByID(id string) (*dto.CandidateResponse, error) {
	c, err := uc.getCandidate(id)
	if err != nil {
		return nil, err
	}
	title := ""
	if e, err := uc.electionRepo.GetByID(c.ElectionID); err == nil && e != nil {
		title = e.Title
	}
	return toCandidateResponsePtr(c, title), nil
}

// List devuelve todos los candidatos.
func (uc *CandidateUseCase) List() ([]dto.CandidateResponse, error) {
	list, err := uc.candidateRepo.List()
	if err != nil {
		return nil, err
	}
	return toCandidateResponses(list), nil
}

// ListByElection devuelve los candidatos de una elección.
func (uc *CandidateUseCase) ListByElection(electionID string) ([]dto.CandidateResponse, error) {
	if uuid.Validate(electionID) != nil {
		return nil, domain.ErrInvalidID
	}
	list, err := uc.candidateRepo.ListByElection(electionID)
	if err != nil {
		return nil, err
	}
	return toCandidateResponses(list), nil
}

// checkWindow rechaza mutaciones si la elección ya comenzó o ya terminó.
func (uc *CandidateUseCase) checkWindow(e *entity.Election) error {
	now := uc.now()
	if e.HasEnded(now) {
		return domain.ErrElectionEnded
	}
	if e.HasStarted(now) {
		return domain.ErrElectionStarted
	}
	return nil
}

func (uc *CandidateUseCase) checkParty(electionID, party, excludeID string) error {
	exists, err := uc.candidateRepo.ExistsByElectionAndParty(electionID, party, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicateParty
	}
	return nil
}

func (uc *CandidateUseCase) getCandidate(id string) (*entity.Candidate, error) {
	if uuid.Validate(id) != nil {
		return nil, domain.ErrInvalidID
	}
	c, err := uc.candidateRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrCandidateNotFound
	}
	return c, nil
}

func (uc *CandidateUseCase) getElection(id string) (*entity.Election, error) {
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

func toCandidateResponse(c *repository.CandidateWithElection) dto.CandidateResponse {
	return dto.CandidateResponse{
		ID:            c.ID,
		Name:          c.Name,
		Party:         c.Party,
		Photo:         c.Photo,
		ElectionID:    c.ElectionID,
		ElectionTitle: c.ElectionTitle,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toCandidateResponsePtr(c *entity.Candidate, electionTitle string) *dto.CandidateResponse {
	return &dto.CandidateResponse{
		ID:            c.ID,
		Name:          c.Name,
		Party:         c.Party,
		Photo:         c.Photo,
		ElectionID:    c.ElectionID,
		ElectionTitle: electionTitle,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toCandidateResponses(list []*repository.CandidateWithElection) []dto.CandidateResponse {
	out := make([]dto.CandidateResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCandidateResponse(c))
	}
	return out
}
