package repository

import "github.com/jhoicas/election-api/internal/domain/entity"

// CandidateWithElection es un candidato con el título de su elección resuelto
// (puede quedar vacío si la elección fue borrada: referencia débil).
type CandidateWithElection struct {
	entity.Candidate
	ElectionTitle string
}

// CandidateRepository define el puerto de persistencia para Candidate.
// GetByID devuelve (nil, nil) cuando no hay fila.
type CandidateRepository interface {
	// Create persiste un candidato. Devuelve domain.ErrDuplicateParty si el
	// partido ya tiene candidato en esa elección.
	Create(candidate *entity.Candidate) error
	GetByID(id string) (*entity.Candidate, error)
	// Update aplica los cambios; mismas reglas de unicidad que Create.
	Update(candidate *entity.Candidate) error
	Delete(id string) error
	List() ([]*CandidateWithElection, error)
	ListByElection(electionID string) ([]*CandidateWithElection, error)
	// ExistsByElectionAndParty chequea el duplicado de partido (comparación
	// exacta). excludeID descarta al propio candidato en updates.
	ExistsByElectionAndParty(electionID, party, excludeID string) (bool, error)
}
