package repository

import "github.com/jhoicas/election-api/internal/domain/entity"

// VoteDetail es un voto con los metadatos del candidato y la elección
// resueltos, para el listado "mis votos" del votante.
type VoteDetail struct {
	entity.Vote
	CandidateName       string
	CandidateParty      string
	ElectionTitle       string
	ElectionDescription string
}

// VoteRepository define el puerto de persistencia del registro de votos.
// El registro es append-only: no hay Update ni Delete.
type VoteRepository interface {
	// Create inserta el voto. La restricción única (voter_id, election_id)
	// del almacenamiento se mapea a domain.ErrAlreadyVoted: cierra la
	// carrera entre el chequeo de duplicado y la inserción.
	Create(vote *entity.Vote) error
	HasVoted(voterID, electionID string) (bool, error)
	// HasVotedAny indica si el votante emitió algún voto en cualquier
	// elección (sustituye al antiguo flag has_voted almacenado).
	HasVotedAny(voterID string) (bool, error)
	// ListByVoter devuelve los votos del votante; las entradas cuyo candidato
	// ya no existe se omiten.
	ListByVoter(voterID string) ([]*VoteDetail, error)
}
