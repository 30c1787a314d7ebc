package repository

import "context"

// CandidateTally conteo de votos de un candidato dentro de una elección.
type CandidateTally struct {
	CandidateID   string
	CandidateName string
	Party         string
	TotalVotes    int
}

// ElectionVoteCount total de votos emitidos en una elección.
type ElectionVoteCount struct {
	ElectionID    string
	ElectionTitle string
	Votes         int
}

// VotedElection referencia a una elección en la que un usuario votó.
// ElectionID queda vacío si la elección fue borrada después del voto.
type VotedElection struct {
	ElectionID    string
	ElectionTitle string
}

// UserActivity vista de un usuario para el panel de monitoreo.
type UserActivity struct {
	UserID         string
	Name           string
	Email          string
	Role           string
	HasVoted       bool
	VotedElections []VotedElection
}

// ResultsRepository consultas de solo lectura sobre el registro de votos.
// Todas las operaciones reciben context: son agregaciones potencialmente
// costosas y el caller controla el timeout.
type ResultsRepository interface {
	// TallyForElection agrupa los votos por candidato, resuelve sus metadatos
	// y ordena descendente por conteo. Los candidatos sin votos NO aparecen
	// (solo entradas disputadas); el orden entre empatados no está definido.
	TallyForElection(ctx context.Context, electionID string) ([]CandidateTally, error)
	// TallyAllCandidates devuelve todos los candidatos de la elección con su
	// conteo, incluyendo ceros (vista de administración).
	TallyAllCandidates(ctx context.Context, electionID string) ([]CandidateTally, error)
	CountUsers(ctx context.Context) (int, error)
	CountElections(ctx context.Context) (int, error)
	VotesByElection(ctx context.Context) ([]ElectionVoteCount, error)
	UserActivity(ctx context.Context) ([]UserActivity, error)
}
