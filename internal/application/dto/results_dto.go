package dto

import "github.com/shopspring/decimal"

// CandidateResultResponse fila del escrutinio de una elección. Share es el
// porcentaje del total de votos, con dos decimales.
type CandidateResultResponse struct {
	CandidateID   string          `json:"candidate_id"`
	CandidateName string          `json:"candidate_name"`
	Party         string          `json:"party"`
	TotalVotes    int             `json:"total_votes"`
	Share         decimal.Decimal `json:"share"`
}

// ElectionRef referencia mínima a una elección en las respuestas de
// resultados.
type ElectionRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ElectionResultsResponse escrutinio de una elección: solo candidatos con al
// menos un voto, ordenados descendente por conteo.
type ElectionResultsResponse struct {
	Election   ElectionRef               `json:"election"`
	TotalVotes int                       `json:"total_votes"`
	Results    []CandidateResultResponse `json:"results"`
}

// AllResultsElection una elección con todos sus candidatos y conteos (aquí
// sí aparecen los ceros: es la vista de administración).
type AllResultsElection struct {
	ElectionResponse
	Results []CandidateResultResponse `json:"results"`
}

// VotesByElectionResponse votos emitidos en una elección (monitoreo).
type VotesByElectionResponse struct {
	ElectionID    string `json:"election_id"`
	ElectionTitle string `json:"election_title"`
	Votes         int    `json:"votes"`
}

// VotedElectionResponse elección en la que un usuario votó. ElectionID vacío
// significa que la elección fue borrada después del voto.
type VotedElectionResponse struct {
	ElectionID    string `json:"election_id,omitempty"`
	ElectionTitle string `json:"election_title"`
}

// UserActivityResponse usuario con su actividad de voto para el panel.
type UserActivityResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Email          string                  `json:"email"`
	Role           string                  `json:"role"`
	HasVoted       bool                    `json:"has_voted"`
	VotedElections []VotedElectionResponse `json:"voted_elections"`
}

// MonitorResponse reporte de actividad del sistema completo.
type MonitorResponse struct {
	TotalUsers      int                       `json:"total_users"`
	TotalElections  int                       `json:"total_elections"`
	TotalVotes      int                       `json:"total_votes"`
	VotesByElection []VotesByElectionResponse `json:"votes_by_election"`
	Users           []UserActivityResponse    `json:"users"`
}
