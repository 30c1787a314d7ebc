package dto

import "time"

// CastVoteRequest entrada para emitir un voto. El votante sale del token.
type CastVoteRequest struct {
	CandidateID string `json:"candidate_id" validate:"required,uuid"`
	ElectionID  string `json:"election_id" validate:"required,uuid"`
}

// VoteResponse salida del voto recién emitido.
type VoteResponse struct {
	ID          string    `json:"id"`
	VoterID     string    `json:"voter_id"`
	CandidateID string    `json:"candidate_id"`
	ElectionID  string    `json:"election_id"`
	CastAt      time.Time `json:"cast_at"`
}

// CastVoteResponse confirmación de voto.
type CastVoteResponse struct {
	Message string       `json:"message"`
	Vote    VoteResponse `json:"vote"`
}

// MyVoteResponse entrada del listado "mis votos" con metadatos resueltos.
type MyVoteResponse struct {
	ID                  string    `json:"id"`
	CandidateID         string    `json:"candidate_id"`
	CandidateName       string    `json:"candidate_name"`
	CandidateParty      string    `json:"candidate_party"`
	ElectionID          string    `json:"election_id"`
	ElectionTitle       string    `json:"election_title"`
	ElectionDescription string    `json:"election_description"`
	CastAt              time.Time `json:"cast_at"`
}
