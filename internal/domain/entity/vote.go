package entity

import "time"

// Vote es una entrada del registro de votos: (votante, candidato, elección)
// con su marca de tiempo. Es append-only: nunca se actualiza ni se borra.
// Todas las referencias son débiles; el registro sobrevive al borrado del
// candidato o de la elección.
type Vote struct {
	ID          string
	VoterID     string
	CandidateID string
	ElectionID  string
	CastAt      time.Time
}
