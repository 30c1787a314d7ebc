package entity

import "time"

// Candidate representa un candidato dentro de una elección. El par
// (election_id, party) es único: un partido presenta a lo sumo un candidato
// por elección (comparación exacta, sensible a mayúsculas).
type Candidate struct {
	ID         string
	Name       string
	Party      string
	Photo      string // URL o referencia a la foto, opcional
	ElectionID string // referencia débil a la elección
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
