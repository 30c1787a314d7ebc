package dto

import "time"

// CreateCandidateRequest entrada para registrar un candidato.
type CreateCandidateRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=200"`
	Party      string `json:"party" validate:"required,min=1,max=200"`
	Photo      string `json:"photo" validate:"omitempty,max=500"`
	ElectionID string `json:"election_id" validate:"required,uuid"`
}

// UpdateCandidateRequest entrada para editar un candidato. ElectionID no
// vacío lo mueve de elección (sujeto a las mismas reglas de ventana).
type UpdateCandidateRequest struct {
	Name       string `json:"name"`
	Party      string `json:"party"`
	Photo      string `json:"photo"`
	ElectionID string `json:"election_id"`
}

// CandidateResponse salida de un candidato. ElectionTitle puede venir vacío
// si la elección fue borrada.
type CandidateResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Party         string    `json:"party"`
	Photo         string    `json:"photo,omitempty"`
	ElectionID    string    `json:"election_id"`
	ElectionTitle string    `json:"election_title,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
