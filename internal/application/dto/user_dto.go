package dto

import "time"

// UserResponse salida de un usuario (el hash de password nunca se serializa).
// AccessCode solo viaja en vistas de administración y en el getme del propio
// votante; HasVoted se deriva del registro de votos.
type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	AccessCode string    `json:"access_code,omitempty"`
	HasVoted   bool      `json:"has_voted"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UpdateVoterRequest entrada para que el admin edite un votante.
type UpdateVoterRequest struct {
	Name  string `json:"name" validate:"omitempty,min=1,max=200"`
	Email string `json:"email" validate:"omitempty,email"`
}

// GenerateAccessCodesRequest entrada para asignar códigos a votantes.
type GenerateAccessCodesRequest struct {
	VoterIDs []string `json:"voter_ids" validate:"required,min=1,dive,uuid"`
}

// GenerateAccessCodesResponse votantes actualizados tras generar códigos.
type GenerateAccessCodesResponse struct {
	Message string         `json:"message"`
	Voters  []UserResponse `json:"voters"`
}
