package dto

import "time"

// CreateElectionRequest entrada para crear una elección (nace inactiva).
type CreateElectionRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

// UpdateElectionRequest entrada para editar una elección. Los campos nil no
// se tocan.
type UpdateElectionRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
}

// ElectionResponse salida de una elección, con candidatos embebidos en los
// listados.
type ElectionResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	StartTime   *time.Time          `json:"start_time"`
	EndTime     *time.Time          `json:"end_time"`
	IsActive    bool                `json:"is_active"`
	CreatedBy   string              `json:"created_by"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Candidates  []CandidateResponse `json:"candidates,omitempty"`
}

// ElectionStatusResponse salida de activate/end con mensaje y estado nuevo.
type ElectionStatusResponse struct {
	Message  string           `json:"message"`
	Election ElectionResponse `json:"election"`
}
