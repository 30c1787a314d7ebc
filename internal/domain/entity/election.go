package entity

import "time"

// Election representa una elección. El ciclo de vida es:
//
//	borrador (is_active=false, start_time vacío o futuro)
//	  → activa (is_active=true, start_time fijado)
//	  → terminada (is_active=false, end_time fijado)
//
// Activate y End son idempotentes: nunca sobreescriben un start_time o
// end_time ya fijado.
type Election struct {
	ID          string
	Title       string
	Description string
	StartTime   *time.Time
	EndTime     *time.Time
	IsActive    bool
	CreatedBy   string // referencia débil al usuario creador
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Activate marca la elección como activa. Si start_time no estaba fijado,
// queda en now; si ya lo estaba, se conserva.
func (e *Election) Activate(now time.Time) {
	e.IsActive = true
	if e.StartTime == nil {
		t := now
		e.StartTime = &t
	}
	e.UpdatedAt = now
}

// End desactiva la elección. Si end_time no estaba fijado, queda en now.
func (e *Election) End(now time.Time) {
	e.IsActive = false
	if e.EndTime == nil {
		t := now
		e.EndTime = &t
	}
	e.UpdatedAt = now
}

// HasStarted indica si la ventana de votación ya abrió (bloquea mutaciones
// de candidatos).
func (e *Election) HasStarted(now time.Time) bool {
	return e.StartTime != nil && !now.Before(*e.StartTime)
}

// HasEnded indica si la ventana de votación ya cerró.
func (e *Election) HasEnded(now time.Time) bool {
	return e.EndTime != nil && !now.Before(*e.EndTime)
}
