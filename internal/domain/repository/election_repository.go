package repository

import (
	"time"

	"github.com/jhoicas/election-api/internal/domain/entity"
)

// ElectionRepository define el puerto de persistencia para Election.
// GetByID devuelve (nil, nil) cuando no hay fila.
type ElectionRepository interface {
	Create(election *entity.Election) error
	GetByID(id string) (*entity.Election, error)
	Update(election *entity.Election) error
	Delete(id string) error
	List() ([]*entity.Election, error)
	// ListActive devuelve las elecciones abiertas para votar en el instante
	// dado: activas, ya iniciadas y sin terminar (end_time nulo o futuro).
	ListActive(now time.Time) ([]*entity.Election, error)
}
