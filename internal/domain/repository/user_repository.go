package repository

import "github.com/jhoicas/election-api/internal/domain/entity"

// UserWithVoteStatus es la vista de un usuario con su estado de voto derivado
// del registro de votos (nunca se almacena un flag has_voted independiente).
type UserWithVoteStatus struct {
	entity.User
	HasVoted bool
}

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByAccessCode(code string) (*entity.User, error)
	// RoleExists indica si ya hay un usuario con ese rol (chequeo de
	// singleton para admin/chairman; el índice parcial único es el respaldo).
	RoleExists(role string) (bool, error)
	List() ([]*UserWithVoteStatus, error)
	ListByRoles(roles ...string) ([]*entity.User, error)
	Update(user *entity.User) error
	// SetAccessCode asigna el código de acceso a un votante. Devuelve
	// domain.ErrAccessCodeTaken si el código ya está en uso por otro usuario.
	SetAccessCode(id, code string) error
	Delete(id string) error
}
