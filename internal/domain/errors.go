package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP los
// traducen a códigos de estado; los use cases solo los retornan.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrElectionNotFound   = errors.New("elección no encontrada")
	ErrCandidateNotFound  = errors.New("candidato no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrAccessCodeTaken    = errors.New("el código de acceso ya está en uso")
	ErrRoleAlreadyTaken   = errors.New("ya existe un usuario con ese rol en el sistema")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidID          = errors.New("identificador inválido")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// Reglas del ciclo de vida electoral
	ErrElectionNotActive = errors.New("la elección no está activa")
	ErrElectionStarted   = errors.New("la elección ya comenzó")
	ErrElectionEnded     = errors.New("la elección ya terminó")
	ErrDuplicateParty    = errors.New("ya existe un candidato de ese partido en esta elección")

	// Reglas del registro de votos
	ErrAlreadyVoted     = errors.New("ya votaste en esta elección")
	ErrInvalidCandidate = errors.New("candidato inválido para esta elección")
)
