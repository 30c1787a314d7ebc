package entity

import "time"

// Roles válidos para User. Admin y chairman son roles singleton: solo puede
// existir un usuario con cada uno en todo el sistema.
const (
	RoleAdmin    = "admin"
	RoleChairman = "chairman"
	RoleVoter    = "voter"
)

// IsValidRole verifica que el rol sea uno de los tres conocidos.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleChairman, RoleVoter:
		return true
	}
	return false
}

// IsSingletonRole indica si el rol admite un único usuario en el sistema.
func IsSingletonRole(role string) bool {
	return role == RoleAdmin || role == RoleChairman
}

// User representa un usuario del sistema: el admin, el chairman o un votante.
// PasswordHash solo existe para admin/chairman; AccessCode solo para votantes
// (lo asigna el admin después del registro y es reutilizable entre logins).
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	Role         string // admin, chairman, voter
	AccessCode   string // vacío hasta que el admin lo genere
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
