package dto

// RegisterRequest entrada de registro. Para admin/chairman se exige password;
// para votantes no hay password (reciben código de acceso después).
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin chairman voter"`
}

// LoginRequest login con email y password (solo admin/chairman).
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VoterLoginRequest login de votante con código de acceso.
type VoterLoginRequest struct {
	AccessCode string `json:"access_code" validate:"required"`
}

// SessionResponse salida de login/registro: el token viaja solo en la cookie
// HTTP-only, el cuerpo lleva la identidad.
type SessionResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

// MeResponse salida de /auth/getme.
type MeResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}
