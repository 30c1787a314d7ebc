package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/election-api/internal/application/auth"
	"github.com/jhoicas/election-api/internal/application/dto"
	pkgconfig "github.com/jhoicas/election-api/pkg/config"
	pkgjwt "github.com/jhoicas/election-api/pkg/jwt"
)

// AuthHandler maneja registro, login (password y código de acceso), getme y
// logout. El token de sesión se entrega solo como cookie HTTP-only.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	jwtCfg pkgconfig.JWTConfig
	isProd bool
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, jwtCfg pkgconfig.JWTConfig, isProd bool) *AuthHandler {
	return &AuthHandler{uc: uc, jwtCfg: jwtCfg, isProd: isProd}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, role; password solo para admin/chairman"
// @Success      201   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Email == "" || in.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email y role son requeridos"})
	}
	user, err := h.uc.Register(in)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.setSessionCookie(c, user.ID, user.Role); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SessionResponse{Success: true, User: *user})
}

// Login godoc
// @Summary      Iniciar sesión con email y password (admin/chairman)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.SessionResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	user, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.setSessionCookie(c, user.ID, user.Role); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SessionResponse{Success: true, User: *user})
}

// VoterLogin godoc
// @Summary      Iniciar sesión de votante con código de acceso
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VoterLoginRequest  true  "access_code"
// @Success      200   {object}  dto.SessionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/auth/voter-login [post]
func (h *AuthHandler) VoterLogin(c *fiber.Ctx) error {
	var in dto.VoterLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.VoterLogin(in)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.setSessionCookie(c, user.ID, user.Role); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SessionResponse{Success: true, User: *user})
}

// GetMe godoc
// @Summary      Identidad de la sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/getme [get]
func (h *AuthHandler) GetMe(c *fiber.Ctx) error {
	user, err := h.uc.GetMe(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MeResponse{Success: true, User: *user})
}

// Logout godoc
// @Summary      Cerrar sesión (expira la cookie)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.isProd,
		SameSite: h.sameSite(),
	})
	return c.JSON(dto.MessageResponse{Success: true, Message: "Sesión cerrada"})
}

// setSessionCookie firma el JWT y lo deja en la cookie de sesión. En
// producción la cookie sale Secure + SameSite=None (frontend en otro
// origen); en desarrollo Lax alcanza.
func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, userID, role string) error {
	token, err := pkgjwt.Generate(h.jwtCfg.Secret, userID, role, h.jwtCfg.Issuer, h.jwtCfg.ExpMinutes)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   h.jwtCfg.ExpMinutes * 60,
		HTTPOnly: true,
		Secure:   h.isProd,
		SameSite: h.sameSite(),
	})
	return nil
}

func (h *AuthHandler) sameSite() string {
	if h.isProd {
		return fiber.CookieSameSiteNoneMode
	}
	return fiber.CookieSameSiteLaxMode
}
