package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/smcotacoes/cotacoes-api/internal/application/auth"
	"github.com/smcotacoes/cotacoes-api/internal/application/dto"
)

// AuthHandler trata login, logout, sessão atual e troca de senha.
type AuthHandler struct {
	uc          *auth.UseCase
	sessionDays int
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.UseCase, sessionDays int) *AuthHandler {
	return &AuthHandler{uc: uc, sessionDays: sessionDays}
}

// Login godoc
// @Summary      Iniciar sessão
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email e password são requeridos"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		loginAttempts.WithLabelValues("failure").Inc()
		return respondDomainError(c, err)
	}
	loginAttempts.WithLabelValues("success").Inc()
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    out.Token,
		Expires:  time.Now().Add(time.Duration(h.sessionDays) * 24 * time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/",
	})
	return c.JSON(out)
}

// Logout godoc
// @Summary      Encerrar sessão
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/",
	})
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Me godoc
// @Summary      Sessão atual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(dto.SessionResponse{
		ID:        GetUserID(c),
		Name:      GetUserName(c),
		Role:      GetRole(c),
		CompanyID: GetCompanyID(c),
	})
}

// ChangePassword godoc
// @Summary      Trocar a própria senha
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "currentPassword, newPassword"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/profile/password [patch]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.CurrentPassword == "" || len(in.NewPassword) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "a nova senha deve ter pelo menos 6 caracteres"})
	}
	if err := h.uc.ChangePassword(c.Context(), Actor(c), in); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
