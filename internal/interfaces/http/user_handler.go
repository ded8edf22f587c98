package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smcotacoes/cotacoes-api/internal/application/dto"
	"github.com/smcotacoes/cotacoes-api/internal/application/usecase"
)

// UserHandler trata a gestão de funcionários pelo admin.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler constrói o handler de usuários.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuários da empresa
// @Tags         users
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/admin/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetCompanyID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Criar usuário na empresa
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "name, email, password, role"
// @Success      201   {object}  dto.UserResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" || in.Email == "" || len(in.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email e password (mín. 6) são requeridos"})
	}
	out, err := h.uc.Create(c.Context(), GetCompanyID(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar nome/email de um usuário
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID do usuário"
// @Param        body  body  dto.UpdateUserRequest  true  "name, email"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [patch]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Name == "" || in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name e email são requeridos"})
	}
	if err := h.uc.Update(c.Context(), GetCompanyID(c), c.Params("id"), in); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// ToggleActive godoc
// @Summary      Ativar/desativar usuário
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "ID do usuário"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/toggle [patch]
func (h *UserHandler) ToggleActive(c *fiber.Ctx) error {
	if err := h.uc.ToggleActive(c.Context(), GetCompanyID(c), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// ResetPassword godoc
// @Summary      Redefinir a senha de um usuário
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID do usuário"
// @Param        body  body  dto.ResetPasswordRequest  true  "password"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/reset [post]
func (h *UserHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if len(in.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password deve ter pelo menos 6 caracteres"})
	}
	if err := h.uc.ResetPassword(c.Context(), GetCompanyID(c), c.Params("id"), in.Password); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
