package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smcotacoes/cotacoes-api/internal/application/dto"
	"github.com/smcotacoes/cotacoes-api/internal/application/usecase"
)

// ShareHandler trata os links públicos de exportação de cotação.
type ShareHandler struct {
	uc *usecase.ShareUseCase
}

// NewShareHandler constrói o handler de shares.
func NewShareHandler(uc *usecase.ShareUseCase) *ShareHandler {
	return &ShareHandler{uc: uc}
}

// Create godoc
// @Summary      Gerar link público para o CSV da cotação
// @Tags         shares
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShareRequest  true  "quoteId"
// @Success      201   {object}  dto.ShareResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/shares [post]
func (h *ShareHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShareRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.QuoteID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quoteId é requerido"})
	}
	out, err := h.uc.Create(c.Context(), Actor(c), in.QuoteID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Resolve godoc
// @Summary      Baixar o CSV de um link compartilhado (público)
// @Tags         shares
// @Produce      text/csv
// @Param        token  path  string  true  "Token do link"
// @Success      200    {string}  string
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      410    {object}  dto.ErrorResponse
// @Router       /api/shares/{token} [get]
func (h *ShareHandler) Resolve(c *fiber.Ctx) error {
	out, err := h.uc.Resolve(c.Context(), c.Params("token"))
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+out.Filename+`"`)
	return c.SendString(out.Content)
}
