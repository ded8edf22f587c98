package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smcotacoes/cotacoes-api/internal/application/dto"
	"github.com/smcotacoes/cotacoes-api/internal/application/usecase"
)

// QuoteHandler trata cotações e seus itens.
type QuoteHandler struct {
	uc *usecase.QuoteUseCase
}

// NewQuoteHandler constrói o handler de cotações.
func NewQuoteHandler(uc *usecase.QuoteUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// List godoc
// @Summary      Listar cotações visíveis ao usuário
// @Tags         quotes
// @Produce      json
// @Success      200  {array}  dto.QuoteResponse
// @Router       /api/quotes [get]
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), Actor(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Criar cotação
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQuoteRequest  true  "title, notes"
// @Success      201   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/quotes [post]
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), Actor(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Detalhe da cotação com itens
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "ID da cotação"
// @Success      200  {object}  dto.QuoteDetailResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [get]
func (h *QuoteHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), Actor(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover cotação (itens e links em cascata)
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "ID da cotação"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), Actor(c), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Finalize godoc
// @Summary      Finalizar cotação (open -> closed, idempotente)
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "ID da cotação"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/finalize [patch]
func (h *QuoteHandler) Finalize(c *fiber.Ctx) error {
	if err := h.uc.Finalize(c.Context(), Actor(c), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// AddItem godoc
// @Summary      Adicionar item (mesmo código soma a quantidade)
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID da cotação"
// @Param        body  body  dto.AddItemRequest  true  "barcode, productName, quantity, saveToCatalog"
// @Success      201   {object}  dto.AddItemResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/quotes/{id}/items [post]
func (h *QuoteHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.AddItem(c.Context(), Actor(c), c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateItem godoc
// @Summary      Editar quantidade/nome de um item
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID do item"
// @Param        body  body  dto.UpdateItemRequest  true  "quantity, productName"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [patch]
func (h *QuoteHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.UpdateItem(c.Context(), Actor(c), c.Params("id"), in); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// DeleteItem godoc
// @Summary      Remover um item
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "ID do item"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *QuoteHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.uc.DeleteItem(c.Context(), Actor(c), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
