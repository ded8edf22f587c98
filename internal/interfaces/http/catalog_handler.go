package http

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/smcotacoes/cotacoes-api/internal/application/dto"
	"github.com/smcotacoes/cotacoes-api/internal/application/usecase"
)

// Limite de upload da importação SPED.
const maxImportBytes = 10 << 20 // 10 MiB

// CatalogHandler trata o catálogo de produtos: autofill, curadoria,
// exportação CSV e importação SPED.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler constrói o handler de catálogo.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Lookup godoc
// @Summary      Autofill de nome por código de barras
// @Tags         catalog
// @Produce      json
// @Param        barcode  path      string  true  "Código de barras"
// @Success      200      {object}  dto.CatalogLookupResponse
// @Router       /api/catalog/{barcode} [get]
func (h *CatalogHandler) Lookup(c *fiber.Ctx) error {
	out, err := h.uc.Lookup(c.Context(), GetCompanyID(c), c.Params("barcode"))
	if err != nil {
		return respondDomainError(c, err)
	}
	// Não encontrado responde null; o cliente abre digitação manual.
	if out == nil {
		return c.JSON(nil)
	}
	return c.JSON(out)
}

// AdminList godoc
// @Summary      Listar catálogo da empresa
// @Tags         catalog
// @Produce      json
// @Param        search  query  string  false  "Filtro por nome ou código"
// @Param        sort    query  string  false  "lastUsedAt_desc | productName_asc | productName_desc | updatedAt_desc"
// @Success      200     {array}  dto.CatalogProductResponse
// @Router       /api/admin/catalog [get]
func (h *CatalogHandler) AdminList(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetCompanyID(c), c.Query("search"), c.Query("sort"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// AdminUpdate godoc
// @Summary      Editar nome de um produto do catálogo
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID do produto"
// @Param        body  body  dto.UpdateCatalogRequest  true  "productName"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/catalog/{id} [patch]
func (h *CatalogHandler) AdminUpdate(c *fiber.Ctx) error {
	var in dto.UpdateCatalogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.ProductName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "productName é requerido"})
	}
	if err := h.uc.UpdateName(c.Context(), GetCompanyID(c), c.Params("id"), in.ProductName); err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Export godoc
// @Summary      Exportar o catálogo em CSV
// @Tags         catalog
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/admin/catalog/export [get]
func (h *CatalogHandler) Export(c *fiber.Ctx) error {
	csv, err := h.uc.ExportCSV(c.Context(), GetCompanyID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="catalogo-produtos.csv"`)
	return c.SendString(csv)
}

// Import godoc
// @Summary      Importar inventário SPED (registros |0200|)
// @Tags         catalog
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Arquivo SPED"
// @Success      200   {object}  dto.ImportSummaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/catalog/import [post]
func (h *CatalogHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo multipart file é requerido"})
	}
	if fileHeader.Size > maxImportBytes {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "arquivo excede o limite de 10MB"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "não foi possível ler o arquivo"})
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "não foi possível ler o arquivo"})
	}

	out, err := h.uc.BulkImport(c.Context(), GetCompanyID(c), content)
	if err != nil {
		return respondDomainError(c, err)
	}

	importRows.WithLabelValues("inserted").Add(float64(out.Inserted))
	importRows.WithLabelValues("updated").Add(float64(out.Updated))
	importRows.WithLabelValues("ignored").Add(float64(out.Ignored))
	log.Info().
		Str("company_id", GetCompanyID(c)).
		Int("encontrados", out.Found).
		Int("inseridos", out.Inserted).
		Int("atualizados", out.Updated).
		Int("ignorados", out.Ignored).
		Msg("importação SPED concluída")
	return c.JSON(out)
}
