package usecase

import (
	"context"
	"strings"

	"github.com/smcotacoes/cotacoes-api/internal/application/dto"
	"github.com/smcotacoes/cotacoes-api/internal/application/export"
	"github.com/smcotacoes/cotacoes-api/internal/domain/entity"
	"github.com/smcotacoes/cotacoes-api/internal/domain/repository"
	"github.com/smcotacoes/cotacoes-api/internal/domain/sped"
)

// Dicionário estático de demonstração: fallback do autofill quando o
// código de barras ainda não existe no catálogo da empresa.
var demoBarcodes = map[string]string{
	"7891000100103": "Coca-Cola 350ml",
	"7891021001557": "Arroz Tio João 1kg",
	"7891000053508": "Nescau 400g",
	"7891991010856": "Cerveja Skol Latão",
}

const exportTimeLayout = "2006-01-02 15:04:05"

// CatalogUseCase dicionário código de barras -> nome por empresa:
// consulta com fallback, curadoria, exportação CSV e importação SPED.
type CatalogUseCase struct {
	catalogRepo repository.CatalogRepository
	tx          TxRunner
}

// NewCatalogUseCase constrói o caso de uso.
func NewCatalogUseCase(catalogRepo repository.CatalogRepository, tx TxRunner) *CatalogUseCase {
	return &CatalogUseCase{catalogRepo: catalogRepo, tx: tx}
}

// Lookup resolve o nome de um código de barras: catálogo da empresa
// primeiro, depois o dicionário de demonstração. nil = não encontrado,
// e o cliente abre os campos para digitação manual.
func (uc *CatalogUseCase) Lookup(ctx context.Context, companyID, barcode string) (*dto.CatalogLookupResponse, error) {
	product, err := uc.catalogRepo.Lookup(ctx, companyID, barcode)
	if err != nil {
		return nil, err
	}
	if product != nil {
		return &dto.CatalogLookupResponse{ProductName: product.ProductName}, nil
	}
	if name, ok := demoBarcodes[barcode]; ok {
		return &dto.CatalogLookupResponse{ProductName: name}, nil
	}
	return nil, nil
}

// List lista o catálogo da empresa com busca (nome ou código) e ordenação
// por chave whitelisted.
func (uc *CatalogUseCase) List(ctx context.Context, companyID, search, sort string) ([]dto.CatalogProductResponse, error) {
	list, err := uc.catalogRepo.ListByCompany(ctx, companyID, search, sort)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toCatalogResponse(p))
	}
	return out, nil
}

// UpdateName edição curada do nome de um produto do catálogo.
func (uc *CatalogUseCase) UpdateName(ctx context.Context, companyID, id, productName string) error {
	return uc.catalogRepo.UpdateName(ctx, id, companyID, productName)
}

// ExportCSV serializa o catálogo completo (último uso primeiro) no formato
// compartilhado de exportação.
func (uc *CatalogUseCase) ExportCSV(ctx context.Context, companyID string) (string, error) {
	list, err := uc.catalogRepo.ListByCompany(ctx, companyID, "", repository.CatalogSortLastUsedDesc)
	if err != nil {
		return "", err
	}
	rows := make([][]string, 0, len(list))
	for _, p := range list {
		rows = append(rows, []string{
			p.Barcode,
			p.ProductName,
			p.LastUsedAt.Format(exportTimeLayout),
			p.UpdatedAt.Format(exportTimeLayout),
		})
	}
	return export.RenderCSV(export.CatalogHeader, rows), nil
}

// BulkImport processa um arquivo de inventário SPED linha a linha e faz o
// upsert dos registros |0200| válidos numa única transação: ou todos os
// qualificados entram, ou nenhum. Linhas ruins viram contadores, nunca
// abortam o lote. Os contadores só são devolvidos após o commit.
func (uc *CatalogUseCase) BulkImport(ctx context.Context, companyID string, file []byte) (*dto.ImportSummaryResponse, error) {
	text := sped.DecodeText(file)
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var summary dto.ImportSummaryResponse
	err := uc.tx.Run(ctx, func(
		_ repository.QuoteRepository,
		_ repository.QuoteItemRepository,
		catalogRepo repository.CatalogRepository,
		_ repository.ShareRepository,
	) error {
		for _, line := range lines {
			rec, class := sped.ParseLine(line)
			switch class {
			case sped.ClassBlank:
				// não conta
			case sped.ClassIgnored:
				summary.Ignored++
			case sped.ClassProduct:
				summary.Found++
				inserted, err := catalogRepo.Upsert(ctx, companyID, rec.Barcode, rec.ProductName)
				if err != nil {
					return err
				}
				if inserted {
					summary.Inserted++
				} else {
					summary.Updated++
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func toCatalogResponse(p *entity.CatalogProduct) dto.CatalogProductResponse {
	return dto.CatalogProductResponse{
		ID:          p.ID,
		Barcode:     p.Barcode,
		ProductName: p.ProductName,
		LastUsedAt:  p.LastUsedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
