package repository

import (
	"context"

	"github.com/smcotacoes/cotacoes-api/internal/domain/entity"
)

// Chaves de ordenação aceitas pela listagem do catálogo.
const (
	CatalogSortLastUsedDesc = "lastUsedAt_desc"
	CatalogSortNameAsc      = "productName_asc"
	CatalogSortNameDesc     = "productName_desc"
	CatalogSortUpdatedDesc  = "updatedAt_desc"
)

// CatalogRepository define o porto de persistência para o catálogo (DIP).
//
// Upsert devolve inserted=true quando criou a linha, false quando só
// atualizou uma existente; a importação usa isso para os contadores.
// TouchLastUsed é no-op se o código de barras não existir.
type CatalogRepository interface {
	Upsert(ctx context.Context, companyID, barcode, productName string) (inserted bool, err error)
	TouchLastUsed(ctx context.Context, companyID, barcode string) error
	Lookup(ctx context.Context, companyID, barcode string) (*entity.CatalogProduct, error)
	ListByCompany(ctx context.Context, companyID, search, sort string) ([]*entity.CatalogProduct, error)
	UpdateName(ctx context.Context, id, companyID, productName string) error
}
