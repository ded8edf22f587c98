package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/smcotacoes/cotacoes-api/internal/domain"
	"github.com/smcotacoes/cotacoes-api/internal/domain/entity"
	"github.com/smcotacoes/cotacoes-api/internal/domain/repository"
)

// Garante que CatalogRepo implementa repository.CatalogRepository.
var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementação do porto CatalogRepository sobre PostgreSQL.
type CatalogRepo struct {
	db querier
}

// NewCatalogRepository constrói o adaptador de persistência para o catálogo.
func NewCatalogRepository(db querier) *CatalogRepo {
	return &CatalogRepo{db: db}
}

const catalogColumns = `id, company_id, barcode, product_name, last_used_at, created_at, updated_at`

// Upsert insere ou, em conflito de (company_id, barcode), sobrescreve o nome
// e carimba last_used_at. xmax = 0 indica que a linha é nova.
func (r *CatalogRepo) Upsert(ctx context.Context, companyID, barcode, productName string) (bool, error) {
	query := `
		INSERT INTO product_catalog (id, company_id, barcode, product_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (company_id, barcode) DO UPDATE SET
			product_name = EXCLUDED.product_name,
			last_used_at = now(),
			updated_at = now()
		RETURNING (xmax = 0)`
	var inserted bool
	err := r.db.QueryRow(ctx, query, uuid.NewString(), companyID, barcode, productName).Scan(&inserted)
	if err != nil {
		return false, fmt.Errorf("upsert catalog product: %w", err)
	}
	return inserted, nil
}

// TouchLastUsed carimba last_used_at se o código existir; caso contrário é
// no-op silencioso.
func (r *CatalogRepo) TouchLastUsed(ctx context.Context, companyID, barcode string) error {
	query := `
		UPDATE product_catalog SET last_used_at = now()
		WHERE company_id = $1 AND barcode = $2`
	_, err := r.db.Exec(ctx, query, companyID, barcode)
	if err != nil {
		return fmt.Errorf("touch catalog product: %w", err)
	}
	return nil
}

// Lookup busca um código de barras no catálogo da empresa.
func (r *CatalogRepo) Lookup(ctx context.Context, companyID, barcode string) (*entity.CatalogProduct, error) {
	query := `SELECT ` + catalogColumns + ` FROM product_catalog WHERE company_id = $1 AND barcode = $2`
	var p entity.CatalogProduct
	err := r.db.QueryRow(ctx, query, companyID, barcode).Scan(
		&p.ID, &p.CompanyID, &p.Barcode, &p.ProductName, &p.LastUsedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup catalog product: %w", err)
	}
	return &p, nil
}

// ListByCompany lista o catálogo da empresa com filtro opcional por nome ou
// código de barras e ordenação escolhida. Chave de ordenação desconhecida
// cai no padrão lastUsedAt_desc.
func (r *CatalogRepo) ListByCompany(ctx context.Context, companyID, search, sort string) ([]*entity.CatalogProduct, error) {
	var orderBy string
	switch sort {
	case repository.CatalogSortNameAsc:
		orderBy = "product_name ASC"
	case repository.CatalogSortNameDesc:
		orderBy = "product_name DESC"
	case repository.CatalogSortUpdatedDesc:
		orderBy = "updated_at DESC"
	default:
		orderBy = "last_used_at DESC"
	}

	query := `SELECT ` + catalogColumns + ` FROM product_catalog WHERE company_id = $1`
	args := []any{companyID}
	if search != "" {
		query += ` AND (product_name ILIKE $2 OR barcode ILIKE $2)`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY ` + orderBy

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	defer rows.Close()

	var list []*entity.CatalogProduct
	for rows.Next() {
		var p entity.CatalogProduct
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Barcode, &p.ProductName, &p.LastUsedAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan catalog product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// UpdateName renomeia um produto do catálogo dentro da empresa.
func (r *CatalogRepo) UpdateName(ctx context.Context, id, companyID, productName string) error {
	query := `
		UPDATE product_catalog SET product_name = $3, updated_at = now()
		WHERE id = $1 AND company_id = $2`
	cmd, err := r.db.Exec(ctx, query, id, companyID, productName)
	if err != nil {
		return fmt.Errorf("update catalog product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
