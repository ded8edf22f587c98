package postgres

import (
	"context"
	"fmt"

	"github.com/smcotacoes/cotacoes-api/internal/domain"
	"github.com/smcotacoes/cotacoes-api/internal/domain/entity"
	"github.com/smcotacoes/cotacoes-api/internal/domain/repository"
)

// Garante que QuoteItemRepo implementa repository.QuoteItemRepository.
var _ repository.QuoteItemRepository = (*QuoteItemRepo)(nil)

// QuoteItemRepo implementação do porto QuoteItemRepository sobre PostgreSQL.
type QuoteItemRepo struct {
	db querier
}

// NewQuoteItemRepository constrói o adaptador de persistência para itens.
func NewQuoteItemRepository(db querier) *QuoteItemRepo {
	return &QuoteItemRepo{db: db}
}

// UpsertAdd insere o item ou, em conflito de (quote_id, barcode), soma a
// quantidade e atualiza nome e autor na mesma instrução. xmax <> 0 indica
// que a linha já existia.
func (r *QuoteItemRepo) UpsertAdd(ctx context.Context, item *entity.QuoteItem) (bool, error) {
	query := `
		INSERT INTO quote_items (id, quote_id, company_id, barcode, product_name, quantity, updated_by_user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (quote_id, barcode) DO UPDATE SET
			quantity = quote_items.quantity + EXCLUDED.quantity,
			product_name = EXCLUDED.product_name,
			updated_by_user_id = EXCLUDED.updated_by_user_id,
			updated_at = EXCLUDED.updated_at
		RETURNING (xmax <> 0)`
	var merged bool
	err := r.db.QueryRow(ctx, query,
		item.ID, item.QuoteID, item.CompanyID, item.Barcode, item.ProductName,
		item.Quantity, item.UpdatedByUserID, item.CreatedAt, item.UpdatedAt,
	).Scan(&merged)
	if err != nil {
		return false, fmt.Errorf("upsert quote item: %w", err)
	}
	return merged, nil
}

// ListByQuote lista os itens da cotação, mais recentes primeiro.
func (r *QuoteItemRepo) ListByQuote(ctx context.Context, quoteID string) ([]*entity.QuoteItem, error) {
	query := `
		SELECT id, quote_id, company_id, barcode, product_name, quantity, updated_by_user_id, created_at, updated_at
		FROM quote_items
		WHERE quote_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("list quote items: %w", err)
	}
	defer rows.Close()

	var list []*entity.QuoteItem
	for rows.Next() {
		var it entity.QuoteItem
		if err := rows.Scan(&it.ID, &it.QuoteID, &it.CompanyID, &it.Barcode, &it.ProductName, &it.Quantity, &it.UpdatedByUserID, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan quote item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// GetOwnership devolve empresa, dono e status da cotação pai do item, para
// as checagens de acesso de update e delete.
func (r *QuoteItemRepo) GetOwnership(ctx context.Context, itemID string) (*repository.ItemOwnership, error) {
	query := `
		SELECT i.id, i.quote_id, q.company_id, q.user_id, q.status
		FROM quote_items i
		JOIN quotes q ON q.id = i.quote_id
		WHERE i.id = $1`
	var own repository.ItemOwnership
	err := r.db.QueryRow(ctx, query, itemID).Scan(&own.ItemID, &own.QuoteID, &own.CompanyID, &own.OwnerID, &own.Status)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item ownership: %w", err)
	}
	return &own, nil
}

// Update grava quantidade, nome e autor da edição.
func (r *QuoteItemRepo) Update(ctx context.Context, itemID string, quantity int, productName, updatedByUserID string) error {
	query := `
		UPDATE quote_items
		SET quantity = $2, product_name = $3, updated_by_user_id = $4, updated_at = now()
		WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, itemID, quantity, productName, updatedByUserID)
	if err != nil {
		return fmt.Errorf("update quote item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove o item.
func (r *QuoteItemRepo) Delete(ctx context.Context, itemID string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM quote_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete quote item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByQuote remove todos os itens da cotação (cascata do delete).
func (r *QuoteItemRepo) DeleteByQuote(ctx context.Context, quoteID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM quote_items WHERE quote_id = $1`, quoteID)
	if err != nil {
		return fmt.Errorf("delete quote items: %w", err)
	}
	return nil
}
