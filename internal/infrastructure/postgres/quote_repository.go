package postgres

import (
	"context"
	"fmt"

	"github.com/smcotacoes/cotacoes-api/internal/domain"
	"github.com/smcotacoes/cotacoes-api/internal/domain/entity"
	"github.com/smcotacoes/cotacoes-api/internal/domain/repository"
)

// Garante que QuoteRepo implementa repository.QuoteRepository.
var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo implementação do porto QuoteRepository sobre PostgreSQL.
type QuoteRepo struct {
	db querier
}

// NewQuoteRepository constrói o adaptador de persistência para cotações.
func NewQuoteRepository(db querier) *QuoteRepo {
	return &QuoteRepo{db: db}
}

const quoteColumns = `id, company_id, user_id, title, status, notes, created_at, updated_at`

// Create persiste uma nova cotação.
func (r *QuoteRepo) Create(ctx context.Context, quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (id, company_id, user_id, title, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		quote.ID, quote.CompanyID, quote.UserID, quote.Title,
		quote.Status, quote.Notes, quote.CreatedAt, quote.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// GetByID obtém uma cotação sem escopo de empresa. Uso restrito à resolução
// de share, que já validou o token.
func (r *QuoteRepo) GetByID(ctx context.Context, id string) (*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetByIDAndCompany obtém uma cotação dentro da empresa.
func (r *QuoteRepo) GetByIDAndCompany(ctx context.Context, id, companyID string) (*entity.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1 AND company_id = $2`
	return r.scanOne(ctx, query, id, companyID)
}

// ListByCompany lista todas as cotações da empresa com o nome do criador,
// mais recentes primeiro.
func (r *QuoteRepo) ListByCompany(ctx context.Context, companyID string) ([]*repository.QuoteWithUser, error) {
	query := `
		SELECT q.id, q.company_id, q.user_id, q.title, q.status, q.notes, q.created_at, q.updated_at, u.name
		FROM quotes q
		JOIN users u ON u.id = q.user_id
		WHERE q.company_id = $1
		ORDER BY q.created_at DESC`
	rows, err := r.db.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()

	var list []*repository.QuoteWithUser
	for rows.Next() {
		var q repository.QuoteWithUser
		if err := rows.Scan(&q.ID, &q.CompanyID, &q.UserID, &q.Title, &q.Status, &q.Notes, &q.CreatedAt, &q.UpdatedAt, &q.UserName); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}

// ListByOwner lista as cotações do próprio usuário, mais recentes primeiro.
func (r *QuoteRepo) ListByOwner(ctx context.Context, userID, companyID string) ([]*entity.Quote, error) {
	query := `
		SELECT ` + quoteColumns + ` FROM quotes
		WHERE user_id = $1 AND company_id = $2
		ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID, companyID)
	if err != nil {
		return nil, fmt.Errorf("list quotes by owner: %w", err)
	}
	defer rows.Close()

	var list []*entity.Quote
	for rows.Next() {
		var q entity.Quote
		if err := rows.Scan(&q.ID, &q.CompanyID, &q.UserID, &q.Title, &q.Status, &q.Notes, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		list = append(list, &q)
	}
	return list, rows.Err()
}

// Close marca a cotação como fechada. Idempotente: fechar de novo não é erro.
func (r *QuoteRepo) Close(ctx context.Context, id string) error {
	query := `UPDATE quotes SET status = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id, entity.QuoteStatusClosed)
	if err != nil {
		return fmt.Errorf("close quote: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove a cotação. Itens e shares devem ser removidos antes, na
// mesma transação.
func (r *QuoteRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM quotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *QuoteRepo) scanOne(ctx context.Context, query string, args ...any) (*entity.Quote, error) {
	var q entity.Quote
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&q.ID, &q.CompanyID, &q.UserID, &q.Title, &q.Status, &q.Notes, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return &q, nil
}
