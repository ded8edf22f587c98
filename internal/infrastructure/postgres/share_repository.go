package postgres

import (
	"context"
	"fmt"

	"github.com/smcotacoes/cotacoes-api/internal/domain/entity"
	"github.com/smcotacoes/cotacoes-api/internal/domain/repository"
)

// Garante que ShareRepo implementa repository.ShareRepository.
var _ repository.ShareRepository = (*ShareRepo)(nil)

// ShareRepo implementação do porto ShareRepository sobre PostgreSQL.
type ShareRepo struct {
	db querier
}

// NewShareRepository constrói o adaptador de persistência para shares.
func NewShareRepository(db querier) *ShareRepo {
	return &ShareRepo{db: db}
}

// Create persiste um novo link de compartilhamento.
func (r *ShareRepo) Create(ctx context.Context, share *entity.Share) error {
	query := `
		INSERT INTO shares (id, quote_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query, share.ID, share.QuoteID, share.Token, share.ExpiresAt, share.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert share: %w", err)
	}
	return nil
}

// GetByToken obtém um share pelo token.
func (r *ShareRepo) GetByToken(ctx context.Context, token string) (*entity.Share, error) {
	query := `SELECT id, quote_id, token, expires_at, created_at FROM shares WHERE token = $1`
	var s entity.Share
	err := r.db.QueryRow(ctx, query, token).Scan(&s.ID, &s.QuoteID, &s.Token, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get share: %w", err)
	}
	return &s, nil
}

// DeleteByQuote remove todos os shares da cotação (cascata do delete).
func (r *ShareRepo) DeleteByQuote(ctx context.Context, quoteID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM shares WHERE quote_id = $1`, quoteID)
	if err != nil {
		return fmt.Errorf("delete shares: %w", err)
	}
	return nil
}
