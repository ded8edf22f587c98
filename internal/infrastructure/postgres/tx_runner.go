package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/smcotacoes/cotacoes-api/internal/application/usecase"
	"github.com/smcotacoes/cotacoes-api/internal/domain/repository"
)

// Garante que TxRunner implementa usecase.TxRunner.
var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e faz
// Commit ou Rollback. Cobre a cascata do delete de cotação, o par
// item+catálogo do AddItem e o loop da importação SPED.
func (r *TxRunner) Run(ctx context.Context, fn func(
	quoteRepo repository.QuoteRepository,
	itemRepo repository.QuoteItemRepository,
	catalogRepo repository.CatalogRepository,
	shareRepo repository.ShareRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	quoteRepo := NewQuoteRepository(tx)
	itemRepo := NewQuoteItemRepository(tx)
	catalogRepo := NewCatalogRepository(tx)
	shareRepo := NewShareRepository(tx)

	if err := fn(quoteRepo, itemRepo, catalogRepo, shareRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
