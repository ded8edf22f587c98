package repository

import (
	"context"

	"github.com/smcotacoes/cotacoes-api/internal/domain/entity"
)

// ShareRepository define o porto de persistência para Share (DIP).
type ShareRepository interface {
	Create(ctx context.Context, share *entity.Share) error
	GetByToken(ctx context.Context, token string) (*entity.Share, error)
	DeleteByQuote(ctx context.Context, quoteID string) error
}
