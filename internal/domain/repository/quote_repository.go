package repository

import (
	"context"

	"github.com/smcotacoes/cotacoes-api/internal/domain/entity"
)

// QuoteWithUser cotação com o nome do criador (join para a listagem de admin).
type QuoteWithUser struct {
	entity.Quote
	UserName string
}

// QuoteRepository define o porto de persistência para Quote (DIP).
//
// GetByID não tem escopo de empresa: só a resolução pública de share o usa,
// depois de validar o token. Todo o resto passa por GetByIDAndCompany.
type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	GetByID(ctx context.Context, id string) (*entity.Quote, error)
	GetByIDAndCompany(ctx context.Context, id, companyID string) (*entity.Quote, error)
	ListByCompany(ctx context.Context, companyID string) ([]*QuoteWithUser, error)
	ListByOwner(ctx context.Context, userID, companyID string) ([]*entity.Quote, error)
	Close(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
