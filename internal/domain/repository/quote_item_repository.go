package repository

import (
	"context"

	"github.com/smcotacoes/cotacoes-api/internal/domain/entity"
)

// ItemOwnership resultado do join item -> cotação, usado nas checagens de
// acesso de update/delete (status, empresa e dono vêm da cotação pai).
type ItemOwnership struct {
	ItemID    string
	QuoteID   string
	CompanyID string
	OwnerID   string
	Status    string
}

// QuoteItemRepository define o porto de persistência para QuoteItem (DIP).
//
// UpsertAdd é a fusão atômica: em conflito de (quote_id, barcode) soma a
// quantidade e atualiza nome/autor, em vez de ler-e-escrever em dois passos.
// Devolve merged=true quando caiu numa linha existente.
type QuoteItemRepository interface {
	UpsertAdd(ctx context.Context, item *entity.QuoteItem) (merged bool, err error)
	ListByQuote(ctx context.Context, quoteID string) ([]*entity.QuoteItem, error)
	GetOwnership(ctx context.Context, itemID string) (*ItemOwnership, error)
	Update(ctx context.Context, itemID string, quantity int, productName, updatedByUserID string) error
	Delete(ctx context.Context, itemID string) error
	DeleteByQuote(ctx context.Context, quoteID string) error
}
