package usecase

import (
	"context"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/smcotacoes/cotacoes-api/internal/application/dto"
	"github.com/smcotacoes/cotacoes-api/internal/domain"
	"github.com/smcotacoes/cotacoes-api/internal/domain/entity"
	"github.com/smcotacoes/cotacoes-api/internal/domain/repository"
)

// TxRunner executa um callback com repositórios atados a uma única
// transação. Todo caminho que toca mais de uma linha passa por aqui.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		quoteRepo repository.QuoteRepository,
		itemRepo repository.QuoteItemRepository,
		catalogRepo repository.CatalogRepository,
		shareRepo repository.ShareRepository,
	) error) error
}

var barcodeDigits = regexp.MustCompile(`^\d+$`)

// QuoteUseCase ciclo de vida de cotações e seus itens: posse, status
// open/closed e fusão de quantidades por código de barras.
type QuoteUseCase struct {
	quoteRepo repository.QuoteRepository
	itemRepo  repository.QuoteItemRepository
	tx        TxRunner
}

// NewQuoteUseCase constrói o caso de uso.
func NewQuoteUseCase(quoteRepo repository.QuoteRepository, itemRepo repository.QuoteItemRepository, tx TxRunner) *QuoteUseCase {
	return &QuoteUseCase{quoteRepo: quoteRepo, itemRepo: itemRepo, tx: tx}
}

// List lista as cotações visíveis ao ator: admin vê todas da empresa (com
// nome do criador), employee só as próprias. Mais recentes primeiro.
func (uc *QuoteUseCase) List(ctx context.Context, actor dto.Actor) ([]dto.QuoteResponse, error) {
	if actor.IsAdmin() {
		list, err := uc.quoteRepo.ListByCompany(ctx, actor.CompanyID)
		if err != nil {
			return nil, err
		}
		out := make([]dto.QuoteResponse, 0, len(list))
		for _, q := range list {
			resp := toQuoteResponse(&q.Quote)
			resp.UserName = q.UserName
			out = append(out, resp)
		}
		return out, nil
	}

	list, err := uc.quoteRepo.ListByOwner(ctx, actor.UserID, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuoteResponse, 0, len(list))
	for _, q := range list {
		out = append(out, toQuoteResponse(q))
	}
	return out, nil
}

// Create cria uma cotação aberta, de posse do ator.
func (uc *QuoteUseCase) Create(ctx context.Context, actor dto.Actor, in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	quote := &entity.Quote{
		ID:        uuid.New().String(),
		CompanyID: actor.CompanyID,
		UserID:    actor.UserID,
		Title:     in.Title,
		Status:    entity.QuoteStatusOpen,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.quoteRepo.Create(ctx, quote); err != nil {
		return nil, err
	}
	resp := toQuoteResponse(quote)
	return &resp, nil
}

// Get devolve a cotação com seus itens, respeitando posse e tenant.
func (uc *QuoteUseCase) Get(ctx context.Context, actor dto.Actor, quoteID string) (*dto.QuoteDetailResponse, error) {
	quote, err := uc.loadQuote(ctx, actor, quoteID)
	if err != nil {
		return nil, err
	}
	items, err := uc.itemRepo.ListByQuote(ctx, quote.ID)
	if err != nil {
		return nil, err
	}
	detail := &dto.QuoteDetailResponse{
		QuoteResponse: toQuoteResponse(quote),
		Items:         make([]dto.QuoteItemResponse, 0, len(items)),
	}
	for _, it := range items {
		detail.Items = append(detail.Items, toItemResponse(it))
	}
	return detail, nil
}

// Delete remove a cotação em cascata (itens, shares, cotação) numa única
// transação; falha parcial não deixa órfãos.
func (uc *QuoteUseCase) Delete(ctx context.Context, actor dto.Actor, quoteID string) error {
	quote, err := uc.loadQuote(ctx, actor, quoteID)
	if err != nil {
		return err
	}
	return uc.tx.Run(ctx, func(
		quoteRepo repository.QuoteRepository,
		itemRepo repository.QuoteItemRepository,
		_ repository.CatalogRepository,
		shareRepo repository.ShareRepository,
	) error {
		if err := itemRepo.DeleteByQuote(ctx, quote.ID); err != nil {
			return err
		}
		if err := shareRepo.DeleteByQuote(ctx, quote.ID); err != nil {
			return err
		}
		return quoteRepo.Delete(ctx, quote.ID)
	})
}

// Finalize fecha a cotação (open -> closed). Fechar uma cotação já fechada
// é no-op: nada pode mudar de estado, então a repetição é aceita.
func (uc *QuoteUseCase) Finalize(ctx context.Context, actor dto.Actor, quoteID string) error {
	quote, err := uc.loadQuote(ctx, actor, quoteID)
	if err != nil {
		return err
	}
	if quote.Closed() {
		return nil
	}
	return uc.quoteRepo.Close(ctx, quote.ID)
}

// AddItem adiciona (ou funde) um item na cotação e reflete no catálogo:
// com saveToCatalog o nome é gravado; sem, só o lastUsedAt é tocado para
// que um scan acidental não corrompa um nome curado.
func (uc *QuoteUseCase) AddItem(ctx context.Context, actor dto.Actor, quoteID string, in dto.AddItemRequest) (*dto.AddItemResponse, error) {
	if in.Quantity <= 0 || in.ProductName == "" || !barcodeDigits.MatchString(in.Barcode) {
		return nil, domain.ErrInvalidInput
	}
	quote, err := uc.loadQuote(ctx, actor, quoteID)
	if err != nil {
		return nil, err
	}
	if quote.Closed() {
		return nil, domain.ErrQuoteClosed
	}

	now := time.Now()
	item := &entity.QuoteItem{
		ID:              uuid.New().String(),
		QuoteID:         quote.ID,
		CompanyID:       quote.CompanyID,
		Barcode:         in.Barcode,
		ProductName:     in.ProductName,
		Quantity:        in.Quantity,
		UpdatedByUserID: actor.UserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	var merged bool
	err = uc.tx.Run(ctx, func(
		_ repository.QuoteRepository,
		itemRepo repository.QuoteItemRepository,
		catalogRepo repository.CatalogRepository,
		_ repository.ShareRepository,
	) error {
		var err error
		merged, err = itemRepo.UpsertAdd(ctx, item)
		if err != nil {
			return err
		}
		if in.SaveToCatalog {
			_, err = catalogRepo.Upsert(ctx, quote.CompanyID, in.Barcode, in.ProductName)
			return err
		}
		return catalogRepo.TouchLastUsed(ctx, quote.CompanyID, in.Barcode)
	})
	if err != nil {
		return nil, err
	}
	return &dto.AddItemResponse{Success: true, Updated: merged}, nil
}

// UpdateItem edita quantidade/nome de um item, resolvendo status, empresa e
// dono pelo join item -> cotação.
func (uc *QuoteUseCase) UpdateItem(ctx context.Context, actor dto.Actor, itemID string, in dto.UpdateItemRequest) error {
	if in.Quantity <= 0 || in.ProductName == "" {
		return domain.ErrInvalidInput
	}
	if err := uc.gateItem(ctx, actor, itemID); err != nil {
		return err
	}
	return uc.itemRepo.Update(ctx, itemID, in.Quantity, in.ProductName, actor.UserID)
}

// DeleteItem remove um item, com as mesmas checagens de UpdateItem.
func (uc *QuoteUseCase) DeleteItem(ctx context.Context, actor dto.Actor, itemID string) error {
	if err := uc.gateItem(ctx, actor, itemID); err != nil {
		return err
	}
	return uc.itemRepo.Delete(ctx, itemID)
}

// loadQuote carrega a cotação com escopo de empresa e aplica a regra de
// posse: cotação de outra empresa (ou inexistente) é ErrNotFound, cotação
// de outro employee é ErrForbidden.
func (uc *QuoteUseCase) loadQuote(ctx context.Context, actor dto.Actor, quoteID string) (*entity.Quote, error) {
	quote, err := uc.quoteRepo.GetByIDAndCompany(ctx, quoteID, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.IsAdmin() && !quote.OwnedBy(actor.UserID) {
		return nil, domain.ErrForbidden
	}
	return quote, nil
}

func (uc *QuoteUseCase) gateItem(ctx context.Context, actor dto.Actor, itemID string) error {
	own, err := uc.itemRepo.GetOwnership(ctx, itemID)
	if err != nil {
		return err
	}
	if own == nil || own.CompanyID != actor.CompanyID {
		return domain.ErrNotFound
	}
	if own.Status == entity.QuoteStatusClosed {
		return domain.ErrQuoteClosed
	}
	if !actor.IsAdmin() && own.OwnerID != actor.UserID {
		return domain.ErrForbidden
	}
	return nil
}

func toQuoteResponse(q *entity.Quote) dto.QuoteResponse {
	return dto.QuoteResponse{
		ID:        q.ID,
		CompanyID: q.CompanyID,
		UserID:    q.UserID,
		Title:     q.Title,
		Status:    q.Status,
		Notes:     q.Notes,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func toItemResponse(it *entity.QuoteItem) dto.QuoteItemResponse {
	return dto.QuoteItemResponse{
		ID:          it.ID,
		QuoteID:     it.QuoteID,
		Barcode:     it.Barcode,
		ProductName: it.ProductName,
		Quantity:    it.Quantity,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}
