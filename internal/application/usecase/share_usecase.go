package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/smcotacoes/cotacoes-api/internal/application/dto"
	"github.com/smcotacoes/cotacoes-api/internal/application/export"
	"github.com/smcotacoes/cotacoes-api/internal/domain"
	"github.com/smcotacoes/cotacoes-api/internal/domain/entity"
	"github.com/smcotacoes/cotacoes-api/internal/domain/repository"
)

// Validade fixa de um link de compartilhamento.
const shareTTL = 7 * 24 * time.Hour

// ShareUseCase links públicos e temporários para o CSV de uma cotação.
type ShareUseCase struct {
	quoteRepo repository.QuoteRepository
	itemRepo  repository.QuoteItemRepository
	shareRepo repository.ShareRepository
	baseURL   string
}

// NewShareUseCase constrói o caso de uso. baseURL é a origem pública da
// aplicação (APP_URL), usada para montar o link.
func NewShareUseCase(quoteRepo repository.QuoteRepository, itemRepo repository.QuoteItemRepository, shareRepo repository.ShareRepository, baseURL string) *ShareUseCase {
	return &ShareUseCase{quoteRepo: quoteRepo, itemRepo: itemRepo, shareRepo: shareRepo, baseURL: baseURL}
}

// NewShareToken gera o token do link: 16 bytes do CSPRNG em base64url,
// 22 caracteres (128 bits de entropia).
func NewShareToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Create gera um link de compartilhamento para a cotação, restrito ao dono
// ou a um admin da mesma empresa.
func (uc *ShareUseCase) Create(ctx context.Context, actor dto.Actor, quoteID string) (*dto.ShareResponse, error) {
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

	token, err := NewShareToken()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	share := &entity.Share{
		ID:        uuid.New().String(),
		QuoteID:   quote.ID,
		Token:     token,
		ExpiresAt: now.Add(shareTTL),
		CreatedAt: now,
	}
	if err := uc.shareRepo.Create(ctx, share); err != nil {
		return nil, err
	}
	return &dto.ShareResponse{
		ShareURL:  uc.baseURL + "/api/shares/" + token,
		ExpiresAt: share.ExpiresAt,
	}, nil
}

// Resolve troca um token válido pelo CSV dos itens da cotação. Token
// desconhecido é ErrNotFound; token vencido é ErrShareExpired (o cliente
// distingue 404 de 410) e nunca devolve dados.
func (uc *ShareUseCase) Resolve(ctx context.Context, token string) (*dto.ShareCSV, error) {
	share, err := uc.shareRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if share == nil {
		return nil, domain.ErrNotFound
	}
	if share.Expired(time.Now()) {
		return nil, domain.ErrShareExpired
	}

	quote, err := uc.quoteRepo.GetByID(ctx, share.QuoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.itemRepo.ListByQuote(ctx, quote.ID)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{it.Barcode, it.ProductName, strconv.Itoa(it.Quantity)})
	}
	return &dto.ShareCSV{
		Filename: quote.Title + "-" + time.Now().Format("2006-01-02") + ".csv",
		Content:  export.RenderCSV(export.QuoteItemsHeader, rows),
	}, nil
}
