package usecase_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/smcotacoes/cotacoes-api/internal/application/usecase"
	"github.com/smcotacoes/cotacoes-api/internal/domain"
	"github.com/smcotacoes/cotacoes-api/internal/domain/entity"
	"github.com/smcotacoes/cotacoes-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória dos portos de persistência
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	quotes   map[string]*entity.Quote
	items    map[string]*entity.QuoteItem
	catalog  map[string]*entity.CatalogProduct // chave companyID|barcode
	shares   map[string]*entity.Share          // chave token
	userName map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		quotes:   make(map[string]*entity.Quote),
		items:    make(map[string]*entity.QuoteItem),
		catalog:  make(map[string]*entity.CatalogProduct),
		shares:   make(map[string]*entity.Share),
		userName: make(map[string]string),
	}
}

func catalogKey(companyID, barcode string) string { return companyID + "|" + barcode }

// fakeQuoteRepo implementa repository.QuoteRepository sobre o fakeStore.
type fakeQuoteRepo struct{ s *fakeStore }

var _ repository.QuoteRepository = (*fakeQuoteRepo)(nil)

func (r *fakeQuoteRepo) Create(_ context.Context, q *entity.Quote) error {
	cp := *q
	r.s.quotes[q.ID] = &cp
	return nil
}

func (r *fakeQuoteRepo) GetByID(_ context.Context, id string) (*entity.Quote, error) {
	q, ok := r.s.quotes[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (r *fakeQuoteRepo) GetByIDAndCompany(_ context.Context, id, companyID string) (*entity.Quote, error) {
	q, ok := r.s.quotes[id]
	if !ok || q.CompanyID != companyID {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (r *fakeQuoteRepo) ListByCompany(_ context.Context, companyID string) ([]*repository.QuoteWithUser, error) {
	var out []*repository.QuoteWithUser
	for _, q := range r.s.quotes {
		if q.CompanyID == companyID {
			out = append(out, &repository.QuoteWithUser{Quote: *q, UserName: r.s.userName[q.UserID]})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeQuoteRepo) ListByOwner(_ context.Context, userID, companyID string) ([]*entity.Quote, error) {
	var out []*entity.Quote
	for _, q := range r.s.quotes {
		if q.CompanyID == companyID && q.UserID == userID {
			cp := *q
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeQuoteRepo) Close(_ context.Context, id string) error {
	q, ok := r.s.quotes[id]
	if !ok {
		return domain.ErrNotFound
	}
	q.Status = entity.QuoteStatusClosed
	q.UpdatedAt = time.Now()
	return nil
}

func (r *fakeQuoteRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.s.quotes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.quotes, id)
	return nil
}

// fakeItemRepo implementa repository.QuoteItemRepository sobre o fakeStore.
type fakeItemRepo struct{ s *fakeStore }

var _ repository.QuoteItemRepository = (*fakeItemRepo)(nil)

func (r *fakeItemRepo) UpsertAdd(_ context.Context, item *entity.QuoteItem) (bool, error) {
	for _, it := range r.s.items {
		if it.QuoteID == item.QuoteID && it.Barcode == item.Barcode {
			it.Quantity += item.Quantity
			it.ProductName = item.ProductName
			it.UpdatedByUserID = item.UpdatedByUserID
			it.UpdatedAt = item.UpdatedAt
			return true, nil
		}
	}
	cp := *item
	r.s.items[item.ID] = &cp
	return false, nil
}

func (r *fakeItemRepo) ListByQuote(_ context.Context, quoteID string) ([]*entity.QuoteItem, error) {
	var out []*entity.QuoteItem
	for _, it := range r.s.items {
		if it.QuoteID == quoteID {
			cp := *it
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeItemRepo) GetOwnership(_ context.Context, itemID string) (*repository.ItemOwnership, error) {
	it, ok := r.s.items[itemID]
	if !ok {
		return nil, nil
	}
	q, ok := r.s.quotes[it.QuoteID]
	if !ok {
		return nil, nil
	}
	return &repository.ItemOwnership{
		ItemID:    it.ID,
		QuoteID:   q.ID,
		CompanyID: q.CompanyID,
		OwnerID:   q.UserID,
		Status:    q.Status,
	}, nil
}

func (r *fakeItemRepo) Update(_ context.Context, itemID string, quantity int, productName, updatedByUserID string) error {
	it, ok := r.s.items[itemID]
	if !ok {
		return domain.ErrNotFound
	}
	it.Quantity = quantity
	it.ProductName = productName
	it.UpdatedByUserID = updatedByUserID
	it.UpdatedAt = time.Now()
	return nil
}

func (r *fakeItemRepo) Delete(_ context.Context, itemID string) error {
	if _, ok := r.s.items[itemID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.items, itemID)
	return nil
}

func (r *fakeItemRepo) DeleteByQuote(_ context.Context, quoteID string) error {
	for id, it := range r.s.items {
		if it.QuoteID == quoteID {
			delete(r.s.items, id)
		}
	}
	return nil
}

// fakeCatalogRepo implementa repository.CatalogRepository sobre o fakeStore.
type fakeCatalogRepo struct{ s *fakeStore }

var _ repository.CatalogRepository = (*fakeCatalogRepo)(nil)

func (r *fakeCatalogRepo) Upsert(_ context.Context, companyID, barcode, productName string) (bool, error) {
	key := catalogKey(companyID, barcode)
	now := time.Now()
	if p, ok := r.s.catalog[key]; ok {
		p.ProductName = productName
		p.LastUsedAt = now
		p.UpdatedAt = now
		return false, nil
	}
	r.s.catalog[key] = &entity.CatalogProduct{
		ID:          "cat-" + barcode,
		CompanyID:   companyID,
		Barcode:     barcode,
		ProductName: productName,
		LastUsedAt:  now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return true, nil
}

func (r *fakeCatalogRepo) TouchLastUsed(_ context.Context, companyID, barcode string) error {
	if p, ok := r.s.catalog[catalogKey(companyID, barcode)]; ok {
		p.LastUsedAt = time.Now()
	}
	return nil
}

func (r *fakeCatalogRepo) Lookup(_ context.Context, companyID, barcode string) (*entity.CatalogProduct, error) {
	p, ok := r.s.catalog[catalogKey(companyID, barcode)]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeCatalogRepo) ListByCompany(_ context.Context, companyID, search, sortKey string) ([]*entity.CatalogProduct, error) {
	var out []*entity.CatalogProduct
	for _, p := range r.s.catalog {
		if p.CompanyID != companyID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.ProductName), strings.ToLower(search)) && !strings.Contains(p.Barcode, search) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	switch sortKey {
	case repository.CatalogSortNameAsc:
		sort.Slice(out, func(i, j int) bool { return out[i].ProductName < out[j].ProductName })
	case repository.CatalogSortNameDesc:
		sort.Slice(out, func(i, j int) bool { return out[i].ProductName > out[j].ProductName })
	case repository.CatalogSortUpdatedDesc:
		sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	default:
		sort.Slice(out, func(i, j int) bool { return out[i].LastUsedAt.After(out[j].LastUsedAt) })
	}
	return out, nil
}

func (r *fakeCatalogRepo) UpdateName(_ context.Context, id, companyID, productName string) error {
	for _, p := range r.s.catalog {
		if p.ID == id && p.CompanyID == companyID {
			p.ProductName = productName
			p.UpdatedAt = time.Now()
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeShareRepo implementa repository.ShareRepository sobre o fakeStore.
type fakeShareRepo struct{ s *fakeStore }

var _ repository.ShareRepository = (*fakeShareRepo)(nil)

func (r *fakeShareRepo) Create(_ context.Context, share *entity.Share) error {
	cp := *share
	r.s.shares[share.Token] = &cp
	return nil
}

func (r *fakeShareRepo) GetByToken(_ context.Context, token string) (*entity.Share, error) {
	sh, ok := r.s.shares[token]
	if !ok {
		return nil, nil
	}
	cp := *sh
	return &cp, nil
}

func (r *fakeShareRepo) DeleteByQuote(_ context.Context, quoteID string) error {
	for tok, sh := range r.s.shares {
		if sh.QuoteID == quoteID {
			delete(r.s.shares, tok)
		}
	}
	return nil
}

// fakeTx implementa usecase.TxRunner executando o callback direto sobre os
// mesmos fakes (sem semântica transacional; os testes cobrem lógica, não
// atomicidade).
type fakeTx struct{ s *fakeStore }

var _ usecase.TxRunner = (*fakeTx)(nil)

func (t *fakeTx) Run(_ context.Context, fn func(
	quoteRepo repository.QuoteRepository,
	itemRepo repository.QuoteItemRepository,
	catalogRepo repository.CatalogRepository,
	shareRepo repository.ShareRepository,
) error) error {
	return fn(&fakeQuoteRepo{s: t.s}, &fakeItemRepo{s: t.s}, &fakeCatalogRepo{s: t.s}, &fakeShareRepo{s: t.s})
}

// ──────────────────────────────────────────────────────────────────────────────
// Montagem padrão dos testes
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store     *fakeStore
	quoteRepo *fakeQuoteRepo
	itemRepo  *fakeItemRepo
	catalog   *fakeCatalogRepo
	shares    *fakeShareRepo
	tx        *fakeTx
}

func newFixture() *fixture {
	s := newFakeStore()
	return &fixture{
		store:     s,
		quoteRepo: &fakeQuoteRepo{s: s},
		itemRepo:  &fakeItemRepo{s: s},
		catalog:   &fakeCatalogRepo{s: s},
		shares:    &fakeShareRepo{s: s},
		tx:        &fakeTx{s: s},
	}
}

func (f *fixture) seedQuote(id, companyID, userID, status string) *entity.Quote {
	now := time.Now()
	q := &entity.Quote{
		ID:        id,
		CompanyID: companyID,
		UserID:    userID,
		Title:     "Pedido " + id,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.store.quotes[id] = q
	return q
}

func (f *fixture) seedItem(id, quoteID, companyID, barcode string, qty int) *entity.QuoteItem {
	now := time.Now()
	it := &entity.QuoteItem{
		ID:          id,
		QuoteID:     quoteID,
		CompanyID:   companyID,
		Barcode:     barcode,
		ProductName: "Produto " + barcode,
		Quantity:    qty,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.store.items[id] = it
	return it
}
