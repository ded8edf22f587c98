package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smcotacoes/cotacoes-api/internal/application/dto"
	"github.com/smcotacoes/cotacoes-api/internal/application/usecase"
	"github.com/smcotacoes/cotacoes-api/internal/domain"
	"github.com/smcotacoes/cotacoes-api/internal/domain/entity"
)

var (
	adminAtor    = dto.Actor{UserID: "u-admin", CompanyID: "c1", Role: "admin", Name: "Admin"}
	joaoAtor     = dto.Actor{UserID: "u-joao", CompanyID: "c1", Role: "employee", Name: "João"}
	mariaAtor    = dto.Actor{UserID: "u-maria", CompanyID: "c1", Role: "employee", Name: "Maria"}
	outraEmpresa = dto.Actor{UserID: "u-x", CompanyID: "c2", Role: "admin", Name: "X"}
)

func newQuoteUC(f *fixture) *usecase.QuoteUseCase {
	return usecase.NewQuoteUseCase(f.quoteRepo, f.itemRepo, f.tx)
}

// ──────────────────────────────────────────────────────────────────────────────
// Criação e listagem
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_CotacaoNasceAbertaComDono(t *testing.T) {
	f := newFixture()
	uc := newQuoteUC(f)

	out, err := uc.Create(context.Background(), joaoAtor, dto.CreateQuoteRequest{Title: "Pedido da semana"})
	require.NoError(t, err)

	assert.Equal(t, entity.QuoteStatusOpen, out.Status)
	assert.Equal(t, joaoAtor.UserID, out.UserID)
	assert.Equal(t, joaoAtor.CompanyID, out.CompanyID)
}

func TestCreate_TituloVazioRejeitado(t *testing.T) {
	f := newFixture()
	uc := newQuoteUC(f)

	_, err := uc.Create(context.Background(), joaoAtor, dto.CreateQuoteRequest{Title: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_AdminVeTodasEmployeeSoAsProprias(t *testing.T) {
	f := newFixture()
	f.store.userName["u-joao"] = "João"
	f.store.userName["u-maria"] = "Maria"
	f.seedQuote("q1", "c1", "u-joao", entity.QuoteStatusOpen)
	f.seedQuote("q2", "c1", "u-maria", entity.QuoteStatusOpen)
	f.seedQuote("q3", "c2", "u-x", entity.QuoteStatusOpen)
	uc := newQuoteUC(f)

	adminList, err := uc.List(context.Background(), adminAtor)
	require.NoError(t, err)
	assert.Len(t, adminList, 2, "admin vê todas as cotações da própria empresa")
	for _, q := range adminList {
		assert.NotEmpty(t, q.UserName, "a listagem de admin inclui o nome do criador")
	}

	joaoList, err := uc.List(context.Background(), joaoAtor)
	require.NoError(t, err)
	require.Len(t, joaoList, 1)
	assert.Equal(t, "q1", joaoList[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Posse e isolamento entre empresas
// ──────────────────────────────────────────────────────────────────────────────

func TestGet_CotacaoDeOutraEmpresaRespondeNotFound(t *testing.T) {
	f := newFixture()
	f.seedQuote("q1", "c1", "u-joao", entity.QuoteStatusOpen)
	uc := newQuoteUC(f)

	_, err := uc.Get(context.Background(), outraEmpresa, "q1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "outra empresa não descobre que a cotação existe")
}

func TestGet_EmployeeNaoDonoRespondeForbidden(t *testing.T) {
	f := newFixture()
	f.seedQuote("q1", "c1", "u-joao", entity.QuoteStatusOpen)
	uc := newQuoteUC(f)

	_, err := uc.Get(context.Background(), mariaAtor, "q1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGet_AdminAcessaCotacaoDeEmployee(t *testing.T) {
	f := newFixture()
	f.seedQuote("q1", "c1", "u-joao", entity.QuoteStatusOpen)
	f.seedItem("i1", "q1", "c1", "7891000100103", 2)
	uc := newQuoteUC(f)

	out, err := uc.Get(context.Background(), adminAtor, "q1")
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// AddItem: fusão por código de barras e reflexo no catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_MesmoCodigoSomaQuantidade(t *testing.T) {
	f := newFixture()
	f.seedQuote("q1", "c1", "u-joao", entity.QuoteStatusOpen)
	uc := newQuoteUC(f)
	ctx := context.Background()

	first, err := uc.AddItem(ctx, joaoAtor, "q1", dto.AddItemRequest{Barcode: "7891000100103", ProductName: "Coca-Cola 350ml", Quantity: 2})
	require.NoError(t, err)
	assert.False(t, first.Updated, "primeira adição cria a linha")

	second, err := uc.AddItem(ctx, joaoAtor, "q1", dto.AddItemRequest{Barcode: "7891000100103", ProductName: "Coca-Cola 350ml", Quantity: 3})
	require.NoError(t, err)
	assert.True(t, second.Updated, "segunda adição funde na linha existente")

	items, err := f.itemRepo.ListByQuote(ctx, "q1")
	require.NoError(t, err)
	require.Len(t, items, 1, "o mesmo código nunca duplica linha")
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddItem_SaveToCatalogGravaNome(t *testing.T) {
	f := newFixture()
	f.seedQuote("q1", "c1", "u-joao", entity.QuoteStatusOpen)
	uc := newQuoteUC(f)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, joaoAtor, "q1", dto.AddItemRequest{Barcode: "7891000100103", ProductName: "Coca-Cola 350ml", Quantity: 1, SaveToCatalog: true})
	require.NoError(t, err)

	p, err := f.catalog.Lookup(ctx, "c1", "7891000100103")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Coca-Cola 350ml", p.ProductName)
}

func TestAddItem_SemSaveToCatalogNaoCriaEntrada(t *testing.T) {
	f := newFixture()
	f.seedQuote("q1", "c1", "u-joao", entity.QuoteStatusOpen)
	uc := newQuoteUC(f)
	ctx := context.Background()

	_, err := uc.AddItem(ctx, joaoAtor, "q1", dto.AddItemRequest{Barcode: "7891000100103", ProductName: "Nome digitado", Quantity: 1})
	require.NoError(t, err)

	p, err := f.catalog.Lookup(ctx, "c1", "7891000100103")
	require.NoError(t, err)
	assert.Nil(t, p, "scan sem saveToCatalog não escreve nome no catálogo")
}

func TestAddItem_CotacaoFechadaRejeita(t *testing.T) {
	f := newFixture()
	f.seedQuote("q1", "c1", "u-joao", entity.QuoteStatusClosed)
	uc := newQuoteUC(f)

	_, err := uc.AddItem(context.Background(), joaoAtor, "q1", dto.AddItemRequest{Barcode: "7891000100103", ProductName: "Coca-Cola 350ml", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrQuoteClosed)
}

func TestAddItem_EntradaInvalida(t *testing.T) {
	f := newFixture()
	f.seedQuote("q1", "c1", "u-joao", entity.QuoteStatusOpen)
	uc := newQuoteUC(f)
	ctx := context.Background()

	casos := []dto.AddItemRequest{
		{Barcode: "abc123", ProductName: "Produto", Quantity: 1},       // código não numérico
		{Barcode: "7891000100103", ProductName: "", Quantity: 1},       // nome vazio
		{Barcode: "7891000100103", ProductName: "Produto", Quantity: 0}, // quantidade zero
	}
	for _, in := range casos {
		_, err := uc.AddItem(ctx, joaoAtor, "q1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Finalização e remoção
// ──────────────────────────────────────────────────────────────────────────────

func TestFinalize_FechaEIdempotente(t *testing.T) {
	f := newFixture()
	f.seedQuote("q1", "c1", "u-joao", entity.QuoteStatusOpen)
	uc := newQuoteUC(f)
	ctx := context.Background()

	require.NoError(t, uc.Finalize(ctx, joaoAtor, "q1"))
	assert.Equal(t, entity.QuoteStatusClosed, f.store.quotes["q1"].Status)

	// Finalizar de novo não é erro: fechado não tem para onde transicionar.
	require.NoError(t, uc.Finalize(ctx, joaoAtor, "q1"))
}

func TestDelete_RemoveItensESharesEmCascata(t *testing.T) {
	f := newFixture()
	f.seedQuote("q1", "c1", "u-joao", entity.QuoteStatusOpen)
	f.seedItem("i1", "q1", "c1", "7891000100103", 2)
	f.seedItem("i2", "q1", "c1", "7891021001557", 1)
	f.store.shares["tok123"] = &entity.Share{ID: "s1", QuoteID: "q1", Token: "tok123"}
	uc := newQuoteUC(f)

	require.NoError(t, uc.Delete(context.Background(), joaoAtor, "q1"))

	assert.Empty(t, f.store.quotes)
	assert.Empty(t, f.store.items)
	assert.Empty(t, f.store.shares)
}

// ──────────────────────────────────────────────────────────────────────────────
// Itens: edição e remoção com checagem via cotação pai
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateItem_CotacaoFechadaRejeita(t *testing.T) {
	f := newFixture()
	f.seedQuote("q1", "c1", "u-joao", entity.QuoteStatusClosed)
	f.seedItem("i1", "q1", "c1", "7891000100103", 2)
	uc := newQuoteUC(f)

	err := uc.UpdateItem(context.Background(), joaoAtor, "i1", dto.UpdateItemRequest{Quantity: 5, ProductName: "Coca-Cola 350ml"})
	assert.ErrorIs(t, err, domain.ErrQuoteClosed)
}

func TestUpdateItem_EmployeeNaoDonoRejeitado(t *testing.T) {
	f := newFixture()
	f.seedQuote("q1", "c1", "u-joao", entity.QuoteStatusOpen)
	f.seedItem("i1", "q1", "c1", "7891000100103", 2)
	uc := newQuoteUC(f)

	err := uc.UpdateItem(context.Background(), mariaAtor, "i1", dto.UpdateItemRequest{Quantity: 5, ProductName: "Coca-Cola 350ml"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateItem_AdminEditaItemDeEmployee(t *testing.T) {
	f := newFixture()
	f.seedQuote("q1", "c1", "u-joao", entity.QuoteStatusOpen)
	f.seedItem("i1", "q1", "c1", "7891000100103", 2)
	uc := newQuoteUC(f)

	require.NoError(t, uc.UpdateItem(context.Background(), adminAtor, "i1", dto.UpdateItemRequest{Quantity: 9, ProductName: "Coca-Cola Lata"}))
	assert.Equal(t, 9, f.store.items["i1"].Quantity)
	assert.Equal(t, "Coca-Cola Lata", f.store.items["i1"].ProductName)
}

func TestDeleteItem_OutraEmpresaRespondeNotFound(t *testing.T) {
	f := newFixture()
	f.seedQuote("q1", "c1", "u-joao", entity.QuoteStatusOpen)
	f.seedItem("i1", "q1", "c1", "7891000100103", 2)
	uc := newQuoteUC(f)

	err := uc.DeleteItem(context.Background(), outraEmpresa, "i1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteItem_DonoRemove(t *testing.T) {
	f := newFixture()
	f.seedQuote("q1", "c1", "u-joao", entity.QuoteStatusOpen)
	f.seedItem("i1", "q1", "c1", "7891000100103", 2)
	uc := newQuoteUC(f)

	require.NoError(t, uc.DeleteItem(context.Background(), joaoAtor, "i1"))
	assert.Empty(t, f.store.items)
}
