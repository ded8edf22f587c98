package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smcotacoes/cotacoes-api/internal/application/usecase"
	"github.com/smcotacoes/cotacoes-api/internal/domain/repository"
)

func newCatalogUC(f *fixture) *usecase.CatalogUseCase {
	return usecase.NewCatalogUseCase(f.catalog, f.tx)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lookup: catálogo primeiro, demo como fallback
// ──────────────────────────────────────────────────────────────────────────────

func TestLookup_CatalogoDaEmpresaTemPrioridade(t *testing.T) {
	f := newFixture()
	uc := newCatalogUC(f)
	ctx := context.Background()

	_, err := f.catalog.Upsert(ctx, "c1", "7891000100103", "Coca Gelada da Esquina")
	require.NoError(t, err)

	out, err := uc.Lookup(ctx, "c1", "7891000100103")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Coca Gelada da Esquina", out.ProductName, "nome curado da empresa vence o dicionário de demonstração")
}

func TestLookup_FallbackParaDicionarioDemo(t *testing.T) {
	f := newFixture()
	uc := newCatalogUC(f)

	out, err := uc.Lookup(context.Background(), "c1", "7891000100103")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "Coca-Cola 350ml", out.ProductName)
}

func TestLookup_DesconhecidoDevolveNil(t *testing.T) {
	f := newFixture()
	uc := newCatalogUC(f)

	out, err := uc.Lookup(context.Background(), "c1", "9999999999999")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestLookup_CatalogoDeOutraEmpresaNaoVaza(t *testing.T) {
	f := newFixture()
	uc := newCatalogUC(f)
	ctx := context.Background()

	_, err := f.catalog.Upsert(ctx, "c2", "1112223334445", "Produto da Outra")
	require.NoError(t, err)

	out, err := uc.Lookup(ctx, "c1", "1112223334445")
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Importação SPED
// ──────────────────────────────────────────────────────────────────────────────

func TestBulkImport_ContadoresPorClasseDeLinha(t *testing.T) {
	f := newFixture()
	uc := newCatalogUC(f)
	ctx := context.Background()

	file := strings.Join([]string{
		"|0000|LECD|01012024|31122024|EMPRESA DEMO|",   // outro registro: ignorado
		"",                                             // em branco: não conta
		"|0200|COD1|Coca-Cola 350ml|7891000100103|UN|", // válido
		"|0200|COD2|Arroz Tio João 1kg|7891021001557|UN|", // válido
		"|0200|COD3|Sem código||UN|",                   // |0200| sem barcode: ignorado
		"|0200|COD4|Código curto|123|UN|",              // barcode != 13 dígitos: ignorado
		"linha solta sem pipe",                         // não-SPED: ignorado
		"   ",                                          // só espaços: não conta
	}, "\n")

	out, err := uc.BulkImport(ctx, "c1", []byte(file))
	require.NoError(t, err)

	assert.Equal(t, 2, out.Found)
	assert.Equal(t, 2, out.Inserted)
	assert.Equal(t, 0, out.Updated)
	assert.Equal(t, 4, out.Ignored)

	p, err := f.catalog.Lookup(ctx, "c1", "7891000100103")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Coca-Cola 350ml", p.ProductName)
}

func TestBulkImport_ReimportacaoContaComoAtualizado(t *testing.T) {
	f := newFixture()
	uc := newCatalogUC(f)
	ctx := context.Background()

	file := "|0200|COD1|Coca-Cola 350ml|7891000100103|UN|"

	first, err := uc.BulkImport(ctx, "c1", []byte(file))
	require.NoError(t, err)
	assert.Equal(t, 1, first.Inserted)
	assert.Equal(t, 0, first.Updated)

	second, err := uc.BulkImport(ctx, "c1", []byte(file))
	require.NoError(t, err)
	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, 1, second.Updated)
}

func TestBulkImport_ArquivoISO88591(t *testing.T) {
	f := newFixture()
	uc := newCatalogUC(f)
	ctx := context.Background()

	// "Açúcar" com ç (0xE7) e ú (0xFA) em ISO-8859-1, inválido como UTF-8.
	line := []byte("|0200|COD1|A\xe7\xfacar Cristal 1kg|7891910000197|UN|")

	out, err := uc.BulkImport(ctx, "c1", line)
	require.NoError(t, err)
	require.Equal(t, 1, out.Inserted)

	p, err := f.catalog.Lookup(ctx, "c1", "7891910000197")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Açúcar Cristal 1kg", p.ProductName)
}

func TestBulkImport_QuebrasDeLinhaWindows(t *testing.T) {
	f := newFixture()
	uc := newCatalogUC(f)

	file := "|0200|COD1|Coca-Cola 350ml|7891000100103|UN|\r\n|0200|COD2|Nescau 400g|7891000053508|UN|\r\n"

	out, err := uc.BulkImport(context.Background(), "c1", []byte(file))
	require.NoError(t, err)
	assert.Equal(t, 2, out.Found)
	assert.Equal(t, 2, out.Inserted)
	assert.Equal(t, 0, out.Ignored)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listagem e exportação
// ──────────────────────────────────────────────────────────────────────────────

func TestList_BuscaPorNomeOuCodigo(t *testing.T) {
	f := newFixture()
	uc := newCatalogUC(f)
	ctx := context.Background()

	_, _ = f.catalog.Upsert(ctx, "c1", "7891000100103", "Coca-Cola 350ml")
	_, _ = f.catalog.Upsert(ctx, "c1", "7891021001557", "Arroz Tio João 1kg")

	porNome, err := uc.List(ctx, "c1", "coca", "")
	require.NoError(t, err)
	require.Len(t, porNome, 1)
	assert.Equal(t, "Coca-Cola 350ml", porNome[0].ProductName)

	porCodigo, err := uc.List(ctx, "c1", "7891021001557", "")
	require.NoError(t, err)
	require.Len(t, porCodigo, 1)
	assert.Equal(t, "Arroz Tio João 1kg", porCodigo[0].ProductName)
}

func TestList_OrdenacaoPorNome(t *testing.T) {
	f := newFixture()
	uc := newCatalogUC(f)
	ctx := context.Background()

	_, _ = f.catalog.Upsert(ctx, "c1", "7891000100103", "Coca-Cola 350ml")
	_, _ = f.catalog.Upsert(ctx, "c1", "7891021001557", "Arroz Tio João 1kg")

	out, err := uc.List(ctx, "c1", "", repository.CatalogSortNameAsc)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Arroz Tio João 1kg", out[0].ProductName)
}

func TestExportCSV_CabecalhoEFormato(t *testing.T) {
	f := newFixture()
	uc := newCatalogUC(f)
	ctx := context.Background()

	_, _ = f.catalog.Upsert(ctx, "c1", "7891000100103", "Coca-Cola 350ml")

	csv, err := uc.ExportCSV(ctx, "c1")
	require.NoError(t, err)

	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Código de barras,Nome do produto,Último uso,Atualizado em", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "7891000100103,Coca-Cola 350ml,"))
	assert.False(t, strings.HasSuffix(csv, "\n"), "exportação sem quebra de linha final")
}

func TestUpdateName_ProdutoInexistente(t *testing.T) {
	f := newFixture()
	uc := newCatalogUC(f)

	err := uc.UpdateName(context.Background(), "c1", "nao-existe", "Novo Nome")
	assert.Error(t, err)
}
