package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Cenário de compatibilidade: cotação "Hortifruti" com um item deve sair
// byte a byte no formato legado (sem aspas, sem quebra final).
func TestRenderCSV_FormatoLegadoByteABYte(t *testing.T) {
	got := RenderCSV(QuoteItemsHeader, [][]string{
		{"7891000100103", "Coca-Cola 350ml", "2"},
	})

	want := "Código de barras,Nome do produto,Quantidade a ser pedida\n" +
		"7891000100103,Coca-Cola 350ml,2"
	assert.Equal(t, want, got)
}

func TestRenderCSV_SemLinhas_SoCabecalho(t *testing.T) {
	got := RenderCSV(QuoteItemsHeader, nil)

	assert.Equal(t, "Código de barras,Nome do produto,Quantidade a ser pedida", got)
}

func TestRenderCSV_CampoComVirgula_EntreAspas(t *testing.T) {
	got := RenderCSV([]string{"a", "b"}, [][]string{
		{"7891000100103", "Biscoito, recheado"},
	})

	assert.Equal(t, "a,b\n7891000100103,\"Biscoito, recheado\"", got)
}

func TestRenderCSV_AspasDuplicadas(t *testing.T) {
	got := RenderCSV([]string{"n"}, [][]string{
		{`Suco "natural" 1L`},
	})

	assert.Equal(t, "n\n\"Suco \"\"natural\"\" 1L\"", got)
}

func TestRenderCSV_QuebraDeLinhaNoCampo(t *testing.T) {
	got := RenderCSV([]string{"n"}, [][]string{
		{"linha1\nlinha2"},
	})

	assert.Equal(t, "n\n\"linha1\nlinha2\"", got)
}
