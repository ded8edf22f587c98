package sped

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLine_Registro0200Valido(t *testing.T) {
	rec, class := ParseLine("|0200|1|Widget|7891000100103|UN|")

	assert.Equal(t, ClassProduct, class)
	assert.Equal(t, "Widget", rec.ProductName)
	assert.Equal(t, "7891000100103", rec.Barcode)
}

func TestParseLine_NomeComEspacos_Trim(t *testing.T) {
	rec, class := ParseLine("|0200|42|  Coca-Cola 350ml  |7891000100103|")

	assert.Equal(t, ClassProduct, class)
	assert.Equal(t, "Coca-Cola 350ml", rec.ProductName)
}

func TestParseLine_CamposVaziosColapsados(t *testing.T) {
	// Split em '|' gera tokens vazios nas bordas e em campos sem valor;
	// os índices do layout valem depois de descartá-los.
	rec, class := ParseLine("|0200||15|Arroz Tio João 1kg|7891021001557||")

	assert.Equal(t, ClassProduct, class)
	assert.Equal(t, "Arroz Tio João 1kg", rec.ProductName)
	assert.Equal(t, "7891021001557", rec.Barcode)
}

func TestParseLine_CodigoDeBarrasCurto_Ignorado(t *testing.T) {
	// 11 dígitos não é EAN-13
	_, class := ParseLine("|0200|1|Widget|78910001001|")
	assert.Equal(t, ClassIgnored, class)
}

func TestParseLine_CodigoDeBarrasNaoNumerico_Ignorado(t *testing.T) {
	_, class := ParseLine("|0200|1|Widget|78910001001AB|")
	assert.Equal(t, ClassIgnored, class)
}

func TestParseLine_NomeVazio_Ignorado(t *testing.T) {
	_, class := ParseLine("|0200|1|   |7891000100103|junk|")
	assert.Equal(t, ClassIgnored, class)
}

func TestParseLine_RegistroDeOutroTipo_Ignorado(t *testing.T) {
	_, class := ParseLine("|0150|123|Fornecedor XYZ|")
	assert.Equal(t, ClassIgnored, class)
}

func TestParseLine_LinhaEmBranco_NaoConta(t *testing.T) {
	_, class := ParseLine("")
	assert.Equal(t, ClassBlank, class)

	_, class = ParseLine("   \t  ")
	assert.Equal(t, ClassBlank, class)
}

func TestParseLine_PoucosCampos_Ignorado(t *testing.T) {
	_, class := ParseLine("|0200|1|")
	assert.Equal(t, ClassIgnored, class)
}

func TestDecodeText_UTF8Passa(t *testing.T) {
	in := []byte("|0200|1|Pão de Açúcar|7891000100103|")
	assert.Equal(t, string(in), DecodeText(in))
}

func TestDecodeText_Latin1Convertido(t *testing.T) {
	// "Pão" em ISO-8859-1: 0xE3 é 'ã'
	in := []byte{'P', 0xE3, 'o'}
	assert.Equal(t, "Pão", DecodeText(in))
}
