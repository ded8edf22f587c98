// Package export concentra a serialização CSV usada pela resolução de
// compartilhamentos e pela exportação do catálogo: um único formato para
// todos os pontos de saída.
package export

import "strings"

// Cabeçalhos dos CSVs gerados (o cliente legado depende destes textos).
var (
	QuoteItemsHeader = []string{"Código de barras", "Nome do produto", "Quantidade a ser pedida"}
	CatalogHeader    = []string{"Código de barras", "Nome do produto", "Último uso", "Atualizado em"}
)

// RenderCSV serializa cabeçalho + linhas: campos unidos por vírgula, linhas
// por '\n', sem quebra final. Campos limpos saem byte a byte como no formato
// legado; um campo com vírgula, aspas ou quebra de linha sai entre aspas no
// estilo RFC 4180 para não corromper a linha.
func RenderCSV(header []string, rows [][]string) string {
	var b strings.Builder
	writeRow(&b, header)
	for _, row := range rows {
		b.WriteByte('\n')
		writeRow(&b, row)
	}
	return b.String()
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeField(f))
	}
}

// escapeField aplica o quoting mínimo: só envolve em aspas quando o campo
// contém vírgula, aspas ou quebra de linha.
func escapeField(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
