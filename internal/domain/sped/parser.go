// Package sped interpreta o formato de exportação de inventário usado na
// importação em massa do catálogo. Só registros |0200| (cadastro de item)
// são aproveitados; o resto do arquivo é classificado, nunca abortado.
package sped

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Class classifica uma linha do arquivo de inventário.
type Class int

const (
	// ClassBlank linha em branco: não incrementa contador nenhum.
	ClassBlank Class = iota
	// ClassIgnored linha não aproveitável (registro de outro tipo, código de
	// barras fora do padrão EAN-13 ou nome vazio): conta em "ignorados".
	ClassIgnored
	// ClassProduct registro |0200| válido: conta em "encontrados".
	ClassProduct
)

// Record produto extraído de um registro |0200| válido.
type Record struct {
	ProductName string
	Barcode     string // exatamente 13 dígitos decimais
}

const recordTag = "|0200|"

var barcodePattern = regexp.MustCompile(`^\d{13}$`)

// ParseLine classifica uma linha e, quando é um registro de produto válido,
// extrai nome e código de barras.
//
// Layout do registro, após descartar os campos vazios do split em '|':
//
//	campo 0 = 0200 (tag)
//	campo 1 = COD_ITEM
//	campo 2 = NOME_PRODUTO
//	campo 3 = CODIGO_BARRAS
func ParseLine(line string) (Record, Class) {
	if strings.TrimSpace(line) == "" {
		return Record{}, ClassBlank
	}
	if !strings.HasPrefix(line, recordTag) {
		return Record{}, ClassIgnored
	}

	var fields []string
	for _, p := range strings.Split(line, "|") {
		if p != "" {
			fields = append(fields, p)
		}
	}
	if len(fields) < 4 {
		return Record{}, ClassIgnored
	}

	name := strings.TrimSpace(fields[2])
	barcode := strings.TrimSpace(fields[3])
	if name == "" || !barcodePattern.MatchString(barcode) {
		return Record{}, ClassIgnored
	}
	return Record{ProductName: name, Barcode: barcode}, ClassProduct
}

// DecodeText devolve o conteúdo do arquivo como UTF-8. Exportações SPED
// costumam vir em ISO-8859-1; se os bytes não formarem UTF-8 válido, o
// arquivo é reinterpretado como Latin-1.
func DecodeText(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(decoded)
}
