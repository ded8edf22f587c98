package entity

import "time"

// QuoteItem é uma linha código de barras + quantidade de uma cotação.
// Invariante: (QuoteID, Barcode) é único; adicionar o mesmo código soma a
// quantidade em vez de duplicar a linha. CompanyID é desnormalizado para
// consultas com escopo de tenant.
type QuoteItem struct {
	ID              string
	QuoteID         string
	CompanyID       string
	Barcode         string
	ProductName     string
	Quantity        int
	UpdatedByUserID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
