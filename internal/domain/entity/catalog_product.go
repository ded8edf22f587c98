package entity

import "time"

// CatalogProduct é o dicionário código de barras -> nome por empresa,
// alimentado pelo uso interativo e pela importação SPED.
// (CompanyID, Barcode) é único.
type CatalogProduct struct {
	ID          string
	CompanyID   string
	Barcode     string
	ProductName string
	LastUsedAt  time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
