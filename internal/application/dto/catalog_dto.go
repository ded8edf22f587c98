package dto

import "time"

// CatalogLookupResponse resultado do autofill por código de barras.
type CatalogLookupResponse struct {
	ProductName string `json:"productName"`
}

// CatalogProductResponse saída de uma entrada do catálogo.
type CatalogProductResponse struct {
	ID          string    `json:"id"`
	Barcode     string    `json:"barcode"`
	ProductName string    `json:"productName"`
	LastUsedAt  time.Time `json:"lastUsedAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// UpdateCatalogRequest edição curada do nome de um produto.
type UpdateCatalogRequest struct {
	ProductName string `json:"productName" validate:"required,min=1,max=300"`
}

// ImportSummaryResponse contadores da importação SPED. Os nomes JSON são
// os que o cliente web já consome.
type ImportSummaryResponse struct {
	Found    int `json:"totalEncontrados"`
	Inserted int `json:"inseridos"`
	Updated  int `json:"atualizados"`
	Ignored  int `json:"ignorados"`
}
