package dto

import "time"

// CreateQuoteRequest entrada para criar cotação.
type CreateQuoteRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
	Notes string `json:"notes" validate:"omitempty,max=2000"`
}

// QuoteResponse saída de uma cotação. UserName só vem preenchido na
// listagem de admin (join com o criador).
type QuoteResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	UserName  string    `json:"userName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// QuoteDetailResponse cotação com seus itens.
type QuoteDetailResponse struct {
	QuoteResponse
	Items []QuoteItemResponse `json:"items"`
}

// QuoteItemResponse saída de um item de cotação.
type QuoteItemResponse struct {
	ID          string    `json:"id"`
	QuoteID     string    `json:"quoteId"`
	Barcode     string    `json:"barcode"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AddItemRequest entrada para adicionar (ou fundir) um item na cotação.
type AddItemRequest struct {
	Barcode       string `json:"barcode" validate:"required,numeric"`
	ProductName   string `json:"productName" validate:"required,min=1,max=300"`
	Quantity      int    `json:"quantity" validate:"required,gt=0"`
	SaveToCatalog bool   `json:"saveToCatalog"`
}

// AddItemResponse informa se a adição caiu numa linha existente (fusão).
type AddItemResponse struct {
	Success bool `json:"success"`
	Updated bool `json:"updated"`
}

// UpdateItemRequest edição de quantidade/nome de um item.
type UpdateItemRequest struct {
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	ProductName string `json:"productName" validate:"required,min=1,max=300"`
}
