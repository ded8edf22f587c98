package dto

import "time"

// CreateShareRequest entrada para gerar link de compartilhamento.
type CreateShareRequest struct {
	QuoteID string `json:"quoteId" validate:"required"`
}

// ShareResponse saída com o link público e sua validade.
type ShareResponse struct {
	ShareURL  string    `json:"shareUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ShareCSV payload resolvido de um token: nome de arquivo e conteúdo CSV.
type ShareCSV struct {
	Filename string
	Content  string
}
