package entity

import "time"

// Status possíveis de uma cotação. A transição é monotônica:
// open -> closed, sem reabertura.
const (
	QuoteStatusOpen   = "open"
	QuoteStatusClosed = "closed"
)

// Quote é uma lista de compras nomeada, dona de itens de código de barras.
// Pertence ao usuário que a criou; admins da mesma empresa enxergam todas.
type Quote struct {
	ID        string
	CompanyID string
	UserID    string // criador/dono
	Title     string
	Status    string // open, closed
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Closed informa se a cotação não aceita mais mutações.
func (q *Quote) Closed() bool {
	return q.Status == QuoteStatusClosed
}

// OwnedBy informa se o usuário é o dono da cotação.
func (q *Quote) OwnedBy(userID string) bool {
	return q.UserID == userID
}
