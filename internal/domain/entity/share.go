package entity

import "time"

// Share é uma capability pública e temporária para baixar o CSV de uma
// cotação. O token é aleatório (128 bits) e único; o ciclo de vida é
// independente da cotação, exceto pela remoção em cascata no delete.
type Share struct {
	ID        string
	QuoteID   string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired informa se o link já venceu em relação a now.
func (s *Share) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
