package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User representa um usuário do sistema (pertence a uma Company).
// Usuários são desativados, nunca removidos.
type User struct {
	ID           string
	CompanyID    string
	Name         string
	Email        string // único global
	PasswordHash string // hash bcrypt, nunca em texto plano após persistir
	Role         string // admin, employee
	Active       bool
	LastLoginAt  *time.Time // nil = nunca logou
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
