package dto

import "time"

// CreateUserRequest entrada para criar usuário (admin; senha em texto,
// o hash acontece no caso de uso).
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin employee"`
}

// UpdateUserRequest edição de nome/email pelo admin.
type UpdateUserRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest redefinição de senha pelo admin.
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// UserResponse saída de um usuário (sem hash de senha).
type UserResponse struct {
	ID          string     `json:"id"`
	CompanyID   string     `json:"companyId"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Active      bool       `json:"active"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
