package repository

import (
	"context"

	"github.com/smcotacoes/cotacoes-api/internal/domain/entity"
)

// UserRepository define o porto de persistência para User (DIP).
//
// Os métodos de escrita recebem companyID e aplicam o filtro de tenant na
// própria query (WHERE id = ... AND company_id = ...); zero linhas afetadas
// vira domain.ErrNotFound para não confirmar a existência de dados alheios.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByIDAndCompany(ctx context.Context, id, companyID string) (*entity.User, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.User, error)
	UpdateProfile(ctx context.Context, id, companyID, name, email string) error
	UpdatePassword(ctx context.Context, id, companyID, passwordHash string) error
	ToggleActive(ctx context.Context, id, companyID string) error
	TouchLastLogin(ctx context.Context, id string) error
}
