package repository

import (
	"context"

	"github.com/smcotacoes/cotacoes-api/internal/domain/entity"
)

// CompanyRepository define o porto de persistência para Company (DIP).
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
}
