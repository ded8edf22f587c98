// seed cria a empresa inicial e dois usuários de demonstração:
// admin@sm.com / admin123 (admin) e joao@sm.com / 123456 (employee).
//
// Uso: go run ./cmd/seed
// Idempotente: se o admin já existir, não faz nada.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/smcotacoes/cotacoes-api/internal/domain/entity"
	"github.com/smcotacoes/cotacoes-api/internal/infrastructure/postgres"
	"github.com/smcotacoes/cotacoes-api/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "carregar configuração: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexão ao PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "migração do schema: %v\n", err)
		os.Exit(1)
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	existing, err := userRepo.GetByEmail(ctx, "admin@sm.com")
	if err != nil {
		fmt.Fprintf(os.Stderr, "consultar admin: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Println("seed já aplicado, nada a fazer")
		return
	}

	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      "Empresa Matriz",
		CreatedAt: now,
	}
	if err := companyRepo.Create(ctx, company); err != nil {
		fmt.Fprintf(os.Stderr, "criar empresa: %v\n", err)
		os.Exit(1)
	}

	users := []struct {
		name, email, password, role string
	}{
		{"Administrador", "admin@sm.com", "admin123", entity.RoleAdmin},
		{"João Silva", "joao@sm.com", "123456", entity.RoleEmployee},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), cfg.Auth.BcryptCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hash de senha: %v\n", err)
			os.Exit(1)
		}
		user := &entity.User{
			ID:           uuid.New().String(),
			CompanyID:    company.ID,
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
			Active:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			fmt.Fprintf(os.Stderr, "criar usuário %s: %v\n", u.email, err)
			os.Exit(1)
		}
		fmt.Printf("usuário criado: %s (%s)\n", u.email, u.role)
	}

	fmt.Printf("empresa criada: %s (%s)\n", company.Name, company.ID)
}
