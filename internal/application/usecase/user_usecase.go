package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/smcotacoes/cotacoes-api/internal/application/dto"
	"github.com/smcotacoes/cotacoes-api/internal/domain"
	"github.com/smcotacoes/cotacoes-api/internal/domain/entity"
	"github.com/smcotacoes/cotacoes-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase gestão do quadro de funcionários pelo admin: criação,
// edição, ativação/desativação e redefinição de senha. Usuários nunca são
// removidos, só desativados.
type UserUseCase struct {
	userRepo   repository.UserRepository
	bcryptCost int
}

// NewUserUseCase constrói o caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, bcryptCost int) *UserUseCase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserUseCase{userRepo: userRepo, bcryptCost: bcryptCost}
}

// List lista os usuários da empresa.
func (uc *UserUseCase) List(ctx context.Context, companyID string) ([]dto.UserResponse, error) {
	list, err := uc.userRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Create cria um usuário na empresa do admin. Devolve ErrEmailAlreadyExists
// se o email já estiver cadastrado (constraint única global).
func (uc *UserUseCase) Create(ctx context.Context, companyID string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Role != entity.RoleAdmin && in.Role != entity.RoleEmployee {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// Update edita nome e email de um usuário da empresa.
func (uc *UserUseCase) Update(ctx context.Context, companyID, userID string, in dto.UpdateUserRequest) error {
	return uc.userRepo.UpdateProfile(ctx, userID, companyID, in.Name, in.Email)
}

// ToggleActive inverte o flag de ativação de um usuário da empresa.
func (uc *UserUseCase) ToggleActive(ctx context.Context, companyID, userID string) error {
	return uc.userRepo.ToggleActive(ctx, userID, companyID)
}

// ResetPassword redefine a senha de um usuário da empresa (ação de admin,
// sem exigir a senha atual).
func (uc *UserUseCase) ResetPassword(ctx context.Context, companyID, userID, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.bcryptCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(ctx, userID, companyID, string(hash))
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		CompanyID:   u.CompanyID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Active:      u.Active,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}
