package auth

import (
	"context"

	"github.com/smcotacoes/cotacoes-api/internal/application/dto"
	"github.com/smcotacoes/cotacoes-api/internal/domain"
	"github.com/smcotacoes/cotacoes-api/internal/domain/repository"
	"github.com/smcotacoes/cotacoes-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuração para emissão de sessões.
type JWTConfig struct {
	Secret      string
	SessionDays int
	Issuer      string
}

// Hash bcrypt fixo comparado quando o email não existe ou a conta está
// inativa: a falha demora o mesmo que uma senha errada e a resposta é a
// mesma, sem sinal de enumeração de usuários.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// UseCase casos de uso de autenticação: login e troca de senha.
type UseCase struct {
	userRepo   repository.UserRepository
	jwtCfg     JWTConfig
	bcryptCost int
}

// NewUseCase constrói o caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, bcryptCost int) *UseCase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg, bcryptCost: bcryptCost}
}

// Login verifica email/senha e emite o token de sessão. Email desconhecido,
// conta inativa e senha errada falham todos com ErrInvalidCredentials.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(in.Password))
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// Melhor esforço: o carimbo de último login não deve derrubar o login.
	_ = uc.userRepo.TouchLastLogin(ctx, user.ID)

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.CompanyID, user.Role, user.Name, uc.jwtCfg.Issuer, uc.jwtCfg.SessionDays)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		ID:        user.ID,
		Name:      user.Name,
		Role:      user.Role,
		CompanyID: user.CompanyID,
		Token:     token,
	}, nil
}

// ChangePassword troca a senha do próprio usuário, exigindo a senha atual.
func (uc *UseCase) ChangePassword(ctx context.Context, actor dto.Actor, in dto.ChangePasswordRequest) error {
	user, err := uc.userRepo.GetByIDAndCompany(ctx, actor.UserID, actor.CompanyID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), uc.bcryptCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(ctx, actor.UserID, actor.CompanyID, string(hash))
}
