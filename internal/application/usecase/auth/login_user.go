package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// LoginUserInput carries the credentials of a login attempt.
type LoginUserInput struct {
	Email      string
	Password   string
	RememberMe bool
}

// LoginUserOutput is the token pair issued for the owner.
type LoginUserOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// LoginUserUseCase exchanges an owner's credentials for a token pair.
type LoginUserUseCase struct {
	users     adapter.UserRepository
	passwords adapter.PasswordService
	tokens    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	users adapter.UserRepository,
	passwords adapter.PasswordService,
	tokens adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
	}
}

// Execute checks the credentials. Unknown emails and wrong passwords fail
// with the same error.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	owner, err := uc.users.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		return nil, invalidCredentials("invalid email or password")
	}
	if err := uc.passwords.VerifyPassword(owner.PasswordHash, input.Password); err != nil {
		return nil, invalidCredentials("invalid email or password")
	}

	pair, err := uc.tokens.GenerateTokenPair(ctx, owner.ID, owner.Email, input.RememberMe)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens for %s: %w", owner.ID, err)
	}

	return &LoginUserOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         owner,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func invalidCredentials(message string) error {
	return domainerror.NewAuthError(domainerror.ErrCodeInvalidCredentials, message, domainerror.ErrInvalidCredentials)
}
