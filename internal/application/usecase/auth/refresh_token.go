package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// RefreshTokenInput carries the refresh token being exchanged.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenOutput is the rotated token pair.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// RefreshTokenUseCase rotates a refresh token. The presented token is
// revoked and can never be exchanged again.
type RefreshTokenUseCase struct {
	users  adapter.UserRepository
	tokens adapter.TokenService
}

// NewRefreshTokenUseCase creates a new RefreshTokenUseCase instance.
func NewRefreshTokenUseCase(users adapter.UserRepository, tokens adapter.TokenService) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		users:  users,
		tokens: tokens,
	}
}

// Execute validates, revokes and reissues. Tokens of owners that no longer
// exist are rejected.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error) {
	claims, err := uc.tokens.ValidateRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, rejectedToken("invalid or expired refresh token")
	}

	live, err := uc.tokens.IsRefreshTokenValid(ctx, input.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if !live {
		return nil, rejectedToken("refresh token has been revoked")
	}

	if _, err := uc.users.FindByID(ctx, claims.UserID); err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, rejectedToken("refresh token owner no longer exists")
		}
		return nil, fmt.Errorf("failed to load token owner: %w", err)
	}

	if err := uc.tokens.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	pair, err := uc.tokens.GenerateTokenPair(ctx, claims.UserID, claims.Email, false)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens for %s: %w", claims.UserID, err)
	}

	return &RefreshTokenOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, nil
}

func rejectedToken(message string) error {
	return domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, message, domainerror.ErrInvalidToken)
}
