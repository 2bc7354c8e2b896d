package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenPair is what login, register and refresh hand back to the client.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenClaims identifies the owner a token was issued to. Every ledger,
// rule and budget query is scoped by UserID.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// AccessTokenVerifier resolves a bearer token to its owner. It is all the
// request middleware needs.
type AccessTokenVerifier interface {
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}

// TokenService issues and revokes session tokens. Refresh tokens are
// single use: a refresh revokes the presented token before issuing a pair.
type TokenService interface {
	AccessTokenVerifier

	// GenerateTokenPair issues a pair; rememberMe stretches the refresh lifetime.
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string, rememberMe bool) (*TokenPair, error)
	ValidateRefreshToken(ctx context.Context, token string) (*TokenClaims, error)
	InvalidateRefreshToken(ctx context.Context, token string) error
	// IsRefreshTokenValid is false once the token was revoked by logout or refresh.
	IsRefreshTokenValid(ctx context.Context, token string) (bool, error)
}
