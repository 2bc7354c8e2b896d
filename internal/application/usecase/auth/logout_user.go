package auth

import (
	"context"
	"log/slog"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
)

// LogoutUserInput carries the refresh token of the session being closed.
type LogoutUserInput struct {
	RefreshToken string
}

// LogoutUserOutput reports whether a live session was closed.
type LogoutUserOutput struct {
	SessionClosed bool
}

// LogoutUserUseCase ends an owner's session: the refresh token is revoked
// and the cached session state (selected month and ledger mirror) dropped,
// so the next login starts from storage.
type LogoutUserUseCase struct {
	tokens   adapter.TokenService
	sessions adapter.SessionStore
	logger   *slog.Logger
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokens adapter.TokenService, sessions adapter.SessionStore, logger *slog.Logger) *LogoutUserUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogoutUserUseCase{
		tokens:   tokens,
		sessions: sessions,
		logger:   logger,
	}
}

// Execute never fails: logging out with an unknown or expired token is a no-op.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	claims, err := uc.tokens.ValidateRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return &LogoutUserOutput{}, nil
	}

	if err := uc.tokens.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		uc.logger.Warn("Failed to revoke refresh token on logout", "user_id", claims.UserID, "error", err)
	}
	if err := uc.sessions.Clear(ctx, claims.UserID); err != nil {
		uc.logger.Warn("Failed to clear session cache on logout", "user_id", claims.UserID, "error", err)
	}

	return &LogoutUserOutput{SessionClosed: true}, nil
}
