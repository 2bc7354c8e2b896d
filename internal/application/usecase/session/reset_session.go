package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// ResetSessionInput represents the input for dropping the cached session.
type ResetSessionInput struct {
	UserID uuid.UUID
}

// ResetSessionUseCase drops the cached session state. Persisted data,
// including the exclusion ledger, is untouched.
type ResetSessionUseCase struct {
	store adapter.SessionStore
}

// NewResetSessionUseCase creates a new ResetSessionUseCase instance.
func NewResetSessionUseCase(store adapter.SessionStore) *ResetSessionUseCase {
	return &ResetSessionUseCase{
		store: store,
	}
}

// Execute clears the cache.
func (uc *ResetSessionUseCase) Execute(ctx context.Context, input ResetSessionInput) error {
	if err := uc.store.Clear(ctx, input.UserID); err != nil {
		return domainerror.NewSessionError(
			domainerror.ErrCodeSessionStore,
			"failed to reset session",
			err,
		)
	}
	return nil
}
