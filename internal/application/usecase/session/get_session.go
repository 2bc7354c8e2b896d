// Package session contains the per-user application state use cases: the
// selected month and the cached exclusion ledger.
package session

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/prediction"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// GetSessionInput represents the input for loading the session.
type GetSessionInput struct {
	UserID uuid.UUID
}

// GetSessionOutput represents the loaded session state.
type GetSessionOutput struct {
	State *entity.SessionState
}

// GetSessionUseCase loads the session state, warming the cache on a miss.
type GetSessionUseCase struct {
	store  adapter.SessionStore
	ledger *prediction.Ledger
	clock  adapter.Clock
	logger *slog.Logger
}

// NewGetSessionUseCase creates a new GetSessionUseCase instance.
func NewGetSessionUseCase(store adapter.SessionStore, ledger *prediction.Ledger, clock adapter.Clock, logger *slog.Logger) *GetSessionUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &GetSessionUseCase{
		store:  store,
		ledger: ledger,
		clock:  clock,
		logger: logger,
	}
}

// Execute loads the selected month (default: current month) and the ledger.
func (uc *GetSessionUseCase) Execute(ctx context.Context, input GetSessionInput) (*GetSessionOutput, error) {
	month, ok, err := uc.store.GetSelectedMonth(ctx, input.UserID)
	if err != nil {
		uc.logger.Warn("session cache read failed",
			"owner_id", input.UserID.String(),
			"error", err.Error(),
		)
	}
	if err != nil || !ok {
		month = valueobject.MonthOf(uc.clock.Now())
	}

	exclusions, err := uc.ledger.Load(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{
		State: entity.NewSessionState(input.UserID, month, exclusions),
	}, nil
}
