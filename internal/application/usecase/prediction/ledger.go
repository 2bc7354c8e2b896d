// Package prediction contains the use cases that read and reconcile
// predicted transactions.
package prediction

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// Ledger reads the exclusion ledger through the session cache and keeps the
// cache consistent with the repository after every mutation.
type Ledger struct {
	repo   adapter.ExclusionRepository
	store  adapter.SessionStore
	logger *slog.Logger
}

// NewLedger creates a new Ledger instance.
func NewLedger(repo adapter.ExclusionRepository, store adapter.SessionStore, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		repo:   repo,
		store:  store,
		logger: logger,
	}
}

// Load returns the user's ledger, from the cache when warm.
func (l *Ledger) Load(ctx context.Context, userID uuid.UUID) (valueobject.ExclusionSet, error) {
	set, ok, err := l.store.GetExclusions(ctx, userID)
	if err != nil {
		l.logger.Warn("session cache read failed, falling back to database",
			"owner_id", userID.String(),
			"error", err.Error(),
		)
	}
	if err == nil && ok {
		return set, nil
	}

	return l.Refresh(ctx, userID)
}

// Refresh reloads the ledger from the repository and rewrites the cache.
func (l *Ledger) Refresh(ctx context.Context, userID uuid.UUID) (valueobject.ExclusionSet, error) {
	set, err := l.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, domainerror.NewPersistenceError("load exclusion ledger", err)
	}

	if err := l.store.SetExclusions(ctx, userID, set); err != nil {
		l.logger.Warn("failed to refresh session cache",
			"owner_id", userID.String(),
			"error", err.Error(),
		)
		// A stale mirror must not survive; the next Load goes to the database.
		if clearErr := l.store.Clear(ctx, userID); clearErr != nil {
			l.logger.Error("failed to drop stale session cache",
				"owner_id", userID.String(),
				"error", clearErr.Error(),
			)
		}
	}
	return set, nil
}

// Exclude persists key in the ledger and returns the refreshed ledger.
func (l *Ledger) Exclude(ctx context.Context, userID uuid.UUID, key valueobject.PredictionKey) (valueobject.ExclusionSet, error) {
	if err := l.repo.Add(ctx, userID, key); err != nil {
		return nil, domainerror.NewPersistenceError("add exclusion", err)
	}
	return l.Refresh(ctx, userID)
}

// Restore removes key from the ledger. It reports whether the key was present.
func (l *Ledger) Restore(ctx context.Context, userID uuid.UUID, key valueobject.PredictionKey) (bool, valueobject.ExclusionSet, error) {
	removed, err := l.repo.Remove(ctx, userID, key)
	if err != nil {
		return false, nil, domainerror.NewPersistenceError("remove exclusion", err)
	}
	if !removed {
		return false, nil, nil
	}
	set, err := l.Refresh(ctx, userID)
	return true, set, err
}
