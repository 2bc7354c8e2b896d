package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// SessionStore caches per-user session state: the selected month and a
// mirror of the exclusion ledger. Lookups report a miss with ok == false.
type SessionStore interface {
	// GetSelectedMonth returns the cached selected month.
	GetSelectedMonth(ctx context.Context, userID uuid.UUID) (month valueobject.Month, ok bool, err error)

	// SetSelectedMonth caches the selected month.
	SetSelectedMonth(ctx context.Context, userID uuid.UUID, month valueobject.Month) error

	// GetExclusions returns the cached exclusion ledger.
	GetExclusions(ctx context.Context, userID uuid.UUID) (set valueobject.ExclusionSet, ok bool, err error)

	// SetExclusions replaces the cached exclusion ledger.
	SetExclusions(ctx context.Context, userID uuid.UUID, set valueobject.ExclusionSet) error

	// Clear drops all cached state of the user.
	Clear(ctx context.Context, userID uuid.UUID) error
}
