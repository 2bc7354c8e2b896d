package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// ExclusionRepository defines the interface for the persisted exclusion ledger.
type ExclusionRepository interface {
	// Add records a dismissed prediction. Adding an existing key is a no-op.
	Add(ctx context.Context, userID uuid.UUID, key valueobject.PredictionKey) error

	// Remove deletes a key from the ledger and reports whether it was present.
	Remove(ctx context.Context, userID uuid.UUID, key valueobject.PredictionKey) (bool, error)

	// FindByUser returns the user's full ledger.
	FindByUser(ctx context.Context, userID uuid.UUID) (valueobject.ExclusionSet, error)
}
