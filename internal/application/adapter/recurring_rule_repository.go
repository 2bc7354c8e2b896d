package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
)

// RecurringRuleRepository defines the interface for recurrence rule persistence operations.
type RecurringRuleRepository interface {
	// Create creates a new rule in the database.
	Create(ctx context.Context, rule *entity.RecurringRule) error

	// FindByID retrieves a rule by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringRule, error)

	// FindByUser retrieves a user's rules, optionally only the active ones.
	FindByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.RecurringRule, error)

	// Update updates an existing rule in the database.
	Update(ctx context.Context, rule *entity.RecurringRule) error

	// DeleteCascade removes a rule together with every real transaction linked to it
	// and every exclusion recorded for it, atomically. It returns the number of
	// transactions removed.
	DeleteCascade(ctx context.Context, id uuid.UUID) (int64, error)
}
