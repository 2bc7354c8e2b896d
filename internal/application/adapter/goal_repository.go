package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
)

// GoalRepository defines the interface for financial goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the database.
	Create(ctx context.Context, goal *entity.FinancialGoal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FinancialGoal, error)

	// FindByUser retrieves all goals of a user, oldest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FinancialGoal, error)

	// Update updates an existing goal in the database.
	Update(ctx context.Context, goal *entity.FinancialGoal) error

	// Delete removes a goal from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
