package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// BudgetRepository defines the interface for category budget persistence operations.
type BudgetRepository interface {
	// Upsert creates the budget or replaces the ceiling and threshold of the
	// existing budget for the same (user, category, month). It returns the stored budget.
	Upsert(ctx context.Context, budget *entity.CategoryBudget) (*entity.CategoryBudget, error)

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CategoryBudget, error)

	// FindByCategoryAndMonth retrieves the budget for one category in one month.
	FindByCategoryAndMonth(ctx context.Context, userID uuid.UUID, category string, month valueobject.Month) (*entity.CategoryBudget, error)

	// FindByUserAndMonth retrieves all budgets of a user for one month.
	FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month valueobject.Month) ([]*entity.CategoryBudget, error)

	// Delete removes a budget from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
