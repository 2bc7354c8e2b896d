package budget

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// DeleteBudgetInput represents the input for budget deletion.
type DeleteBudgetInput struct {
	BudgetID uuid.UUID
	UserID   uuid.UUID
}

// DeleteBudgetUseCase handles budget deletion.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) error {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return budgetNotFound()
		}
		return domainerror.NewPersistenceError("find budget", err)
	}
	if budget.UserID != input.UserID {
		return budgetNotFound()
	}

	if err := uc.budgetRepo.Delete(ctx, input.BudgetID); err != nil {
		return domainerror.NewPersistenceError("delete budget", err)
	}
	return nil
}

func budgetNotFound() error {
	return domainerror.NewBudgetError(
		domainerror.ErrCodeBudgetNotFound,
		"budget not found",
		domainerror.ErrBudgetNotFound,
	)
}
