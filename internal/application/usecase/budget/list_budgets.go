package budget

import (
	"context"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
	Month  string
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*entity.CategoryBudget
}

// ListBudgetsUseCase handles listing a month's budgets.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the listing.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	month, err := parseMonth(input.Month)
	if err != nil {
		return nil, err
	}

	budgets, err := uc.budgetRepo.FindByUserAndMonth(ctx, input.UserID, month)
	if err != nil {
		return nil, domainerror.NewPersistenceError("list budgets", err)
	}
	if budgets == nil {
		budgets = []*entity.CategoryBudget{}
	}
	return &ListBudgetsOutput{Budgets: budgets}, nil
}
