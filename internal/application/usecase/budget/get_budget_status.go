package budget

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// GetBudgetStatusInput represents the input for budget status queries.
// An empty Category returns the status of every budget in the month.
type GetBudgetStatusInput struct {
	UserID   uuid.UUID
	Month    string
	Category string
}

// GetBudgetStatusOutput represents the output of budget status queries.
type GetBudgetStatusOutput struct {
	Statuses []*entity.BudgetStatus
}

// GetBudgetStatusUseCase computes spend against budget ceilings from real
// transactions only.
type GetBudgetStatusUseCase struct {
	budgetRepo adapter.BudgetRepository
	txnRepo    adapter.TransactionRepository
}

// NewGetBudgetStatusUseCase creates a new GetBudgetStatusUseCase instance.
func NewGetBudgetStatusUseCase(budgetRepo adapter.BudgetRepository, txnRepo adapter.TransactionRepository) *GetBudgetStatusUseCase {
	return &GetBudgetStatusUseCase{
		budgetRepo: budgetRepo,
		txnRepo:    txnRepo,
	}
}

// Execute performs the status computation.
func (uc *GetBudgetStatusUseCase) Execute(ctx context.Context, input GetBudgetStatusInput) (*GetBudgetStatusOutput, error) {
	month, err := parseMonth(input.Month)
	if err != nil {
		return nil, err
	}

	var budgets []*entity.CategoryBudget
	if category := strings.TrimSpace(input.Category); category != "" {
		budget, err := uc.budgetRepo.FindByCategoryAndMonth(ctx, input.UserID, category, month)
		if err != nil {
			if errors.Is(err, domainerror.ErrBudgetNotFound) {
				return nil, budgetNotFound()
			}
			return nil, domainerror.NewPersistenceError("find budget", err)
		}
		budgets = []*entity.CategoryBudget{budget}
	} else {
		budgets, err = uc.budgetRepo.FindByUserAndMonth(ctx, input.UserID, month)
		if err != nil {
			return nil, domainerror.NewPersistenceError("list budgets", err)
		}
	}

	txns, err := uc.txnRepo.FindByUserAndMonth(ctx, input.UserID, month)
	if err != nil {
		return nil, domainerror.NewPersistenceError("load transactions", err)
	}

	statuses := make([]*entity.BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		statuses = append(statuses, b.Status(txns))
	}

	return &GetBudgetStatusOutput{
		Statuses: statuses,
	}, nil
}
