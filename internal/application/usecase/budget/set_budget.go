// Package budget contains category budget use cases.
package budget

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// SetBudgetInput represents the input for creating or replacing a budget.
type SetBudgetInput struct {
	UserID         uuid.UUID
	Category       string
	Month          string
	BudgetValue    decimal.Decimal
	AlertThreshold *int // Optional, defaults to 80
}

// SetBudgetOutput represents the output of setting a budget.
type SetBudgetOutput struct {
	Budget *entity.CategoryBudget
}

// SetBudgetUseCase upserts the budget of a (category, month) pair.
type SetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewSetBudgetUseCase creates a new SetBudgetUseCase instance.
func NewSetBudgetUseCase(budgetRepo adapter.BudgetRepository) *SetBudgetUseCase {
	return &SetBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the upsert.
func (uc *SetBudgetUseCase) Execute(ctx context.Context, input SetBudgetInput) (*SetBudgetOutput, error) {
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetFields,
			"category is required",
			domainerror.ErrMissingTransactionCategory,
		)
	}

	month, err := parseMonth(input.Month)
	if err != nil {
		return nil, err
	}

	if !input.BudgetValue.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetValue,
			"budget value must be greater than zero",
			domainerror.ErrInvalidBudgetValue,
		)
	}

	threshold := entity.DefaultAlertThreshold
	if input.AlertThreshold != nil {
		if *input.AlertThreshold < 1 || *input.AlertThreshold > 100 {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidAlertThreshold,
				"alert threshold must be between 1 and 100",
				domainerror.ErrInvalidAlertThreshold,
			)
		}
		threshold = *input.AlertThreshold
	}

	budget := entity.NewCategoryBudget(input.UserID, category, month, input.BudgetValue, threshold)
	budget.UpdatedAt = time.Now().UTC()

	stored, err := uc.budgetRepo.Upsert(ctx, budget)
	if err != nil {
		return nil, domainerror.NewPersistenceError("save budget", err)
	}

	return &SetBudgetOutput{
		Budget: stored,
	}, nil
}

func parseMonth(raw string) (valueobject.Month, error) {
	month, err := valueobject.ParseMonth(raw)
	if err != nil {
		return valueobject.Month{}, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidMonth,
		)
	}
	return month, nil
}
