package goal

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// ContributeToGoalInput represents a deposit (positive) or withdrawal (negative).
type ContributeToGoalInput struct {
	GoalID uuid.UUID
	UserID uuid.UUID
	Amount decimal.Decimal
}

// ContributeToGoalOutput represents the output of a contribution.
type ContributeToGoalOutput struct {
	Goal     *entity.FinancialGoal
	Progress decimal.Decimal
}

// ContributeToGoalUseCase moves money into or out of a goal.
type ContributeToGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewContributeToGoalUseCase creates a new ContributeToGoalUseCase instance.
func NewContributeToGoalUseCase(goalRepo adapter.GoalRepository) *ContributeToGoalUseCase {
	return &ContributeToGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute applies the contribution.
func (uc *ContributeToGoalUseCase) Execute(ctx context.Context, input ContributeToGoalInput) (*ContributeToGoalOutput, error) {
	if input.Amount.IsZero() {
		return nil, invalidContribution("contribution amount must not be zero")
	}

	existing, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	goal := *existing
	if !goal.Contribute(input.Amount) {
		return nil, invalidContribution("withdrawal exceeds the saved amount")
	}

	if err := uc.goalRepo.Update(ctx, &goal); err != nil {
		return nil, domainerror.NewPersistenceError("update goal", err)
	}

	return &ContributeToGoalOutput{
		Goal:     &goal,
		Progress: goal.Progress(),
	}, nil
}

func invalidContribution(msg string) error {
	return domainerror.NewGoalError(
		domainerror.ErrCodeInvalidContribution,
		msg,
		domainerror.ErrInvalidContribution,
	)
}
