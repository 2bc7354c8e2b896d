package goal

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update. Nil fields are left unchanged.
type UpdateGoalInput struct {
	GoalID        uuid.UUID
	UserID        uuid.UUID
	Name          *string
	Description   *string
	TargetValue   *decimal.Decimal
	CurrentValue  *decimal.Decimal
	Deadline      *time.Time
	ClearDeadline bool
	Category      *string
	Color         *string
	Icon          *string
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal *entity.FinancialGoal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	existing, err := findOwnedGoal(ctx, uc.goalRepo, input.GoalID, input.UserID)
	if err != nil {
		return nil, err
	}

	goal := *existing
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeMissingGoalFields,
				"goal name is required",
				domainerror.ErrMissingGoalName,
			)
		}
		goal.Name = name
	}
	if input.Description != nil {
		goal.Description = strings.TrimSpace(*input.Description)
	}
	if input.TargetValue != nil {
		goal.TargetValue = *input.TargetValue
	}
	if input.CurrentValue != nil {
		goal.CurrentValue = *input.CurrentValue
	}
	if input.ClearDeadline {
		goal.Deadline = nil
	} else if input.Deadline != nil {
		goal.Deadline = input.Deadline
	}
	if input.Category != nil {
		goal.Category = strings.TrimSpace(*input.Category)
	}
	if input.Color != nil {
		goal.Color = *input.Color
	}
	if input.Icon != nil {
		goal.Icon = *input.Icon
	}

	if err := validateValues(goal.TargetValue, goal.CurrentValue); err != nil {
		return nil, err
	}

	goal.RefreshCompletion()
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, &goal); err != nil {
		return nil, domainerror.NewPersistenceError("update goal", err)
	}

	return &UpdateGoalOutput{
		Goal: &goal,
	}, nil
}
