// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID       uuid.UUID
	Name         string
	Description  string
	TargetValue  decimal.Decimal
	CurrentValue decimal.Decimal
	Deadline     *time.Time
	Category     string
	Color        string // Optional, defaults to DefaultGoalColor
	Icon         string // Optional, defaults to DefaultGoalIcon
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.FinancialGoal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"goal name is required",
			domainerror.ErrMissingGoalName,
		)
	}

	// Validate amounts
	if err := validateValues(input.TargetValue, input.CurrentValue); err != nil {
		return nil, err
	}

	goal := entity.NewFinancialGoal(input.UserID, name, input.TargetValue, input.CurrentValue)
	goal.Description = strings.TrimSpace(input.Description)
	goal.Deadline = input.Deadline
	goal.Category = strings.TrimSpace(input.Category)
	if input.Color != "" {
		goal.Color = input.Color
	}
	if input.Icon != "" {
		goal.Icon = input.Icon
	}

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, domainerror.NewPersistenceError("create goal", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}

func validateValues(target, current decimal.Decimal) error {
	if !target.IsPositive() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetValue,
			"target value must be greater than zero",
			domainerror.ErrInvalidTargetValue,
		)
	}
	if current.IsNegative() {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidCurrentValue,
			"current value cannot be negative",
			domainerror.ErrInvalidCurrentValue,
		)
	}
	return nil
}

// findOwnedGoal loads a goal and checks it belongs to userID.
func findOwnedGoal(ctx context.Context, repo adapter.GoalRepository, id, userID uuid.UUID) (*entity.FinancialGoal, error) {
	goal, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, domainerror.NewPersistenceError("find goal", err)
	}

	// Check if user is authorized to access this goal
	if goal.UserID != userID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"not authorized to access this goal",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}
	return goal, nil
}
