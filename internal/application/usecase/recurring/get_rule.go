package recurring

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// GetRuleInput represents the input for fetching a rule.
type GetRuleInput struct {
	RuleID uuid.UUID
	UserID uuid.UUID
}

// GetRuleOutput represents the output of fetching a rule.
type GetRuleOutput struct {
	Rule *entity.RecurringRule
}

// GetRuleUseCase handles fetching a single rule.
type GetRuleUseCase struct {
	ruleRepo adapter.RecurringRuleRepository
}

// NewGetRuleUseCase creates a new GetRuleUseCase instance.
func NewGetRuleUseCase(ruleRepo adapter.RecurringRuleRepository) *GetRuleUseCase {
	return &GetRuleUseCase{
		ruleRepo: ruleRepo,
	}
}

// Execute performs the lookup.
func (uc *GetRuleUseCase) Execute(ctx context.Context, input GetRuleInput) (*GetRuleOutput, error) {
	rule, err := findOwnedRule(ctx, uc.ruleRepo, input.RuleID, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetRuleOutput{Rule: rule}, nil
}

// findOwnedRule loads a rule and hides rules of other owners behind not found.
func findOwnedRule(ctx context.Context, repo adapter.RecurringRuleRepository, ruleID, userID uuid.UUID) (*entity.RecurringRule, error) {
	rule, err := repo.FindByID(ctx, ruleID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecurringRuleNotFound) {
			return nil, ruleNotFound()
		}
		return nil, domainerror.NewPersistenceError("find recurring rule", err)
	}
	if rule.UserID != userID {
		return nil, ruleNotFound()
	}
	return rule, nil
}

func ruleNotFound() error {
	return domainerror.NewRecurringError(
		domainerror.ErrCodeRecurringRuleNotFound,
		"recurring rule not found",
		domainerror.ErrRecurringRuleNotFound,
	)
}
