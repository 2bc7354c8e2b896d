package recurring

import (
	"context"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// ListRulesInput represents the input for listing rules.
type ListRulesInput struct {
	UserID     uuid.UUID
	ActiveOnly bool
}

// ListRulesOutput represents the output of listing rules.
type ListRulesOutput struct {
	Rules []*entity.RecurringRule
}

// ListRulesUseCase handles listing a user's rules.
type ListRulesUseCase struct {
	ruleRepo adapter.RecurringRuleRepository
}

// NewListRulesUseCase creates a new ListRulesUseCase instance.
func NewListRulesUseCase(ruleRepo adapter.RecurringRuleRepository) *ListRulesUseCase {
	return &ListRulesUseCase{
		ruleRepo: ruleRepo,
	}
}

// Execute performs the listing.
func (uc *ListRulesUseCase) Execute(ctx context.Context, input ListRulesInput) (*ListRulesOutput, error) {
	rules, err := uc.ruleRepo.FindByUser(ctx, input.UserID, input.ActiveOnly)
	if err != nil {
		return nil, domainerror.NewPersistenceError("list recurring rules", err)
	}
	if rules == nil {
		rules = []*entity.RecurringRule{}
	}
	return &ListRulesOutput{Rules: rules}, nil
}
