package recurring

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

// UpdateRuleInput represents the input for a partial rule update.
// Nil fields are left unchanged.
type UpdateRuleInput struct {
	RuleID            uuid.UUID
	UserID            uuid.UUID
	Description       *string
	Type              *entity.TransactionType
	Category          *string
	Value             *decimal.Decimal
	Kind              *entity.RecurrenceKind
	DayOfMonth        *int
	StartDate         *time.Time
	EndDate           *time.Time
	ClearEndDate      bool
	TotalInstallments *int
	SelectedIncomeID  *uuid.UUID
	IsActive          *bool
}

// UpdateRuleOutput represents the output of a rule update.
type UpdateRuleOutput struct {
	Rule *entity.RecurringRule
}

// UpdateRuleUseCase handles rule updates, including pausing and resuming.
type UpdateRuleUseCase struct {
	ruleRepo adapter.RecurringRuleRepository
}

// NewUpdateRuleUseCase creates a new UpdateRuleUseCase instance.
func NewUpdateRuleUseCase(ruleRepo adapter.RecurringRuleRepository) *UpdateRuleUseCase {
	return &UpdateRuleUseCase{
		ruleRepo: ruleRepo,
	}
}

// Execute performs the rule update.
func (uc *UpdateRuleUseCase) Execute(ctx context.Context, input UpdateRuleInput) (*UpdateRuleOutput, error) {
	existing, err := findOwnedRule(ctx, uc.ruleRepo, input.RuleID, input.UserID)
	if err != nil {
		return nil, err
	}

	// Work on a copy so a rejected update leaves the loaded rule untouched
	rule := *existing

	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" || len(description) > MaxDescriptionLength {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeMissingRuleFields,
				"description must be between 1 and 255 characters",
				domainerror.ErrDescriptionTooLong,
			)
		}
		rule.Description = description
	}
	if input.Type != nil {
		rule.Type = *input.Type
	}
	if input.Category != nil {
		rule.Category = strings.TrimSpace(*input.Category)
	}
	if input.Value != nil {
		rule.Value = *input.Value
	}
	if input.Kind != nil {
		rule.Kind = *input.Kind
	}
	if input.DayOfMonth != nil {
		rule.DayOfMonth = *input.DayOfMonth
	}
	if input.StartDate != nil {
		rule.StartDate = *input.StartDate
	}
	if input.ClearEndDate {
		rule.EndDate = nil
	} else if input.EndDate != nil {
		rule.EndDate = input.EndDate
	}
	if input.TotalInstallments != nil {
		rule.TotalInstallments = input.TotalInstallments
	}
	if input.SelectedIncomeID != nil {
		rule.SelectedIncomeID = input.SelectedIncomeID
	}
	if input.IsActive != nil {
		rule.IsActive = *input.IsActive
	}

	// Kind-specific fields only survive on their kind
	if rule.Kind != entity.RecurrenceInstallment {
		rule.TotalInstallments = nil
	}
	if rule.Kind != entity.RecurrenceVariableByIncome {
		rule.SelectedIncomeID = nil
	}

	if err := rule.Validate(); err != nil {
		return nil, err
	}

	rule.UpdatedAt = time.Now().UTC()
	if err := uc.ruleRepo.Update(ctx, &rule); err != nil {
		return nil, domainerror.NewPersistenceError("update recurring rule", err)
	}

	return &UpdateRuleOutput{
		Rule: &rule,
	}, nil
}
