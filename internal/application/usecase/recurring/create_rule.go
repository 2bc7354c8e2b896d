// Package recurring contains recurrence rule use cases.
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

// MaxDescriptionLength is the maximum length of a rule description.
const MaxDescriptionLength = 255

// CreateRuleInput represents the input for rule creation.
type CreateRuleInput struct {
	UserID            uuid.UUID
	Description       string
	Type              entity.TransactionType
	Category          string
	Value             decimal.Decimal
	Kind              entity.RecurrenceKind
	DayOfMonth        int
	StartDate         time.Time
	EndDate           *time.Time
	TotalInstallments *int
	SelectedIncomeID  *uuid.UUID
}

// CreateRuleOutput represents the output of rule creation.
type CreateRuleOutput struct {
	Rule *entity.RecurringRule
}

// CreateRuleUseCase handles rule creation logic.
type CreateRuleUseCase struct {
	ruleRepo adapter.RecurringRuleRepository
}

// NewCreateRuleUseCase creates a new CreateRuleUseCase instance.
func NewCreateRuleUseCase(ruleRepo adapter.RecurringRuleRepository) *CreateRuleUseCase {
	return &CreateRuleUseCase{
		ruleRepo: ruleRepo,
	}
}

// Execute performs the rule creation.
func (uc *CreateRuleUseCase) Execute(ctx context.Context, input CreateRuleInput) (*CreateRuleOutput, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeMissingRuleFields,
			"description is required",
			nil,
		)
	}
	if len(description) > MaxDescriptionLength {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeMissingRuleFields,
			"description must be at most 255 characters",
			domainerror.ErrDescriptionTooLong,
		)
	}

	rule := entity.NewRecurringRule(
		input.UserID,
		description,
		input.Type,
		strings.TrimSpace(input.Category),
		input.Value,
		input.Kind,
		input.DayOfMonth,
		input.StartDate,
	)
	rule.EndDate = input.EndDate
	if input.Kind == entity.RecurrenceInstallment {
		rule.TotalInstallments = input.TotalInstallments
	}
	if input.Kind == entity.RecurrenceVariableByIncome {
		rule.SelectedIncomeID = input.SelectedIncomeID
	}

	// Validate rule invariants before persisting
	if err := rule.Validate(); err != nil {
		return nil, err
	}

	if err := uc.ruleRepo.Create(ctx, rule); err != nil {
		return nil, domainerror.NewPersistenceError("create recurring rule", err)
	}

	return &CreateRuleOutput{
		Rule: rule,
	}, nil
}
