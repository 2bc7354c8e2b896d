package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// RecurrenceKind describes how a rule's magnitude evolves across periods.
type RecurrenceKind string

const (
	RecurrenceFixed            RecurrenceKind = "fixed"
	RecurrenceInstallment      RecurrenceKind = "installment"
	RecurrenceVariable         RecurrenceKind = "variable"
	RecurrenceVariableByIncome RecurrenceKind = "variable_by_income"
)

// IsValid reports whether k is a known recurrence kind.
func (k RecurrenceKind) IsValid() bool {
	switch k {
	case RecurrenceFixed, RecurrenceInstallment, RecurrenceVariable, RecurrenceVariableByIncome:
		return true
	}
	return false
}

// RecurringRule is a user-defined template for a periodic transaction.
type RecurringRule struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Description       string
	Type              TransactionType
	Category          string
	Value             decimal.Decimal // Percentage for variable_by_income
	Kind              RecurrenceKind
	DayOfMonth        int
	StartDate         time.Time
	EndDate           *time.Time
	TotalInstallments *int
	SelectedIncomeID  *uuid.UUID
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewRecurringRule creates a new active RecurringRule.
func NewRecurringRule(
	userID uuid.UUID,
	description string,
	transactionType TransactionType,
	category string,
	value decimal.Decimal,
	kind RecurrenceKind,
	dayOfMonth int,
	startDate time.Time,
) *RecurringRule {
	now := time.Now().UTC()

	return &RecurringRule{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Type:        transactionType,
		Category:    category,
		Value:       value,
		Kind:        kind,
		DayOfMonth:  dayOfMonth,
		StartDate:   startDate,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate checks the rule invariants and returns the first violation.
func (r *RecurringRule) Validate() error {
	if !r.Type.IsValid() {
		return domainerror.NewRecurringError(domainerror.ErrCodeInvalidRuleType, "type must be income or expense", domainerror.ErrInvalidTransactionType)
	}
	if !r.Kind.IsValid() {
		return domainerror.NewRecurringError(domainerror.ErrCodeInvalidRecurrenceKind, "invalid recurrence kind", domainerror.ErrInvalidRecurrenceKind)
	}
	if r.Category == "" {
		return domainerror.NewRecurringError(domainerror.ErrCodeMissingRuleFields, "category is required", domainerror.ErrMissingTransactionCategory)
	}
	if !r.Value.IsPositive() {
		return domainerror.NewRecurringError(domainerror.ErrCodeInvalidRuleValue, "value must be positive", domainerror.ErrInvalidRuleValue)
	}
	if r.DayOfMonth < 1 || r.DayOfMonth > 31 {
		return domainerror.NewRecurringError(domainerror.ErrCodeInvalidDayOfMonth, "day of month must be between 1 and 31", domainerror.ErrInvalidDayOfMonth)
	}
	if r.StartDate.IsZero() {
		return domainerror.NewRecurringError(domainerror.ErrCodeMissingRuleFields, "start date is required", domainerror.ErrMissingStartDate)
	}
	if r.EndDate != nil && r.EndDate.Before(r.StartDate) {
		return domainerror.NewRecurringError(domainerror.ErrCodeEndBeforeStart, "end date must not be before start date", domainerror.ErrEndBeforeStart)
	}
	if r.Kind == RecurrenceInstallment && (r.TotalInstallments == nil || *r.TotalInstallments <= 0) {
		return domainerror.NewRecurringError(domainerror.ErrCodeMissingInstallments, "installment rules require total installments", domainerror.ErrMissingInstallments)
	}
	if r.Kind == RecurrenceVariableByIncome && r.SelectedIncomeID == nil {
		return domainerror.NewRecurringError(domainerror.ErrCodeMissingIncomeRef, "variable_by_income rules require a selected income", domainerror.ErrMissingIncomeReference)
	}
	return nil
}
