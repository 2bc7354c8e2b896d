// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// TransactionType represents the direction of a transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether t is a known direction.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction is either a real, persisted transaction or an engine-generated
// prediction. Predictions carry IsPredicted and a Key and are never stored.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Type        TransactionType
	Category    string
	Value       decimal.Decimal // Always positive; Type carries the sign
	Date        time.Time
	Month       valueobject.Month
	RecurringID *uuid.UUID
	IsPaid      bool
	IsPredicted bool
	Key         *valueobject.PredictionKey // Set on predictions only

	CurrentInstallment *int
	TotalInstallments  *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTransaction creates a new real Transaction entity. Month is derived from date.
func NewTransaction(
	userID uuid.UUID,
	description string,
	transactionType TransactionType,
	category string,
	value decimal.Decimal,
	date time.Time,
	isPaid bool,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Type:        transactionType,
		Category:    category,
		Value:       value,
		Date:        date,
		Month:       valueobject.MonthOf(date),
		IsPaid:      isPaid,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SetDate updates the date and keeps Month in sync.
func (t *Transaction) SetDate(date time.Time) {
	t.Date = date
	t.Month = valueobject.MonthOf(date)
}

// SignedValue returns the value negated for expenses.
func (t *Transaction) SignedValue() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Value.Neg()
	}
	return t.Value
}

// IsRealInstanceOf reports whether t is a persisted instance of the given rule.
func (t *Transaction) IsRealInstanceOf(ruleID uuid.UUID) bool {
	return !t.IsPredicted && t.RecurringID != nil && *t.RecurringID == ruleID
}

// Materialize copies a prediction into a new real, paid transaction linked
// to the same rule.
func (t *Transaction) Materialize() *Transaction {
	now := time.Now().UTC()

	out := &Transaction{
		ID:          uuid.New(),
		UserID:      t.UserID,
		Description: t.Description,
		Type:        t.Type,
		Category:    t.Category,
		Value:       t.Value,
		Date:        t.Date,
		Month:       t.Month,
		IsPaid:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if t.RecurringID != nil {
		id := *t.RecurringID
		out.RecurringID = &id
	}
	if t.CurrentInstallment != nil {
		n := *t.CurrentInstallment
		out.CurrentInstallment = &n
	}
	if t.TotalInstallments != nil {
		n := *t.TotalInstallments
		out.TotalInstallments = &n
	}
	return out
}

// MonthTotals represents aggregated totals for the merged view of one month.
type MonthTotals struct {
	Income         decimal.Decimal
	Expense        decimal.Decimal
	Balance        decimal.Decimal
	PaidExpense    decimal.Decimal
	PendingExpense decimal.Decimal
	PredictedCount int
}

// ComputeMonthTotals sums the given transactions. Predictions count toward
// income and expense but never toward paid amounts.
func ComputeMonthTotals(transactions []*Transaction) MonthTotals {
	totals := MonthTotals{
		Income:         decimal.Zero,
		Expense:        decimal.Zero,
		PaidExpense:    decimal.Zero,
		PendingExpense: decimal.Zero,
	}

	for _, t := range transactions {
		if t.IsPredicted {
			totals.PredictedCount++
		}
		switch t.Type {
		case TransactionTypeIncome:
			totals.Income = totals.Income.Add(t.Value)
		case TransactionTypeExpense:
			totals.Expense = totals.Expense.Add(t.Value)
			if t.IsPaid {
				totals.PaidExpense = totals.PaidExpense.Add(t.Value)
			} else {
				totals.PendingExpense = totals.PendingExpense.Add(t.Value)
			}
		}
	}

	totals.Balance = totals.Income.Sub(totals.Expense)
	return totals
}
