package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// DefaultAlertThreshold is the percentage of the ceiling at which a budget is near its limit.
const DefaultAlertThreshold = 80

// CategoryBudget is a spending ceiling for one category in one month.
// There is at most one budget per (owner, category, month).
type CategoryBudget struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Category       string
	Month          valueobject.Month
	BudgetValue    decimal.Decimal
	AlertThreshold int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewCategoryBudget creates a new CategoryBudget. A non-positive threshold falls back to the default.
func NewCategoryBudget(userID uuid.UUID, category string, month valueobject.Month, budgetValue decimal.Decimal, alertThreshold int) *CategoryBudget {
	now := time.Now().UTC()
	if alertThreshold <= 0 {
		alertThreshold = DefaultAlertThreshold
	}

	return &CategoryBudget{
		ID:             uuid.New(),
		UserID:         userID,
		Category:       category,
		Month:          month,
		BudgetValue:    budgetValue,
		AlertThreshold: alertThreshold,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// BudgetStatus is the spend-vs-ceiling view of a budget.
type BudgetStatus struct {
	Budget         *CategoryBudget
	SpentValue     decimal.Decimal
	RemainingValue decimal.Decimal
	PercentageUsed decimal.Decimal
	IsOverBudget   bool
	IsNearLimit    bool
}

var hundred = decimal.NewFromInt(100)

// Status computes the budget status from a month's transactions. Only real
// expenses in the budget's category and month are counted.
func (b *CategoryBudget) Status(transactions []*Transaction) *BudgetStatus {
	spent := decimal.Zero
	for _, t := range transactions {
		if t.IsPredicted || t.Type != TransactionTypeExpense {
			continue
		}
		if t.Category != b.Category || t.Month != b.Month {
			continue
		}
		spent = spent.Add(t.Value)
	}

	pct := decimal.Zero
	var over, near bool
	if b.BudgetValue.IsPositive() {
		pct = spent.Div(b.BudgetValue).Mul(hundred).Round(2)
		over = spent.GreaterThan(b.BudgetValue)
		near = !over && spent.GreaterThanOrEqual(b.ThresholdValue())
	}

	return &BudgetStatus{
		Budget:         b,
		SpentValue:     spent,
		RemainingValue: b.BudgetValue.Sub(spent),
		PercentageUsed: pct,
		IsOverBudget:   over,
		IsNearLimit:    near,
	}
}

// ThresholdValue is the spend at which the alert threshold is reached.
func (b *CategoryBudget) ThresholdValue() decimal.Decimal {
	return b.BudgetValue.Mul(decimal.NewFromInt(int64(b.AlertThreshold))).Div(hundred)
}

// ReachedThreshold reports whether the status is at or above the alert threshold.
func (s *BudgetStatus) ReachedThreshold() bool {
	return s.IsNearLimit || s.IsOverBudget
}
