package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultGoalColor is the default display color for goals.
const DefaultGoalColor = "#6366F1"

// DefaultGoalIcon is the default display icon for goals.
const DefaultGoalIcon = "target"

// FinancialGoal represents a savings target in the planilha-financeira system.
type FinancialGoal struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Description  string
	TargetValue  decimal.Decimal
	CurrentValue decimal.Decimal
	Deadline     *time.Time
	Category     string
	Color        string
	Icon         string
	IsCompleted  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewFinancialGoal creates a new FinancialGoal entity.
func NewFinancialGoal(userID uuid.UUID, name string, targetValue, currentValue decimal.Decimal) *FinancialGoal {
	now := time.Now().UTC()

	g := &FinancialGoal{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		TargetValue:  targetValue,
		CurrentValue: currentValue,
		Color:        DefaultGoalColor,
		Icon:         DefaultGoalIcon,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	g.RefreshCompletion()
	return g
}

// RefreshCompletion re-derives IsCompleted from the current and target values.
func (g *FinancialGoal) RefreshCompletion() {
	g.IsCompleted = g.CurrentValue.GreaterThanOrEqual(g.TargetValue)
}

// Contribute adds amount to the current value. Negative amounts withdraw,
// and the current value never drops below zero. It reports whether the
// amount could be applied in full.
func (g *FinancialGoal) Contribute(amount decimal.Decimal) bool {
	next := g.CurrentValue.Add(amount)
	if next.IsNegative() {
		return false
	}
	g.CurrentValue = next
	g.UpdatedAt = time.Now().UTC()
	g.RefreshCompletion()
	return true
}

// Progress returns the completion percentage, capped at 100.
func (g *FinancialGoal) Progress() decimal.Decimal {
	if !g.TargetValue.IsPositive() {
		return decimal.Zero
	}
	pct := g.CurrentValue.Div(g.TargetValue).Mul(hundred).Round(2)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}
