package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// CategoryBudgetModel represents the category_budgets table in the database.
// A user has at most one budget per category and month.
type CategoryBudgetModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budget_user_category_month"`
	Category       string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_budget_user_category_month"`
	Month          string          `gorm:"type:varchar(7);not null;uniqueIndex:idx_budget_user_category_month"`
	BudgetValue    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AlertThreshold int             `gorm:"not null;default:80"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CategoryBudgetModel.
func (CategoryBudgetModel) TableName() string {
	return "category_budgets"
}

// ToEntity converts a CategoryBudgetModel to a domain CategoryBudget entity.
// A malformed stored month yields the zero Month.
func (m *CategoryBudgetModel) ToEntity() *entity.CategoryBudget {
	month, _ := valueobject.ParseMonth(m.Month)
	return &entity.CategoryBudget{
		ID:             m.ID,
		UserID:         m.UserID,
		Category:       m.Category,
		Month:          month,
		BudgetValue:    m.BudgetValue,
		AlertThreshold: m.AlertThreshold,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// CategoryBudgetFromEntity creates a CategoryBudgetModel from a domain CategoryBudget entity.
func CategoryBudgetFromEntity(b *entity.CategoryBudget) *CategoryBudgetModel {
	return &CategoryBudgetModel{
		ID:             b.ID,
		UserID:         b.UserID,
		Category:       b.Category,
		Month:          b.Month.String(),
		BudgetValue:    b.BudgetValue,
		AlertThreshold: b.AlertThreshold,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
