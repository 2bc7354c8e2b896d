package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
)

// FinancialGoalModel represents the financial_goals table in the database.
type FinancialGoalModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(100);not null"`
	Description  string          `gorm:"type:text"`
	TargetValue  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentValue decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Deadline     *time.Time      `gorm:"type:date"`
	Category     string          `gorm:"type:varchar(50)"`
	Color        string          `gorm:"type:varchar(7)"`
	Icon         string          `gorm:"type:varchar(50)"`
	IsCompleted  bool            `gorm:"default:false"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the FinancialGoalModel.
func (FinancialGoalModel) TableName() string {
	return "financial_goals"
}

// ToEntity converts a FinancialGoalModel to a domain FinancialGoal entity.
func (m *FinancialGoalModel) ToEntity() *entity.FinancialGoal {
	var deadline *time.Time
	if m.Deadline != nil {
		d := utcDate(*m.Deadline)
		deadline = &d
	}
	return &entity.FinancialGoal{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		Description:  m.Description,
		TargetValue:  m.TargetValue,
		CurrentValue: m.CurrentValue,
		Deadline:     deadline,
		Category:     m.Category,
		Color:        m.Color,
		Icon:         m.Icon,
		IsCompleted:  m.IsCompleted,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FinancialGoalFromEntity creates a FinancialGoalModel from a domain FinancialGoal entity.
func FinancialGoalFromEntity(goal *entity.FinancialGoal) *FinancialGoalModel {
	return &FinancialGoalModel{
		ID:           goal.ID,
		UserID:       goal.UserID,
		Name:         goal.Name,
		Description:  goal.Description,
		TargetValue:  goal.TargetValue,
		CurrentValue: goal.CurrentValue,
		Deadline:     goal.Deadline,
		Category:     goal.Category,
		Color:        goal.Color,
		Icon:         goal.Icon,
		IsCompleted:  goal.IsCompleted,
		CreatedAt:    goal.CreatedAt,
		UpdatedAt:    goal.UpdatedAt,
	}
}
