package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
)

// RecurringRuleModel represents the recurring_transactions table in the database.
type RecurringRuleModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description       string          `gorm:"type:varchar(255);not null"`
	Type              string          `gorm:"type:varchar(10);not null"`
	Category          string          `gorm:"type:varchar(50);not null"`
	Value             decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Kind              string          `gorm:"type:varchar(20);not null"`
	DayOfMonth        int             `gorm:"type:integer;not null"`
	StartDate         time.Time       `gorm:"type:date;not null"`
	EndDate           *time.Time      `gorm:"type:date"`
	TotalInstallments *int            `gorm:"type:integer"`
	SelectedIncomeID  *uuid.UUID      `gorm:"type:uuid"`
	IsActive          bool            `gorm:"not null;index"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RecurringRuleModel.
func (RecurringRuleModel) TableName() string {
	return "recurring_transactions"
}

// ToEntity converts a RecurringRuleModel to a domain RecurringRule entity.
func (m *RecurringRuleModel) ToEntity() *entity.RecurringRule {
	var end *time.Time
	if m.EndDate != nil {
		d := utcDate(*m.EndDate)
		end = &d
	}
	return &entity.RecurringRule{
		ID:                m.ID,
		UserID:            m.UserID,
		Description:       m.Description,
		Type:              entity.TransactionType(m.Type),
		Category:          m.Category,
		Value:             m.Value,
		Kind:              entity.RecurrenceKind(m.Kind),
		DayOfMonth:        m.DayOfMonth,
		StartDate:         utcDate(m.StartDate),
		EndDate:           end,
		TotalInstallments: m.TotalInstallments,
		SelectedIncomeID:  m.SelectedIncomeID,
		IsActive:          m.IsActive,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// RecurringRuleFromEntity creates a RecurringRuleModel from a domain RecurringRule entity.
func RecurringRuleFromEntity(r *entity.RecurringRule) *RecurringRuleModel {
	return &RecurringRuleModel{
		ID:                r.ID,
		UserID:            r.UserID,
		Description:       r.Description,
		Type:              string(r.Type),
		Category:          r.Category,
		Value:             r.Value,
		Kind:              string(r.Kind),
		DayOfMonth:        r.DayOfMonth,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		TotalInstallments: r.TotalInstallments,
		SelectedIncomeID:  r.SelectedIncomeID,
		IsActive:          r.IsActive,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// PredictionExclusionModel represents the prediction_exclusions table: one
// dismissed (rule, month) pair per row.
type PredictionExclusionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_exclusion_owner_rule_month"`
	RuleID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_exclusion_owner_rule_month;index"`
	Month     string    `gorm:"type:varchar(7);not null;uniqueIndex:idx_exclusion_owner_rule_month"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the PredictionExclusionModel.
func (PredictionExclusionModel) TableName() string {
	return "prediction_exclusions"
}

func utcDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
