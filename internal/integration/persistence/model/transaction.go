package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// TransactionModel represents the transactions table in the database.
// Only real transactions are stored; predictions never reach this table.
type TransactionModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;index:idx_transactions_user_month"`
	Month              string          `gorm:"type:varchar(7);not null;index:idx_transactions_user_month"`
	Date               time.Time       `gorm:"type:date;not null;index"`
	Description        string          `gorm:"type:varchar(255);not null"`
	Type               string          `gorm:"type:varchar(10);not null"`
	Category           string          `gorm:"type:varchar(50);not null"`
	Value              decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	RecurringID        *uuid.UUID      `gorm:"type:uuid;index"`
	IsPaid             bool            `gorm:"default:false"`
	CurrentInstallment *int            `gorm:"type:integer"`
	TotalInstallments  *int            `gorm:"type:integer"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
// Month is re-derived from the date.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	date := utcDate(m.Date)
	return &entity.Transaction{
		ID:                 m.ID,
		UserID:             m.UserID,
		Description:        m.Description,
		Type:               entity.TransactionType(m.Type),
		Category:           m.Category,
		Value:              m.Value,
		Date:               date,
		Month:              valueobject.MonthOf(date),
		RecurringID:        m.RecurringID,
		IsPaid:             m.IsPaid,
		CurrentInstallment: m.CurrentInstallment,
		TotalInstallments:  m.TotalInstallments,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(t *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:                 t.ID,
		UserID:             t.UserID,
		Month:              valueobject.MonthOf(t.Date).String(),
		Date:               t.Date,
		Description:        t.Description,
		Type:               string(t.Type),
		Category:           t.Category,
		Value:              t.Value,
		RecurringID:        t.RecurringID,
		IsPaid:             t.IsPaid,
		CurrentInstallment: t.CurrentInstallment,
		TotalInstallments:  t.TotalInstallments,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}
