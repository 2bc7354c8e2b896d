package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
)

// CategoryModel represents the categories table: custom categories and
// limit overrides for default ones.
type CategoryModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_category_user_name"`
	Name          string           `gorm:"type:varchar(50);not null;uniqueIndex:idx_category_user_name"`
	MaxPercentage *decimal.Decimal `gorm:"type:decimal(5,2)"`
	MaxValue      *decimal.Decimal `gorm:"type:decimal(15,2)"`
	CreatedAt     time.Time        `gorm:"not null"`
	UpdatedAt     time.Time        `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		MaxPercentage: m.MaxPercentage,
		MaxValue:      m.MaxValue,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:            category.ID,
		UserID:        category.UserID,
		Name:          category.Name,
		MaxPercentage: category.MaxPercentage,
		MaxValue:      category.MaxValue,
		CreatedAt:     category.CreatedAt,
		UpdatedAt:     category.UpdatedAt,
	}
}

// HiddenCategoryModel represents the hidden_categories table: default
// categories a user removed from their list.
type HiddenCategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_hidden_category_user_name"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_hidden_category_user_name"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the HiddenCategoryModel.
func (HiddenCategoryModel) TableName() string {
	return "hidden_categories"
}
