package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCategories is the built-in category list every owner starts with.
var DefaultCategories = []string{
	"Alimentação",
	"Transporte",
	"Moradia",
	"Lazer",
	"Saúde",
	"Educação",
	"Contas",
	"Compras",
	"Assinaturas",
	"Imprevistos",
	"Investimentos",
	"Renda Extra",
	"Salário",
	"Outros",
}

// IsDefaultCategory reports whether name is one of the built-in categories.
func IsDefaultCategory(name string) bool {
	for _, c := range DefaultCategories {
		if c == name {
			return true
		}
	}
	return false
}

// Category is an owner-defined category with optional spending limits.
type Category struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	MaxPercentage *decimal.Decimal // Share of the month's income
	MaxValue      *decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCategory creates a new custom Category entity.
func NewCategory(userID uuid.UUID, name string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HiddenCategory marks a default category as hidden for one owner.
type HiddenCategory struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
}

// CategoryView is one entry of an owner's visible category list.
type CategoryView struct {
	Name      string
	IsDefault bool
	Custom    *Category // nil for default categories
}
