package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/persistence/model"
)

// accountDataRepository implements the adapter.AccountDataRepository interface.
type accountDataRepository struct {
	db *gorm.DB
}

// NewAccountDataRepository creates a new account data repository instance.
func NewAccountDataRepository(db *gorm.DB) adapter.AccountDataRepository {
	return &accountDataRepository{
		db: db,
	}
}

// DeleteAllByUser wipes every financial record owned by a user in one
// database transaction. The user row and refresh tokens are kept.
func (r *accountDataRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) error {
	owned := []interface{}{
		&model.TransactionModel{},
		&model.PredictionExclusionModel{},
		&model.RecurringRuleModel{},
		&model.CategoryBudgetModel{},
		&model.FinancialGoalModel{},
		&model.CategoryModel{},
		&model.HiddenCategoryModel{},
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range owned {
			if err := tx.Where("user_id = ?", userID).Delete(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
