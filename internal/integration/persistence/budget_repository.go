package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new category budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Upsert creates the budget or, when one already exists for the same user,
// category and month, overwrites its value and threshold. It returns the
// stored row.
func (r *budgetRepository) Upsert(ctx context.Context, budget *entity.CategoryBudget) (*entity.CategoryBudget, error) {
	budgetModel := model.CategoryBudgetFromEntity(budget)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "category"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{"budget_value", "alert_threshold", "updated_at"}),
		}).
		Create(budgetModel)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.FindByCategoryAndMonth(ctx, budget.UserID, budget.Category, budget.Month)
}

// FindByID retrieves a budget by its ID.
func (r *budgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CategoryBudget, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByCategoryAndMonth retrieves the budget of a category in one month.
func (r *budgetRepository) FindByCategoryAndMonth(ctx context.Context, userID uuid.UUID, category string, month valueobject.Month) (*entity.CategoryBudget, error) {
	return r.findOne(ctx, "user_id = ? AND category = ? AND month = ?", userID, category, month.String())
}

// FindByUserAndMonth retrieves every budget of a user in one month.
func (r *budgetRepository) FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month valueobject.Month) ([]*entity.CategoryBudget, error) {
	var budgetModels []model.CategoryBudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month.String()).
		Order("category ASC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.CategoryBudget, len(budgetModels))
	for i := range budgetModels {
		budgets[i] = budgetModels[i].ToEntity()
	}
	return budgets, nil
}

// Delete removes a budget from the database.
func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CategoryBudgetModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

func (r *budgetRepository) findOne(ctx context.Context, query string, args ...interface{}) (*entity.CategoryBudget, error) {
	var budgetModel model.CategoryBudgetModel
	result := r.db.WithContext(ctx).Where(query, args...).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}
