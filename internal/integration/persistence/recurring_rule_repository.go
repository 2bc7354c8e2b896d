package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/persistence/model"
)

// recurringRuleRepository implements the adapter.RecurringRuleRepository interface.
type recurringRuleRepository struct {
	db *gorm.DB
}

// NewRecurringRuleRepository creates a new recurring rule repository instance.
func NewRecurringRuleRepository(db *gorm.DB) adapter.RecurringRuleRepository {
	return &recurringRuleRepository{
		db: db,
	}
}

// Create creates a new recurring rule in the database.
func (r *recurringRuleRepository) Create(ctx context.Context, rule *entity.RecurringRule) error {
	return r.db.WithContext(ctx).Create(model.RecurringRuleFromEntity(rule)).Error
}

// FindByID retrieves a recurring rule by its ID.
func (r *recurringRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringRule, error) {
	var ruleModel model.RecurringRuleModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&ruleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecurringRuleNotFound
		}
		return nil, result.Error
	}
	return ruleModel.ToEntity(), nil
}

// FindByUser retrieves the recurring rules of a user, optionally only the active ones.
func (r *recurringRuleRepository) FindByUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.RecurringRule, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var ruleModels []model.RecurringRuleModel
	if err := query.Order("start_date ASC, id ASC").Find(&ruleModels).Error; err != nil {
		return nil, err
	}

	rules := make([]*entity.RecurringRule, len(ruleModels))
	for i := range ruleModels {
		rules[i] = ruleModels[i].ToEntity()
	}
	return rules, nil
}

// Update updates an existing recurring rule in the database.
func (r *recurringRuleRepository) Update(ctx context.Context, rule *entity.RecurringRule) error {
	result := r.db.WithContext(ctx).Save(model.RecurringRuleFromEntity(rule))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteCascade removes a rule together with its materialized transactions
// and exclusions in one database transaction. It returns how many
// transactions were removed.
func (r *recurringRuleRepository) DeleteCascade(ctx context.Context, id uuid.UUID) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txns := tx.Where("recurring_id = ?", id).Delete(&model.TransactionModel{})
		if txns.Error != nil {
			return txns.Error
		}
		removed = txns.RowsAffected

		if err := tx.Where("rule_id = ?", id).Delete(&model.PredictionExclusionModel{}).Error; err != nil {
			return err
		}

		rule := tx.Where("id = ?", id).Delete(&model.RecurringRuleModel{})
		if rule.Error != nil {
			return rule.Error
		}
		if rule.RowsAffected == 0 {
			return domainerror.ErrRecurringRuleNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
