package persistence

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/persistence/model"
)

// exclusionRepository implements the adapter.ExclusionRepository interface.
type exclusionRepository struct {
	db *gorm.DB
}

// NewExclusionRepository creates a new prediction exclusion repository instance.
func NewExclusionRepository(db *gorm.DB) adapter.ExclusionRepository {
	return &exclusionRepository{
		db: db,
	}
}

// Add records a dismissed prediction. Adding an existing key is a no-op.
func (r *exclusionRepository) Add(ctx context.Context, userID uuid.UUID, key valueobject.PredictionKey) error {
	row := &model.PredictionExclusionModel{
		ID:        uuid.New(),
		UserID:    userID,
		RuleID:    key.RuleID,
		Month:     key.Month.String(),
		CreatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row).Error
}

// Remove deletes a dismissed prediction and reports whether it existed.
func (r *exclusionRepository) Remove(ctx context.Context, userID uuid.UUID, key valueobject.PredictionKey) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND rule_id = ? AND month = ?", userID, key.RuleID, key.Month.String()).
		Delete(&model.PredictionExclusionModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FindByUser loads every dismissed prediction of a user.
func (r *exclusionRepository) FindByUser(ctx context.Context, userID uuid.UUID) (valueobject.ExclusionSet, error) {
	var rows []model.PredictionExclusionModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}

	set := valueobject.NewExclusionSet()
	for _, row := range rows {
		month, err := valueobject.ParseMonth(row.Month)
		if err != nil {
			slog.Warn("Skipping malformed exclusion", "user_id", userID, "rule_id", row.RuleID, "month", row.Month)
			continue
		}
		set.Add(valueobject.NewPredictionKey(row.RuleID, month))
	}
	return set, nil
}
