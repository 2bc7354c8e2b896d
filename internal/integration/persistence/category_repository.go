package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	result := r.db.WithContext(ctx).Create(model.CategoryFromEntity(category))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByName retrieves a category of a user by name, ignoring case.
func (r *categoryRepository) FindByName(ctx context.Context, userID uuid.UUID, name string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, name).
		First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByUser retrieves all stored categories of a user ordered by name.
func (r *categoryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = categoryModels[i].ToEntity()
	}
	return categories, nil
}

// Update updates an existing category in the database.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := r.db.WithContext(ctx).Save(model.CategoryFromEntity(category))
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a category from the database.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCategoryNotFound
	}
	return nil
}

// Hide marks a default category as hidden for a user. Hiding twice is a no-op.
func (r *categoryRepository) Hide(ctx context.Context, userID uuid.UUID, name string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.HiddenCategoryModel{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      name,
			CreatedAt: time.Now().UTC(),
		}).Error
}

// Unhide restores a hidden category and reports whether it was hidden.
func (r *categoryRepository) Unhide(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		Delete(&model.HiddenCategoryModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FindHidden lists the names of the categories a user has hidden.
func (r *categoryRepository) FindHidden(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var names []string
	result := r.db.WithContext(ctx).
		Model(&model.HiddenCategoryModel{}).
		Where("user_id = ?", userID).
		Order("name ASC").
		Pluck("name", &names)
	if result.Error != nil {
		return nil, result.Error
	}
	return names, nil
}
