package category

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// UpdateCategoryLimitsInput replaces both limits of a category. A nil limit
// removes it.
type UpdateCategoryLimitsInput struct {
	UserID        uuid.UUID
	Name          string
	MaxPercentage *decimal.Decimal
	MaxValue      *decimal.Decimal
}

// UpdateCategoryLimitsOutput represents the output of a limits update.
type UpdateCategoryLimitsOutput struct {
	Category *entity.Category
}

// UpdateCategoryLimitsUseCase sets the spending limits of a category.
type UpdateCategoryLimitsUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryLimitsUseCase creates a new UpdateCategoryLimitsUseCase instance.
func NewUpdateCategoryLimitsUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryLimitsUseCase {
	return &UpdateCategoryLimitsUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute updates the limits. Default categories get a limits row on first use.
func (uc *UpdateCategoryLimitsUseCase) Execute(ctx context.Context, input UpdateCategoryLimitsInput) (*UpdateCategoryLimitsOutput, error) {
	name, err := normalizeName(input.Name)
	if err != nil {
		return nil, err
	}
	if err := validateLimits(input.MaxPercentage, input.MaxValue); err != nil {
		return nil, err
	}

	category, err := findCategory(ctx, uc.categoryRepo, input.UserID, name)
	if err != nil {
		return nil, err
	}

	if category == nil {
		if !entity.IsDefaultCategory(name) {
			return nil, categoryNotFound()
		}
		category = entity.NewCategory(input.UserID, name)
		category.MaxPercentage = input.MaxPercentage
		category.MaxValue = input.MaxValue
		if err := uc.categoryRepo.Create(ctx, category); err != nil {
			return nil, domainerror.NewPersistenceError("create category", err)
		}
		return &UpdateCategoryLimitsOutput{Category: category}, nil
	}

	category.MaxPercentage = input.MaxPercentage
	category.MaxValue = input.MaxValue
	category.UpdatedAt = time.Now().UTC()
	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, domainerror.NewPersistenceError("update category", err)
	}

	return &UpdateCategoryLimitsOutput{
		Category: category,
	}, nil
}
