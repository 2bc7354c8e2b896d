package category

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 50

var hundred = decimal.NewFromInt(100)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID        uuid.UUID
	Name          string
	MaxPercentage *decimal.Decimal
	MaxValue      *decimal.Decimal
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name, err := normalizeName(input.Name)
	if err != nil {
		return nil, err
	}

	// Validate limits
	if err := validateLimits(input.MaxPercentage, input.MaxValue); err != nil {
		return nil, err
	}

	// Default names always exist, hidden or not
	if entity.IsDefaultCategory(name) {
		return nil, nameExists()
	}
	existing, err := findCategory(ctx, uc.categoryRepo, input.UserID, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, nameExists()
	}

	category := entity.NewCategory(input.UserID, name)
	category.MaxPercentage = input.MaxPercentage
	category.MaxValue = input.MaxValue

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, domainerror.NewPersistenceError("create category", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

// validateLimits checks that limits are non-negative and percentages at most 100.
func validateLimits(maxPercentage, maxValue *decimal.Decimal) error {
	if maxPercentage != nil && (maxPercentage.IsNegative() || maxPercentage.GreaterThan(hundred)) {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryLimit,
			"max percentage must be between 0 and 100",
			domainerror.ErrInvalidCategoryLimit,
		)
	}
	if maxValue != nil && maxValue.IsNegative() {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryLimit,
			"max value must not be negative",
			domainerror.ErrInvalidCategoryLimit,
		)
	}
	return nil
}

func nameExists() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNameExists,
		"a category with this name already exists",
		domainerror.ErrCategoryNameExists,
	)
}
