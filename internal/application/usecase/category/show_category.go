package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// ShowCategoryInput represents the input for unhiding a default category.
type ShowCategoryInput struct {
	UserID uuid.UUID
	Name   string
}

// ShowCategoryUseCase makes a hidden default category visible again.
type ShowCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewShowCategoryUseCase creates a new ShowCategoryUseCase instance.
func NewShowCategoryUseCase(categoryRepo adapter.CategoryRepository) *ShowCategoryUseCase {
	return &ShowCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute unhides the category.
func (uc *ShowCategoryUseCase) Execute(ctx context.Context, input ShowCategoryInput) error {
	name, err := normalizeName(input.Name)
	if err != nil {
		return err
	}

	removed, err := uc.categoryRepo.Unhide(ctx, input.UserID, name)
	if err != nil {
		return domainerror.NewPersistenceError("show category", err)
	}
	if !removed {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotHidden,
			"category is not hidden",
			domainerror.ErrCategoryNotHidden,
		)
	}
	return nil
}
