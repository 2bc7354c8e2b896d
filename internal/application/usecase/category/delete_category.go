package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	UserID uuid.UUID
	Name   string
}

// DeleteCategoryOutput reports whether the category was hidden rather than deleted.
type DeleteCategoryOutput struct {
	Hidden bool
}

// DeleteCategoryUseCase hides a default category or deletes a custom one.
// Existing transactions keep their category name.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	name, err := normalizeName(input.Name)
	if err != nil {
		return nil, err
	}

	if entity.IsDefaultCategory(name) {
		if err := uc.categoryRepo.Hide(ctx, input.UserID, name); err != nil {
			return nil, domainerror.NewPersistenceError("hide category", err)
		}
		return &DeleteCategoryOutput{Hidden: true}, nil
	}

	category, err := findCategory(ctx, uc.categoryRepo, input.UserID, name)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, categoryNotFound()
	}

	if err := uc.categoryRepo.Delete(ctx, category.ID); err != nil {
		return nil, domainerror.NewPersistenceError("delete category", err)
	}

	return &DeleteCategoryOutput{Hidden: false}, nil
}
