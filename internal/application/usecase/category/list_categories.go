// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	UserID uuid.UUID
}

// ListCategoriesOutput is the visible category list and the hidden defaults.
type ListCategoriesOutput struct {
	Categories []entity.CategoryView
	Hidden     []string
}

// ListCategoriesUseCase handles category listing logic.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute returns the default categories minus the hidden ones, followed by
// the user's custom categories. A stored row named like a default category
// only carries that category's limits.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	hidden, err := uc.categoryRepo.FindHidden(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewPersistenceError("load hidden categories", err)
	}
	custom, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewPersistenceError("load categories", err)
	}

	isHidden := make(map[string]bool, len(hidden))
	for _, name := range hidden {
		isHidden[name] = true
	}
	byName := make(map[string]*entity.Category, len(custom))
	for _, c := range custom {
		byName[c.Name] = c
	}

	views := make([]entity.CategoryView, 0, len(entity.DefaultCategories)+len(custom))
	for _, name := range entity.DefaultCategories {
		if isHidden[name] {
			continue
		}
		views = append(views, entity.CategoryView{Name: name, IsDefault: true, Custom: byName[name]})
	}
	for _, c := range custom {
		if entity.IsDefaultCategory(c.Name) {
			continue
		}
		views = append(views, entity.CategoryView{Name: c.Name, Custom: c})
	}

	return &ListCategoriesOutput{
		Categories: views,
		Hidden:     hidden,
	}, nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeMissingCategoryFields,
			"category name is required",
			nil,
		)
	}
	if len(name) > MaxCategoryNameLength {
		return "", domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			"category name must not exceed 50 characters",
			domainerror.ErrCategoryNameTooLong,
		)
	}
	return name, nil
}

// findCategory returns the stored row for name, or nil when there is none.
func findCategory(ctx context.Context, repo adapter.CategoryRepository, userID uuid.UUID, name string) (*entity.Category, error) {
	c, err := repo.FindByName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, nil
		}
		return nil, domainerror.NewPersistenceError("find category", err)
	}
	return c, nil
}

func categoryNotFound() error {
	return domainerror.NewCategoryError(
		domainerror.ErrCodeCategoryNotFound,
		"category not found",
		domainerror.ErrCategoryNotFound,
	)
}
