package category

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter/fake"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestCreateCategoryUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		input    CreateCategoryInput
		seed     string
		wantCode string
	}{
		{name: "custom category", input: CreateCategoryInput{UserID: userID, Name: " Pets ", MaxValue: dec(300)}},
		{name: "empty name", input: CreateCategoryInput{UserID: userID, Name: "  "}, wantCode: string(domainerror.ErrCodeMissingCategoryFields)},
		{name: "name too long", input: CreateCategoryInput{UserID: userID, Name: strings.Repeat("x", 51)}, wantCode: string(domainerror.ErrCodeCategoryNameTooLong)},
		{name: "default name", input: CreateCategoryInput{UserID: userID, Name: "Lazer"}, wantCode: string(domainerror.ErrCodeCategoryNameExists)},
		{name: "duplicate custom", input: CreateCategoryInput{UserID: userID, Name: "Pets"}, seed: "Pets", wantCode: string(domainerror.ErrCodeCategoryNameExists)},
		{name: "percentage over 100", input: CreateCategoryInput{UserID: userID, Name: "Pets", MaxPercentage: dec(101)}, wantCode: string(domainerror.ErrCodeInvalidCategoryLimit)},
		{name: "negative value", input: CreateCategoryInput{UserID: userID, Name: "Pets", MaxValue: dec(-1)}, wantCode: string(domainerror.ErrCodeInvalidCategoryLimit)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := fake.NewCategories()
			if tt.seed != "" {
				_ = repo.Create(context.Background(), entity.NewCategory(userID, tt.seed))
			}

			out, err := NewCreateCategoryUseCase(repo).Execute(context.Background(), tt.input)

			if tt.wantCode != "" {
				code, _ := domainerror.CodeOf(err)
				if code != tt.wantCode {
					t.Errorf("expected code %s, got %v", tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Category.Name != "Pets" {
				t.Errorf("expected trimmed name Pets, got %q", out.Category.Name)
			}
			if out.Category.MaxValue == nil || !out.Category.MaxValue.Equal(decimal.NewFromInt(300)) {
				t.Errorf("expected max value 300")
			}
		})
	}
}

func TestListCategoriesUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	repo := fake.NewCategories()
	ctx := context.Background()

	_ = repo.Hide(ctx, userID, "Assinaturas")
	_ = repo.Create(ctx, entity.NewCategory(userID, "Pets"))
	limits := entity.NewCategory(userID, "Lazer")
	limits.MaxValue = dec(200)
	_ = repo.Create(ctx, limits)

	out, err := NewListCategoriesUseCase(repo).Execute(ctx, ListCategoriesInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Categories) != len(entity.DefaultCategories) {
		t.Fatalf("expected %d categories, got %d", len(entity.DefaultCategories), len(out.Categories))
	}
	last := out.Categories[len(out.Categories)-1]
	if last.Name != "Pets" || last.IsDefault {
		t.Errorf("expected custom Pets last, got %+v", last)
	}
	for _, v := range out.Categories {
		if v.Name == "Assinaturas" {
			t.Errorf("expected hidden category to be omitted")
		}
		if v.Name == "Lazer" && (v.Custom == nil || !v.Custom.MaxValue.Equal(decimal.NewFromInt(200))) {
			t.Errorf("expected Lazer to carry its limits")
		}
	}
	if len(out.Hidden) != 1 || out.Hidden[0] != "Assinaturas" {
		t.Errorf("expected hidden [Assinaturas], got %v", out.Hidden)
	}
}

func TestDeleteAndShowCategory(t *testing.T) {
	userID := uuid.New()
	repo := fake.NewCategories()
	ctx := context.Background()
	_ = repo.Create(ctx, entity.NewCategory(userID, "Pets"))

	out, err := NewDeleteCategoryUseCase(repo).Execute(ctx, DeleteCategoryInput{UserID: userID, Name: "Lazer"})
	if err != nil || !out.Hidden {
		t.Fatalf("expected default category to be hidden, got %v, %v", out, err)
	}

	out, err = NewDeleteCategoryUseCase(repo).Execute(ctx, DeleteCategoryInput{UserID: userID, Name: "Pets"})
	if err != nil || out.Hidden {
		t.Fatalf("expected custom category to be deleted, got %v, %v", out, err)
	}
	if _, err := repo.FindByName(ctx, userID, "Pets"); !errors.Is(err, domainerror.ErrCategoryNotFound) {
		t.Errorf("expected Pets to be gone")
	}

	_, err = NewDeleteCategoryUseCase(repo).Execute(ctx, DeleteCategoryInput{UserID: userID, Name: "Pets"})
	if !errors.Is(err, domainerror.ErrCategoryNotFound) {
		t.Errorf("expected not found on second delete, got %v", err)
	}

	show := NewShowCategoryUseCase(repo)
	if err := show.Execute(ctx, ShowCategoryInput{UserID: userID, Name: "Lazer"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := show.Execute(ctx, ShowCategoryInput{UserID: userID, Name: "Lazer"}); !errors.Is(err, domainerror.ErrCategoryNotHidden) {
		t.Errorf("expected not hidden, got %v", err)
	}
}

func TestUpdateCategoryLimitsUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	repo := fake.NewCategories()
	ctx := context.Background()
	uc := NewUpdateCategoryLimitsUseCase(repo)

	out, err := uc.Execute(ctx, UpdateCategoryLimitsInput{UserID: userID, Name: "Moradia", MaxPercentage: dec(30)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Category.MaxPercentage == nil || !out.Category.MaxPercentage.Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected 30%% limit on Moradia")
	}

	out, err = uc.Execute(ctx, UpdateCategoryLimitsInput{UserID: userID, Name: "Moradia", MaxValue: dec(1500)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Category.MaxPercentage != nil {
		t.Errorf("expected percentage limit to be cleared")
	}
	stored, _ := repo.FindByUser(ctx, userID)
	if len(stored) != 1 {
		t.Errorf("expected a single limits row, got %d", len(stored))
	}

	_, err = uc.Execute(ctx, UpdateCategoryLimitsInput{UserID: userID, Name: "Desconhecida", MaxValue: dec(1)})
	if !errors.Is(err, domainerror.ErrCategoryNotFound) {
		t.Errorf("expected not found for unknown custom category, got %v", err)
	}
}
