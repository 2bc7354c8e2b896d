package dto

import (
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/category"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name          string   `json:"name" binding:"required,min=1,max=50"`
	MaxPercentage *float64 `json:"max_percentage,omitempty"`
	MaxValue      *float64 `json:"max_value,omitempty"`
}

// UpdateCategoryLimitsRequest represents the request body for category limit updates.
// Absent fields clear the corresponding limit.
type UpdateCategoryLimitsRequest struct {
	MaxPercentage *float64 `json:"max_percentage"`
	MaxValue      *float64 `json:"max_value"`
}

// CategoryResponse represents one visible category in API responses.
type CategoryResponse struct {
	Name          string  `json:"name"`
	IsDefault     bool    `json:"is_default"`
	ID            *string `json:"id,omitempty"`
	MaxPercentage *string `json:"max_percentage,omitempty"`
	MaxValue      *string `json:"max_value,omitempty"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Hidden     []string           `json:"hidden"`
}

// DeleteCategoryResponse represents the result of deleting or hiding a category.
type DeleteCategoryResponse struct {
	Name   string `json:"name"`
	Hidden bool   `json:"hidden"`
}

// OptionalDecimal converts an optional float to an optional decimal.
func OptionalDecimal(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}

func optionalMoney(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := FormatMoney(*d)
	return &s
}

// ToCategoryResponse converts a custom Category entity to a CategoryResponse DTO.
func ToCategoryResponse(c *entity.Category) CategoryResponse {
	id := c.ID.String()
	return CategoryResponse{
		Name:          c.Name,
		ID:            &id,
		MaxPercentage: optionalMoney(c.MaxPercentage),
		MaxValue:      optionalMoney(c.MaxValue),
	}
}

// ToCategoryListResponse converts a ListCategoriesOutput to a CategoryListResponse DTO.
func ToCategoryListResponse(output *category.ListCategoriesOutput) CategoryListResponse {
	categories := make([]CategoryResponse, 0, len(output.Categories))
	for _, view := range output.Categories {
		if view.Custom != nil {
			categories = append(categories, ToCategoryResponse(view.Custom))
			continue
		}
		categories = append(categories, CategoryResponse{
			Name:      view.Name,
			IsDefault: view.IsDefault,
		})
	}

	hidden := output.Hidden
	if hidden == nil {
		hidden = []string{}
	}

	return CategoryListResponse{
		Categories: categories,
		Hidden:     hidden,
	}
}
