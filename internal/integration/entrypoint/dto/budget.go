package dto

import (
	"time"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
)

// SetBudgetRequest represents the request body for creating or replacing a budget.
type SetBudgetRequest struct {
	Category       string  `json:"category" binding:"required"`
	Month          string  `json:"month" binding:"required"`
	BudgetValue    float64 `json:"budget_value" binding:"required"`
	AlertThreshold *int    `json:"alert_threshold,omitempty"`
}

// BudgetResponse represents a category budget in API responses.
type BudgetResponse struct {
	ID             string    `json:"id"`
	Category       string    `json:"category"`
	Month          string    `json:"month"`
	BudgetValue    string    `json:"budget_value"`
	AlertThreshold int       `json:"alert_threshold"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// BudgetStatusResponse represents the spend-vs-ceiling view of a budget.
type BudgetStatusResponse struct {
	Budget         BudgetResponse `json:"budget"`
	SpentValue     string         `json:"spent_value"`
	RemainingValue string         `json:"remaining_value"`
	PercentageUsed string         `json:"percentage_used"`
	IsOverBudget   bool           `json:"is_over_budget"`
	IsNearLimit    bool           `json:"is_near_limit"`
}

// BudgetStatusListResponse represents the response for budget statuses.
type BudgetStatusListResponse struct {
	Statuses []BudgetStatusResponse `json:"statuses"`
}

// ToBudgetResponse converts a CategoryBudget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.CategoryBudget) BudgetResponse {
	return BudgetResponse{
		ID:             b.ID.String(),
		Category:       b.Category,
		Month:          b.Month.String(),
		BudgetValue:    FormatMoney(b.BudgetValue),
		AlertThreshold: b.AlertThreshold,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// ToBudgetListResponse converts a slice of budgets to a BudgetListResponse DTO.
func ToBudgetListResponse(budgets []*entity.CategoryBudget) BudgetListResponse {
	responses := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		responses = append(responses, ToBudgetResponse(b))
	}
	return BudgetListResponse{Budgets: responses}
}

// ToBudgetStatusListResponse converts budget statuses to a BudgetStatusListResponse DTO.
func ToBudgetStatusListResponse(statuses []*entity.BudgetStatus) BudgetStatusListResponse {
	responses := make([]BudgetStatusResponse, 0, len(statuses))
	for _, s := range statuses {
		responses = append(responses, BudgetStatusResponse{
			Budget:         ToBudgetResponse(s.Budget),
			SpentValue:     FormatMoney(s.SpentValue),
			RemainingValue: FormatMoney(s.RemainingValue),
			PercentageUsed: FormatMoney(s.PercentageUsed),
			IsOverBudget:   s.IsOverBudget,
			IsNearLimit:    s.IsNearLimit,
		})
	}
	return BudgetStatusListResponse{Statuses: responses}
}
