package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=100"`
	Description  string  `json:"description,omitempty" binding:"omitempty,max=500"`
	TargetValue  float64 `json:"target_value" binding:"required"`
	CurrentValue float64 `json:"current_value"`
	Deadline     *string `json:"deadline,omitempty"`
	Category     string  `json:"category,omitempty"`
	Color        string  `json:"color,omitempty"`
	Icon         string  `json:"icon,omitempty"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Name          *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Description   *string  `json:"description,omitempty" binding:"omitempty,max=500"`
	TargetValue   *float64 `json:"target_value,omitempty"`
	CurrentValue  *float64 `json:"current_value,omitempty"`
	Deadline      *string  `json:"deadline,omitempty"`
	ClearDeadline bool     `json:"clear_deadline,omitempty"`
	Category      *string  `json:"category,omitempty"`
	Color         *string  `json:"color,omitempty"`
	Icon          *string  `json:"icon,omitempty"`
}

// ContributeRequest represents the request body for a goal contribution.
// Negative amounts withdraw.
type ContributeRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// GoalResponse represents a financial goal in API responses.
type GoalResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	TargetValue  string    `json:"target_value"`
	CurrentValue string    `json:"current_value"`
	Progress     string    `json:"progress"`
	Deadline     *string   `json:"deadline,omitempty"`
	Category     string    `json:"category,omitempty"`
	Color        string    `json:"color"`
	Icon         string    `json:"icon"`
	IsCompleted  bool      `json:"is_completed"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a FinancialGoal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.FinancialGoal) GoalResponse {
	response := GoalResponse{
		ID:           g.ID.String(),
		Name:         g.Name,
		Description:  g.Description,
		TargetValue:  FormatMoney(g.TargetValue),
		CurrentValue: FormatMoney(g.CurrentValue),
		Progress:     FormatMoney(g.Progress()),
		Category:     g.Category,
		Color:        g.Color,
		Icon:         g.Icon,
		IsCompleted:  g.IsCompleted,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}

	if g.Deadline != nil {
		deadline := g.Deadline.Format(DateLayout)
		response.Deadline = &deadline
	}

	return response
}

// ToGoalListResponse converts a slice of goals to a GoalListResponse DTO.
func ToGoalListResponse(goals []*entity.FinancialGoal) GoalListResponse {
	responses := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		responses = append(responses, ToGoalResponse(g))
	}
	return GoalListResponse{Goals: responses}
}

// ToDecimal converts a request amount to a decimal.
func ToDecimal(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}
