package dto

import (
	"time"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
)

// CreateRecurringRuleRequest represents the request body for recurring rule creation.
type CreateRecurringRuleRequest struct {
	Description       string  `json:"description" binding:"required,min=1,max=255"`
	Type              string  `json:"type" binding:"required,oneof=expense income"`
	Category          string  `json:"category" binding:"required"`
	Value             float64 `json:"value" binding:"required"`
	Kind              string  `json:"kind" binding:"required,oneof=fixed installment variable variable_by_income"`
	DayOfMonth        int     `json:"day_of_month" binding:"required"`
	StartDate         string  `json:"start_date" binding:"required"`
	EndDate           *string `json:"end_date,omitempty"`
	TotalInstallments *int    `json:"total_installments,omitempty"`
	SelectedIncomeID  *string `json:"selected_income_id,omitempty"`
}

// UpdateRecurringRuleRequest represents the request body for recurring rule update.
type UpdateRecurringRuleRequest struct {
	Description       *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Type              *string  `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Category          *string  `json:"category,omitempty"`
	Value             *float64 `json:"value,omitempty"`
	Kind              *string  `json:"kind,omitempty" binding:"omitempty,oneof=fixed installment variable variable_by_income"`
	DayOfMonth        *int     `json:"day_of_month,omitempty"`
	StartDate         *string  `json:"start_date,omitempty"`
	EndDate           *string  `json:"end_date,omitempty"`
	ClearEndDate      bool     `json:"clear_end_date,omitempty"`
	TotalInstallments *int     `json:"total_installments,omitempty"`
	SelectedIncomeID  *string  `json:"selected_income_id,omitempty"`
	IsActive          *bool    `json:"is_active,omitempty"`
}

// RecurringRuleResponse represents a recurring rule in API responses.
type RecurringRuleResponse struct {
	ID                string    `json:"id"`
	Description       string    `json:"description"`
	Type              string    `json:"type"`
	Category          string    `json:"category"`
	Value             string    `json:"value"`
	Kind              string    `json:"kind"`
	DayOfMonth        int       `json:"day_of_month"`
	StartDate         string    `json:"start_date"`
	EndDate           *string   `json:"end_date,omitempty"`
	TotalInstallments *int      `json:"total_installments,omitempty"`
	SelectedIncomeID  *string   `json:"selected_income_id,omitempty"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// RecurringRuleListResponse represents the response for listing recurring rules.
type RecurringRuleListResponse struct {
	Rules []RecurringRuleResponse `json:"rules"`
}

// DeleteRecurringRuleResponse represents the response for recurring rule deletion.
type DeleteRecurringRuleResponse struct {
	DeletedTransactions int64 `json:"deleted_transactions"`
}

// ToRecurringRuleResponse converts a RecurringRule entity to a RecurringRuleResponse DTO.
func ToRecurringRuleResponse(rule *entity.RecurringRule) RecurringRuleResponse {
	response := RecurringRuleResponse{
		ID:                rule.ID.String(),
		Description:       rule.Description,
		Type:              string(rule.Type),
		Category:          rule.Category,
		Value:             FormatMoney(rule.Value),
		Kind:              string(rule.Kind),
		DayOfMonth:        rule.DayOfMonth,
		StartDate:         rule.StartDate.Format(DateLayout),
		TotalInstallments: rule.TotalInstallments,
		IsActive:          rule.IsActive,
		CreatedAt:         rule.CreatedAt,
		UpdatedAt:         rule.UpdatedAt,
	}

	if rule.EndDate != nil {
		end := rule.EndDate.Format(DateLayout)
		response.EndDate = &end
	}
	if rule.SelectedIncomeID != nil {
		id := rule.SelectedIncomeID.String()
		response.SelectedIncomeID = &id
	}

	return response
}

// ToRecurringRuleListResponse converts a slice of rules to a RecurringRuleListResponse DTO.
func ToRecurringRuleListResponse(rules []*entity.RecurringRule) RecurringRuleListResponse {
	responses := make([]RecurringRuleResponse, 0, len(rules))
	for _, rule := range rules {
		responses = append(responses, ToRecurringRuleResponse(rule))
	}
	return RecurringRuleListResponse{Rules: responses}
}
