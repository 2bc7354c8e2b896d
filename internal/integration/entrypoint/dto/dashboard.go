package dto

import (
	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/dashboard"
)

// TrendsResponse represents the response for the monthly trends API.
type TrendsResponse struct {
	From   string               `json:"from"`
	To     string               `json:"to"`
	Trends []TrendPointResponse `json:"trends"`
}

// TrendPointResponse represents the merged totals of a single month.
type TrendPointResponse struct {
	Month          string `json:"month"`
	Income         string `json:"income"`
	Expenses       string `json:"expenses"`
	Balance        string `json:"balance"`
	PredictedCount int    `json:"predicted_count"`
	Count          int    `json:"count"`
}

// CategoryBreakdownResponse represents the expense breakdown of a month.
type CategoryBreakdownResponse struct {
	Month         string                          `json:"month"`
	TotalExpenses string                          `json:"total_expenses"`
	Categories    []CategoryBreakdownItemResponse `json:"categories"`
}

// CategoryBreakdownItemResponse represents one category in the breakdown.
type CategoryBreakdownItemResponse struct {
	Category         string `json:"category"`
	Amount           string `json:"amount"`
	PredictedAmount  string `json:"predicted_amount"`
	Percentage       string `json:"percentage"`
	TransactionCount int    `json:"transaction_count"`
}

// ToTrendsResponse converts a GetTrendsOutput to a TrendsResponse DTO.
func ToTrendsResponse(output *dashboard.GetTrendsOutput) TrendsResponse {
	trends := make([]TrendPointResponse, 0, len(output.Trends))
	for _, p := range output.Trends {
		trends = append(trends, TrendPointResponse{
			Month:          p.Month.String(),
			Income:         FormatMoney(p.Income),
			Expenses:       FormatMoney(p.Expenses),
			Balance:        FormatMoney(p.Balance),
			PredictedCount: p.PredictedCount,
			Count:          p.Count,
		})
	}

	return TrendsResponse{
		From:   output.From.String(),
		To:     output.To.String(),
		Trends: trends,
	}
}

// ToCategoryBreakdownResponse converts a GetCategoryBreakdownOutput to a CategoryBreakdownResponse DTO.
func ToCategoryBreakdownResponse(output *dashboard.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	items := make([]CategoryBreakdownItemResponse, 0, len(output.Categories))
	for _, c := range output.Categories {
		items = append(items, CategoryBreakdownItemResponse{
			Category:         c.Category,
			Amount:           FormatMoney(c.Amount),
			PredictedAmount:  FormatMoney(c.PredictedAmount),
			Percentage:       FormatMoney(c.Percentage),
			TransactionCount: c.TransactionCount,
		})
	}

	return CategoryBreakdownResponse{
		Month:         output.Month.String(),
		TotalExpenses: FormatMoney(output.TotalExpenses),
		Categories:    items,
	}
}
