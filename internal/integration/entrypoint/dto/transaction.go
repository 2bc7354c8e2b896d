package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/transaction"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// DateLayout is the date format accepted and produced by the API.
const DateLayout = "2006-01-02"

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Value       float64 `json:"value" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=expense income"`
	Category    string  `json:"category" binding:"required"`
	IsPaid      bool    `json:"is_paid"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Date        *string  `json:"date,omitempty"`
	Description *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Value       *float64 `json:"value,omitempty"`
	Type        *string  `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Category    *string  `json:"category,omitempty"`
	IsPaid      *bool    `json:"is_paid,omitempty"`
}

// StartMonthRequest represents the request body for starting a month.
type StartMonthRequest struct {
	CopyFromPrevious bool `json:"copy_from_previous"`
}

// TransactionResponse represents a real or predicted transaction in API responses.
type TransactionResponse struct {
	ID                 string     `json:"id"`
	Date               string     `json:"date"`
	Month              string     `json:"month"`
	Description        string     `json:"description"`
	Type               string     `json:"type"`
	Category           string     `json:"category"`
	Value              string     `json:"value"`
	IsPaid             bool       `json:"is_paid"`
	IsPredicted        bool       `json:"is_predicted"`
	RecurringID        *string    `json:"recurring_id,omitempty"`
	CurrentInstallment *int       `json:"current_installment,omitempty"`
	TotalInstallments  *int       `json:"total_installments,omitempty"`
	CreatedAt          *time.Time `json:"created_at,omitempty"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

// MonthTotalsResponse represents the aggregated totals of a month view.
type MonthTotalsResponse struct {
	Income         string `json:"income"`
	Expense        string `json:"expense"`
	Balance        string `json:"balance"`
	PaidExpense    string `json:"paid_expense"`
	PendingExpense string `json:"pending_expense"`
	PredictedCount int    `json:"predicted_count"`
}

// MonthViewResponse represents the merged real + predicted view of one month.
type MonthViewResponse struct {
	Month        string                `json:"month"`
	Transactions []TransactionResponse `json:"transactions"`
	Totals       MonthTotalsResponse   `json:"totals"`
}

// MonthListResponse represents the list of months with data.
type MonthListResponse struct {
	Months []string `json:"months"`
}

// StartMonthResponse represents the response for starting a month.
type StartMonthResponse struct {
	Month  string                `json:"month"`
	Copied []TransactionResponse `json:"copied"`
}

// ImportResponse represents the result of a CSV import.
type ImportResponse struct {
	Imported          int      `json:"imported"`
	CreatedCategories []string `json:"created_categories"`
}

// FormatMoney renders an amount with two decimal places.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ToTransactionResponse converts a Transaction entity to a TransactionResponse DTO.
// Predictions are identified by their key and carry no timestamps.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:                 txn.ID.String(),
		Date:               txn.Date.Format(DateLayout),
		Month:              txn.Month.String(),
		Description:        txn.Description,
		Type:               string(txn.Type),
		Category:           txn.Category,
		Value:              FormatMoney(txn.Value),
		IsPaid:             txn.IsPaid,
		IsPredicted:        txn.IsPredicted,
		CurrentInstallment: txn.CurrentInstallment,
		TotalInstallments:  txn.TotalInstallments,
	}

	if txn.IsPredicted && txn.Key != nil {
		response.ID = txn.Key.String()
	} else {
		createdAt, updatedAt := txn.CreatedAt, txn.UpdatedAt
		response.CreatedAt = &createdAt
		response.UpdatedAt = &updatedAt
	}

	if txn.RecurringID != nil {
		id := txn.RecurringID.String()
		response.RecurringID = &id
	}

	return response
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txns []*entity.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		responses = append(responses, ToTransactionResponse(txn))
	}
	return responses
}

// ToMonthViewResponse converts a ListMonthOutput to a MonthViewResponse DTO.
func ToMonthViewResponse(output *transaction.ListMonthOutput) MonthViewResponse {
	return MonthViewResponse{
		Month:        output.Month.String(),
		Transactions: ToTransactionResponses(output.Transactions),
		Totals: MonthTotalsResponse{
			Income:         FormatMoney(output.Totals.Income),
			Expense:        FormatMoney(output.Totals.Expense),
			Balance:        FormatMoney(output.Totals.Balance),
			PaidExpense:    FormatMoney(output.Totals.PaidExpense),
			PendingExpense: FormatMoney(output.Totals.PendingExpense),
			PredictedCount: output.Totals.PredictedCount,
		},
	}
}

// ToMonthListResponse converts months to their textual form.
func ToMonthListResponse(months []valueobject.Month) MonthListResponse {
	out := make([]string, 0, len(months))
	for _, m := range months {
		out = append(out, m.String())
	}
	return MonthListResponse{Months: out}
}
