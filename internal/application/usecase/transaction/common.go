// Package transaction contains real transaction use cases and the month view.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// parseTransactionID resolves a path id. Prediction keys are recognised and
// rejected: predictions have no persisted row to mutate.
func parseTransactionID(raw string) (uuid.UUID, error) {
	if strings.HasPrefix(raw, "predicted-") {
		return uuid.Nil, domainerror.NewTransactionError(
			domainerror.ErrCodePredictionNotMutable,
			"predicted transactions cannot be modified; convert or dismiss the prediction instead",
			domainerror.ErrPredictionNotMutable,
		)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, transactionNotFound()
	}
	return id, nil
}

// findOwnedTransaction loads a transaction and hides other owners' rows behind not found.
func findOwnedTransaction(ctx context.Context, repo adapter.TransactionRepository, id, userID uuid.UUID) (*entity.Transaction, error) {
	txn, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, transactionNotFound()
		}
		return nil, domainerror.NewPersistenceError("find transaction", err)
	}
	if txn.UserID != userID {
		return nil, transactionNotFound()
	}
	return txn, nil
}

func transactionNotFound() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}

func parseMonth(raw string) (valueobject.Month, error) {
	month, err := valueobject.ParseMonth(raw)
	if err != nil {
		return valueobject.Month{}, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidMonth,
		)
	}
	return month, nil
}

// validateFields checks the fields shared by create, update and import.
func validateFields(description string, txnType entity.TransactionType, category string, value decimal.Decimal, date time.Time) error {
	if len(description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	if !txnType.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if strings.TrimSpace(category) == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"category is required",
			domainerror.ErrMissingTransactionCategory,
		)
	}
	if !value.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionValue,
			"value must be greater than zero",
			domainerror.ErrInvalidTransactionValue,
		)
	}
	if date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}
	return nil
}

// SpendNotifier is told about persisted changes in real expense spending.
type SpendNotifier interface {
	SpendChanged(ctx context.Context, userID uuid.UUID, category string, month valueobject.Month, delta decimal.Decimal)
}

func notifyExpense(ctx context.Context, n SpendNotifier, txn *entity.Transaction) {
	if n == nil || txn.Type != entity.TransactionTypeExpense {
		return
	}
	n.SpendChanged(ctx, txn.UserID, txn.Category, txn.Month, txn.Value)
}
