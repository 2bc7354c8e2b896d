package transaction

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// UpdateTransactionInput represents the input for a partial transaction update.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	ID          string
	UserID      uuid.UUID
	Description *string
	Type        *entity.TransactionType
	Category    *string
	Value       *decimal.Decimal
	Date        *time.Time
	IsPaid      *bool
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	notifier        SpendNotifier
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository, notifier SpendNotifier) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		notifier:        notifier,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	id, err := parseTransactionID(input.ID)
	if err != nil {
		return nil, err
	}

	existing, err := findOwnedTransaction(ctx, uc.transactionRepo, id, input.UserID)
	if err != nil {
		return nil, err
	}

	// Work on a copy so a validation failure leaves the loaded row untouched
	updated := *existing
	if input.Description != nil {
		updated.Description = strings.TrimSpace(*input.Description)
	}
	if input.Type != nil {
		updated.Type = *input.Type
	}
	if input.Category != nil {
		updated.Category = strings.TrimSpace(*input.Category)
	}
	if input.Value != nil {
		updated.Value = *input.Value
	}
	if input.Date != nil {
		updated.SetDate(*input.Date)
	}
	if input.IsPaid != nil {
		updated.IsPaid = *input.IsPaid
	}

	if err := validateFields(updated.Description, updated.Type, updated.Category, updated.Value, updated.Date); err != nil {
		return nil, err
	}
	if existing.RecurringID != nil && updated.Month != existing.Month {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeRecurringInstanceMoved,
			"a recurring instance must stay within "+existing.Month.String(),
			domainerror.ErrRecurringInstanceMoved,
		)
	}

	updated.UpdatedAt = time.Now().UTC()
	if err := uc.transactionRepo.Update(ctx, &updated); err != nil {
		return nil, domainerror.NewPersistenceError("update transaction", err)
	}

	uc.notify(ctx, existing, &updated)

	return &UpdateTransactionOutput{
		Transaction: &updated,
	}, nil
}

// notify reports the spend delta of the bucket the transaction ends up in.
func (uc *UpdateTransactionUseCase) notify(ctx context.Context, before, after *entity.Transaction) {
	if uc.notifier == nil || after.Type != entity.TransactionTypeExpense {
		return
	}
	delta := after.Value
	if before.Type == entity.TransactionTypeExpense && before.Category == after.Category && before.Month == after.Month {
		delta = after.Value.Sub(before.Value)
	}
	uc.notifier.SpendChanged(ctx, after.UserID, after.Category, after.Month, delta)
}
