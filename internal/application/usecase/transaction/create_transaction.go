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

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Description string
	Type        entity.TransactionType
	Category    string
	Value       decimal.Decimal
	Date        time.Time
	IsPaid      bool
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	notifier        SpendNotifier
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository, notifier SpendNotifier) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		notifier:        notifier,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	description := strings.TrimSpace(input.Description)
	category := strings.TrimSpace(input.Category)

	if err := validateFields(description, input.Type, category, input.Value, input.Date); err != nil {
		return nil, err
	}

	txn := entity.NewTransaction(
		input.UserID,
		description,
		input.Type,
		category,
		input.Value,
		input.Date,
		input.IsPaid,
	)

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, domainerror.NewPersistenceError("create transaction", err)
	}

	notifyExpense(ctx, uc.notifier, txn)

	return &CreateTransactionOutput{
		Transaction: txn,
	}, nil
}
