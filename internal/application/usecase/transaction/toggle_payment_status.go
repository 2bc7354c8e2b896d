package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// TogglePaymentStatusInput represents the input for flipping is_paid.
type TogglePaymentStatusInput struct {
	ID     string
	UserID uuid.UUID
}

// TogglePaymentStatusOutput represents the output of a payment toggle.
type TogglePaymentStatusOutput struct {
	Transaction *entity.Transaction
}

// TogglePaymentStatusUseCase flips the paid flag of a real transaction.
type TogglePaymentStatusUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewTogglePaymentStatusUseCase creates a new TogglePaymentStatusUseCase instance.
func NewTogglePaymentStatusUseCase(transactionRepo adapter.TransactionRepository) *TogglePaymentStatusUseCase {
	return &TogglePaymentStatusUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the toggle.
func (uc *TogglePaymentStatusUseCase) Execute(ctx context.Context, input TogglePaymentStatusInput) (*TogglePaymentStatusOutput, error) {
	id, err := parseTransactionID(input.ID)
	if err != nil {
		return nil, err
	}

	txn, err := findOwnedTransaction(ctx, uc.transactionRepo, id, input.UserID)
	if err != nil {
		return nil, err
	}

	txn.IsPaid = !txn.IsPaid
	txn.UpdatedAt = time.Now().UTC()
	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, domainerror.NewPersistenceError("update transaction", err)
	}

	return &TogglePaymentStatusOutput{
		Transaction: txn,
	}, nil
}
