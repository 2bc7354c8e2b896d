package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	ID     string
	UserID uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute deletes a real transaction owned by the user.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	id, err := parseTransactionID(input.ID)
	if err != nil {
		return err
	}

	if _, err := findOwnedTransaction(ctx, uc.transactionRepo, id, input.UserID); err != nil {
		return err
	}

	if err := uc.transactionRepo.Delete(ctx, id); err != nil {
		return domainerror.NewPersistenceError("delete transaction", err)
	}

	return nil
}
