package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// maxCopiedDay keeps a copied date inside every month.
const maxCopiedDay = 28

// DuplicateTransactionInput represents the input for copying a transaction forward.
type DuplicateTransactionInput struct {
	ID     string
	UserID uuid.UUID
}

// DuplicateTransactionOutput represents the output of a duplication.
type DuplicateTransactionOutput struct {
	Transaction *entity.Transaction
}

// DuplicateTransactionUseCase copies a real transaction into the next month.
type DuplicateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	notifier        SpendNotifier
}

// NewDuplicateTransactionUseCase creates a new DuplicateTransactionUseCase instance.
func NewDuplicateTransactionUseCase(transactionRepo adapter.TransactionRepository, notifier SpendNotifier) *DuplicateTransactionUseCase {
	return &DuplicateTransactionUseCase{
		transactionRepo: transactionRepo,
		notifier:        notifier,
	}
}

// Execute creates an unpaid, unlinked copy dated in the following month.
func (uc *DuplicateTransactionUseCase) Execute(ctx context.Context, input DuplicateTransactionInput) (*DuplicateTransactionOutput, error) {
	id, err := parseTransactionID(input.ID)
	if err != nil {
		return nil, err
	}

	source, err := findOwnedTransaction(ctx, uc.transactionRepo, id, input.UserID)
	if err != nil {
		return nil, err
	}

	day := min(source.Date.Day(), maxCopiedDay)
	copied := entity.NewTransaction(
		source.UserID,
		source.Description,
		source.Type,
		source.Category,
		source.Value,
		source.Month.AddMonths(1).Date(day),
		false,
	)

	if err := uc.transactionRepo.Create(ctx, copied); err != nil {
		return nil, domainerror.NewPersistenceError("create transaction", err)
	}

	notifyExpense(ctx, uc.notifier, copied)

	return &DuplicateTransactionOutput{
		Transaction: copied,
	}, nil
}
