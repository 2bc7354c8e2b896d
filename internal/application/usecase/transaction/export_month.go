package transaction

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// ExportMonthInput represents the input for a month export.
type ExportMonthInput struct {
	UserID uuid.UUID
	Month  string
}

// ExportMonthUseCase writes a month's real transactions to a file.
type ExportMonthUseCase struct {
	transactionRepo adapter.TransactionRepository
	codec           adapter.TransactionCodec
}

// NewExportMonthUseCase creates a new ExportMonthUseCase instance.
func NewExportMonthUseCase(transactionRepo adapter.TransactionRepository, codec adapter.TransactionCodec) *ExportMonthUseCase {
	return &ExportMonthUseCase{
		transactionRepo: transactionRepo,
		codec:           codec,
	}
}

// Execute encodes the month into w. Predictions are not exported.
func (uc *ExportMonthUseCase) Execute(ctx context.Context, input ExportMonthInput, w io.Writer) error {
	month, err := parseMonth(input.Month)
	if err != nil {
		return err
	}

	txns, err := uc.transactionRepo.FindByUserAndMonth(ctx, input.UserID, month)
	if err != nil {
		return domainerror.NewPersistenceError("load transactions", err)
	}

	return uc.codec.Encode(w, txns)
}
