package prediction

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// ConvertOverrides are optional fields replacing the prediction's values.
type ConvertOverrides struct {
	Description *string
	Category    *string
	Value       *decimal.Decimal
	Date        *time.Time
	IsPaid      *bool
}

// ConvertPredictionInput represents the input for converting a prediction into a real transaction.
type ConvertPredictionInput struct {
	UserID    uuid.UUID
	Key       string
	Overrides ConvertOverrides
}

// ConvertPredictionOutput represents the output of converting a prediction.
type ConvertPredictionOutput struct {
	Transaction *entity.Transaction
}

// ConvertPredictionUseCase materializes a live prediction as a persisted transaction.
type ConvertPredictionUseCase struct {
	projector *Projector
	txnRepo   adapter.TransactionRepository
	ledger    *Ledger
	logger    *slog.Logger
}

// NewConvertPredictionUseCase creates a new ConvertPredictionUseCase instance.
func NewConvertPredictionUseCase(
	projector *Projector,
	txnRepo adapter.TransactionRepository,
	ledger *Ledger,
	logger *slog.Logger,
) *ConvertPredictionUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConvertPredictionUseCase{
		projector: projector,
		txnRepo:   txnRepo,
		ledger:    ledger,
		logger:    logger,
	}
}

// Execute performs the conversion.
func (uc *ConvertPredictionUseCase) Execute(ctx context.Context, input ConvertPredictionInput) (*ConvertPredictionOutput, error) {
	key, err := parseKey(input.Key)
	if err != nil {
		return nil, err
	}

	// Validate overrides before touching storage
	if err := validateOverrides(input.Overrides); err != nil {
		return nil, err
	}

	snap, err := uc.projector.Snapshot(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	// Locate the live prediction
	predicted, ok := uc.projector.Find(snap, key)
	if !ok || predicted.UserID != input.UserID {
		return nil, predictionNotFound()
	}

	// One real instance per rule and month: the date may only move within the month
	if o := input.Overrides.Date; o != nil && valueobject.MonthOf(*o) != predicted.Month {
		return nil, domainerror.NewPredictionError(
			domainerror.ErrCodeDateOutsideMonth,
			"date must stay within "+predicted.Month.String(),
			domainerror.ErrDateOutsidePredictionMonth,
		)
	}

	txn := predicted.Materialize()
	applyOverrides(txn, input.Overrides)

	if err := uc.txnRepo.Create(ctx, txn); err != nil {
		return nil, domainerror.NewPersistenceError("create transaction", err)
	}

	// The real instance already suppresses the prediction; the ledger entry
	// keeps it suppressed if the transaction is later moved or deleted.
	if _, err := uc.ledger.Exclude(ctx, input.UserID, key); err != nil {
		uc.logger.Error("converted prediction was not added to the exclusion ledger",
			"owner_id", input.UserID.String(),
			"prediction", key.String(),
			"error", err.Error(),
		)
	}

	return &ConvertPredictionOutput{
		Transaction: txn,
	}, nil
}

func validateOverrides(o ConvertOverrides) error {
	if o.Value != nil && !o.Value.IsPositive() {
		return domainerror.NewPredictionError(
			domainerror.ErrCodeInvalidOverrides,
			"value must be positive",
			domainerror.ErrInvalidTransactionValue,
		)
	}
	if o.Category != nil && strings.TrimSpace(*o.Category) == "" {
		return domainerror.NewPredictionError(
			domainerror.ErrCodeInvalidOverrides,
			"category cannot be empty",
			domainerror.ErrMissingTransactionCategory,
		)
	}
	if o.Date != nil && o.Date.IsZero() {
		return domainerror.NewPredictionError(
			domainerror.ErrCodeInvalidOverrides,
			"invalid date",
			domainerror.ErrInvalidTransactionDate,
		)
	}
	return nil
}

func applyOverrides(txn *entity.Transaction, o ConvertOverrides) {
	if o.Description != nil {
		txn.Description = *o.Description
	}
	if o.Category != nil {
		txn.Category = strings.TrimSpace(*o.Category)
	}
	if o.Value != nil {
		txn.Value = *o.Value
	}
	if o.Date != nil {
		txn.SetDate(*o.Date)
	}
	if o.IsPaid != nil {
		txn.IsPaid = *o.IsPaid
	}
}
