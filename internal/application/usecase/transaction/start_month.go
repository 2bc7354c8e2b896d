package transaction

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// StartMonthInput represents the input for opening a month.
type StartMonthInput struct {
	UserID           uuid.UUID
	Month            string
	CopyFromPrevious bool
}

// StartMonthOutput represents the output of opening a month.
type StartMonthOutput struct {
	Month  valueobject.Month
	Copied []*entity.Transaction
}

// StartMonthUseCase opens a month, optionally seeding it with copies of the
// previous month's transactions, and selects it in the session.
type StartMonthUseCase struct {
	transactionRepo adapter.TransactionRepository
	sessionStore    adapter.SessionStore
	logger          *slog.Logger
}

// NewStartMonthUseCase creates a new StartMonthUseCase instance.
func NewStartMonthUseCase(transactionRepo adapter.TransactionRepository, sessionStore adapter.SessionStore, logger *slog.Logger) *StartMonthUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &StartMonthUseCase{
		transactionRepo: transactionRepo,
		sessionStore:    sessionStore,
		logger:          logger,
	}
}

// Execute performs the month start.
func (uc *StartMonthUseCase) Execute(ctx context.Context, input StartMonthInput) (*StartMonthOutput, error) {
	month, err := parseMonth(input.Month)
	if err != nil {
		return nil, err
	}

	var copied []*entity.Transaction
	if input.CopyFromPrevious {
		previous, err := uc.transactionRepo.FindByUserAndMonth(ctx, input.UserID, month.AddMonths(-1))
		if err != nil {
			return nil, domainerror.NewPersistenceError("load previous month", err)
		}

		for _, src := range previous {
			// Rule-linked rows are re-projected by the engine
			if src.IsPredicted || src.RecurringID != nil {
				continue
			}
			copied = append(copied, entity.NewTransaction(
				src.UserID,
				src.Description,
				src.Type,
				src.Category,
				src.Value,
				month.Date(src.Date.Day()),
				false,
			))
		}

		if len(copied) > 0 {
			if err := uc.transactionRepo.CreateBatch(ctx, copied); err != nil {
				return nil, domainerror.NewPersistenceError("copy transactions", err)
			}
		}
	}

	if err := uc.sessionStore.SetSelectedMonth(ctx, input.UserID, month); err != nil {
		uc.logger.Warn("failed to store selected month",
			"owner_id", input.UserID.String(),
			"month", month.String(),
			"error", err.Error(),
		)
	}

	return &StartMonthOutput{
		Month:  month,
		Copied: copied,
	}, nil
}
