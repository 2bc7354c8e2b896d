package budget

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// ThresholdAlerter queues a budget alert email when a change in real
// spending moves a budget from below its alert threshold to at or above it.
type ThresholdAlerter struct {
	budgetRepo   adapter.BudgetRepository
	txnRepo      adapter.TransactionRepository
	userRepo     adapter.UserRepository
	emailService adapter.EmailService
	enabled      bool
	logger       *slog.Logger
}

// NewThresholdAlerter creates a new ThresholdAlerter instance.
func NewThresholdAlerter(
	budgetRepo adapter.BudgetRepository,
	txnRepo adapter.TransactionRepository,
	userRepo adapter.UserRepository,
	emailService adapter.EmailService,
	enabled bool,
	logger *slog.Logger,
) *ThresholdAlerter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ThresholdAlerter{
		budgetRepo:   budgetRepo,
		txnRepo:      txnRepo,
		userRepo:     userRepo,
		emailService: emailService,
		enabled:      enabled,
		logger:       logger,
	}
}

// SpendChanged is called after real expense spending in (category, month)
// changed by delta and the change has been persisted. Failures are logged.
func (a *ThresholdAlerter) SpendChanged(ctx context.Context, userID uuid.UUID, category string, month valueobject.Month, delta decimal.Decimal) {
	if a == nil || !a.enabled || !delta.IsPositive() {
		return
	}

	if err := a.check(ctx, userID, category, month, delta); err != nil {
		a.logger.Warn("budget alert check failed",
			"owner_id", userID.String(),
			"category", category,
			"month", month.String(),
			"error", err.Error(),
		)
	}
}

func (a *ThresholdAlerter) check(ctx context.Context, userID uuid.UUID, category string, month valueobject.Month, delta decimal.Decimal) error {
	budget, err := a.budgetRepo.FindByCategoryAndMonth(ctx, userID, category, month)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil
		}
		return err
	}

	txns, err := a.txnRepo.FindByUserAndMonth(ctx, userID, month)
	if err != nil {
		return err
	}

	after := budget.Status(txns)
	if !after.ReachedThreshold() {
		return nil
	}

	// Spend before the change, measured against the same threshold
	before := after.SpentValue.Sub(delta)
	if before.GreaterThanOrEqual(budget.ThresholdValue()) {
		return nil
	}

	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.WantsBudgetAlerts() {
		return nil
	}

	return a.emailService.QueueBudgetAlertEmail(ctx, adapter.QueueBudgetAlertInput{
		UserEmail:      user.Email,
		UserName:       user.Name,
		Category:       budget.Category,
		Month:          month.String(),
		BudgetValue:    budget.BudgetValue.StringFixed(2),
		SpentValue:     after.SpentValue.StringFixed(2),
		PercentageUsed: after.PercentageUsed.StringFixed(0),
		IsOverBudget:   after.IsOverBudget,
	})
}
