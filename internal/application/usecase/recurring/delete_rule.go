package recurring

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/prediction"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// DeleteRuleInput represents the input for rule deletion.
type DeleteRuleInput struct {
	RuleID uuid.UUID
	UserID uuid.UUID
}

// DeleteRuleOutput represents the output of rule deletion.
type DeleteRuleOutput struct {
	DeletedTransactions int64
}

// DeleteRuleUseCase deletes a rule, the real transactions generated from it
// and its exclusion ledger entries.
type DeleteRuleUseCase struct {
	ruleRepo adapter.RecurringRuleRepository
	ledger   *prediction.Ledger
	logger   *slog.Logger
}

// NewDeleteRuleUseCase creates a new DeleteRuleUseCase instance.
func NewDeleteRuleUseCase(ruleRepo adapter.RecurringRuleRepository, ledger *prediction.Ledger, logger *slog.Logger) *DeleteRuleUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeleteRuleUseCase{
		ruleRepo: ruleRepo,
		ledger:   ledger,
		logger:   logger,
	}
}

// Execute performs the rule deletion.
func (uc *DeleteRuleUseCase) Execute(ctx context.Context, input DeleteRuleInput) (*DeleteRuleOutput, error) {
	if _, err := findOwnedRule(ctx, uc.ruleRepo, input.RuleID, input.UserID); err != nil {
		return nil, err
	}

	deleted, err := uc.ruleRepo.DeleteCascade(ctx, input.RuleID)
	if err != nil {
		return nil, domainerror.NewPersistenceError("delete recurring rule", err)
	}

	// The delete is committed; cached keys of a deleted rule match no projection
	if _, err := uc.ledger.Refresh(ctx, input.UserID); err != nil {
		uc.logger.Warn("failed to refresh exclusion ledger after rule delete",
			"owner_id", input.UserID.String(),
			"rule_id", input.RuleID.String(),
			"error", err.Error(),
		)
	}

	uc.logger.Info("recurring rule deleted",
		"owner_id", input.UserID.String(),
		"rule_id", input.RuleID.String(),
		"deleted_transactions", deleted,
	)

	return &DeleteRuleOutput{
		DeletedTransactions: deleted,
	}, nil
}
