package prediction

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// DismissPredictionInput represents the input for dismissing a prediction.
type DismissPredictionInput struct {
	UserID uuid.UUID
	Key    string
}

// DismissPredictionOutput represents the output of dismissing a prediction.
type DismissPredictionOutput struct {
	Key        valueobject.PredictionKey
	Exclusions valueobject.ExclusionSet
}

// DismissPredictionUseCase adds a prediction to the exclusion ledger. No
// transaction row is touched.
type DismissPredictionUseCase struct {
	ruleRepo adapter.RecurringRuleRepository
	ledger   *Ledger
}

// NewDismissPredictionUseCase creates a new DismissPredictionUseCase instance.
func NewDismissPredictionUseCase(ruleRepo adapter.RecurringRuleRepository, ledger *Ledger) *DismissPredictionUseCase {
	return &DismissPredictionUseCase{
		ruleRepo: ruleRepo,
		ledger:   ledger,
	}
}

// Execute performs the dismissal.
func (uc *DismissPredictionUseCase) Execute(ctx context.Context, input DismissPredictionInput) (*DismissPredictionOutput, error) {
	key, err := parseKey(input.Key)
	if err != nil {
		return nil, err
	}

	// The key must name one of the user's rules
	rule, err := uc.ruleRepo.FindByID(ctx, key.RuleID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecurringRuleNotFound) {
			return nil, predictionNotFound()
		}
		return nil, domainerror.NewPersistenceError("find recurring rule", err)
	}
	if rule.UserID != input.UserID {
		return nil, predictionNotFound()
	}

	set, err := uc.ledger.Exclude(ctx, input.UserID, key)
	if err != nil {
		return nil, err
	}

	return &DismissPredictionOutput{
		Key:        key,
		Exclusions: set,
	}, nil
}
