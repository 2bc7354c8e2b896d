package prediction

import (
	"context"

	"github.com/google/uuid"

	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// RestorePredictionInput represents the input for restoring a dismissed prediction.
type RestorePredictionInput struct {
	UserID uuid.UUID
	Key    string
}

// RestorePredictionOutput represents the output of restoring a prediction.
type RestorePredictionOutput struct {
	Key        valueobject.PredictionKey
	Exclusions valueobject.ExclusionSet
}

// RestorePredictionUseCase removes a key from the exclusion ledger so the
// prediction surfaces again on the next projection.
type RestorePredictionUseCase struct {
	ledger *Ledger
}

// NewRestorePredictionUseCase creates a new RestorePredictionUseCase instance.
func NewRestorePredictionUseCase(ledger *Ledger) *RestorePredictionUseCase {
	return &RestorePredictionUseCase{
		ledger: ledger,
	}
}

// Execute performs the restore.
func (uc *RestorePredictionUseCase) Execute(ctx context.Context, input RestorePredictionInput) (*RestorePredictionOutput, error) {
	key, err := parseKey(input.Key)
	if err != nil {
		return nil, err
	}

	removed, set, err := uc.ledger.Restore(ctx, input.UserID, key)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, domainerror.NewPredictionError(
			domainerror.ErrCodePredictionNotExcluded,
			"prediction is not excluded",
			domainerror.ErrPredictionNotExcluded,
		)
	}

	return &RestorePredictionOutput{
		Key:        key,
		Exclusions: set,
	}, nil
}
