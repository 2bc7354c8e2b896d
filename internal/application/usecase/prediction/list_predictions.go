package prediction

import (
	"context"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

// ListPredictionsInput represents the input for listing predictions.
type ListPredictionsInput struct {
	UserID  uuid.UUID
	Horizon *int // Optional, defaults to the configured horizon
}

// ListPredictionsOutput represents the output of listing predictions.
type ListPredictionsOutput struct {
	Predictions []*entity.Transaction
	Horizon     int
}

// ListPredictionsUseCase handles listing every live prediction over a horizon.
type ListPredictionsUseCase struct {
	projector *Projector
}

// NewListPredictionsUseCase creates a new ListPredictionsUseCase instance.
func NewListPredictionsUseCase(projector *Projector) *ListPredictionsUseCase {
	return &ListPredictionsUseCase{
		projector: projector,
	}
}

// Execute performs the listing.
func (uc *ListPredictionsUseCase) Execute(ctx context.Context, input ListPredictionsInput) (*ListPredictionsOutput, error) {
	bounds := uc.projector.Horizon()
	horizon := bounds.Default
	if input.Horizon != nil {
		if *input.Horizon < 0 || *input.Horizon > bounds.Max {
			return nil, domainerror.NewPredictionError(
				domainerror.ErrCodeInvalidHorizon,
				"horizon must be between 0 and the configured maximum",
				domainerror.ErrInvalidHorizon,
			)
		}
		horizon = *input.Horizon
	}

	snap, err := uc.projector.Snapshot(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &ListPredictionsOutput{
		Predictions: uc.projector.Predict(snap, horizon),
		Horizon:     horizon,
	}, nil
}
