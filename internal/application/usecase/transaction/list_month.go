package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/prediction"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/projection"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// ListMonthInput represents the input for the month view.
type ListMonthInput struct {
	UserID uuid.UUID
	Month  string
}

// ListMonthOutput is the merged view of real transactions and predictions.
type ListMonthOutput struct {
	Month        valueobject.Month
	Transactions []*entity.Transaction
	Totals       entity.MonthTotals
}

// ListMonthUseCase builds the displayed view of one month.
type ListMonthUseCase struct {
	projector *prediction.Projector
}

// NewListMonthUseCase creates a new ListMonthUseCase instance.
func NewListMonthUseCase(projector *prediction.Projector) *ListMonthUseCase {
	return &ListMonthUseCase{
		projector: projector,
	}
}

// Execute loads the user's snapshot and merges the month's real rows with
// its live predictions.
func (uc *ListMonthUseCase) Execute(ctx context.Context, input ListMonthInput) (*ListMonthOutput, error) {
	month, err := parseMonth(input.Month)
	if err != nil {
		return nil, err
	}

	snap, err := uc.projector.Snapshot(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	view := projection.Merge(
		projection.InMonth(snap.Transactions, month),
		uc.projector.PredictMonth(snap, month),
	)

	return &ListMonthOutput{
		Month:        month,
		Transactions: view,
		Totals:       entity.ComputeMonthTotals(view),
	}, nil
}
