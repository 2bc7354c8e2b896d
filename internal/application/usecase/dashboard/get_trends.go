// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/prediction"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/projection"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// MaxTrendMonths bounds the number of months in one trends request.
const MaxTrendMonths = 36

// GetTrendsInput represents the input for getting trends.
type GetTrendsInput struct {
	UserID uuid.UUID
	From   string
	To     string
}

// TrendPoint is the merged totals of one month.
type TrendPoint struct {
	Month          valueobject.Month
	Income         decimal.Decimal
	Expenses       decimal.Decimal
	Balance        decimal.Decimal
	PredictedCount int
	Count          int
}

// GetTrendsOutput represents the output of getting trends.
type GetTrendsOutput struct {
	From   valueobject.Month
	To     valueobject.Month
	Trends []TrendPoint
}

// GetTrendsUseCase handles getting monthly income/expense trends. Months
// from the current one onwards include live predictions.
type GetTrendsUseCase struct {
	projector *prediction.Projector
}

// NewGetTrendsUseCase creates a new GetTrendsUseCase instance.
func NewGetTrendsUseCase(projector *prediction.Projector) *GetTrendsUseCase {
	return &GetTrendsUseCase{
		projector: projector,
	}
}

// Execute retrieves one point per month in [From, To], with no gaps.
func (uc *GetTrendsUseCase) Execute(ctx context.Context, input GetTrendsInput) (*GetTrendsOutput, error) {
	from, to, err := parseRange(input.From, input.To)
	if err != nil {
		return nil, err
	}

	snap, err := uc.projector.Snapshot(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	// One engine run covers every future month in the range
	var predicted map[valueobject.Month][]*entity.Transaction
	if offset := min(to.MonthsSince(uc.projector.Today()), uc.projector.Horizon().Max); offset >= 0 {
		predicted = projection.GroupByMonth(uc.projector.Predict(snap, offset))
	}
	recorded := projection.GroupByMonth(snap.Transactions)

	trends := make([]TrendPoint, 0, to.MonthsSince(from)+1)
	for m := from; !m.After(to); m = m.AddMonths(1) {
		view := projection.Merge(recorded[m], predicted[m])
		totals := entity.ComputeMonthTotals(view)
		trends = append(trends, TrendPoint{
			Month:          m,
			Income:         totals.Income,
			Expenses:       totals.Expense,
			Balance:        totals.Balance,
			PredictedCount: totals.PredictedCount,
			Count:          len(view),
		})
	}

	return &GetTrendsOutput{
		From:   from,
		To:     to,
		Trends: trends,
	}, nil
}

// parseRange validates a month range.
func parseRange(rawFrom, rawTo string) (valueobject.Month, valueobject.Month, error) {
	from, errFrom := valueobject.ParseMonth(rawFrom)
	to, errTo := valueobject.ParseMonth(rawTo)
	if errFrom != nil || errTo != nil {
		return from, to, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidMonthRange,
			"from and to must be in YYYY-MM format",
			domainerror.ErrInvalidMonthRange,
		)
	}

	if to.Before(from) {
		return from, to, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidMonthRange,
			"to must not be before from",
			domainerror.ErrInvalidMonthRange,
		)
	}

	if to.MonthsSince(from)+1 > MaxTrendMonths {
		return from, to, domainerror.NewDashboardError(
			domainerror.ErrCodeMonthRangeTooLong,
			"range must not exceed 36 months",
			domainerror.ErrMonthRangeTooLong,
		)
	}

	return from, to, nil
}
