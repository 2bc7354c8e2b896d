package dashboard

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/prediction"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/projection"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

var hundred = decimal.NewFromInt(100)

// GetCategoryBreakdownInput represents the input for getting category breakdown.
type GetCategoryBreakdownInput struct {
	UserID uuid.UUID
	Month  string
}

// CategoryBreakdownItem is the expense total of one category.
type CategoryBreakdownItem struct {
	Category         string
	Amount           decimal.Decimal
	PredictedAmount  decimal.Decimal
	Percentage       decimal.Decimal
	TransactionCount int
}

// GetCategoryBreakdownOutput represents the output of getting category breakdown.
type GetCategoryBreakdownOutput struct {
	Month         valueobject.Month
	TotalExpenses decimal.Decimal
	Categories    []CategoryBreakdownItem
}

// GetCategoryBreakdownUseCase handles getting spending breakdown by category
// over the merged view of a month.
type GetCategoryBreakdownUseCase struct {
	projector *prediction.Projector
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(projector *prediction.Projector) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		projector: projector,
	}
}

// Execute groups the month's expenses by category, largest first.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	month, err := valueobject.ParseMonth(input.Month)
	if err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidMonthRange,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidMonthRange,
		)
	}

	snap, err := uc.projector.Snapshot(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	view := projection.Merge(projection.InMonth(snap.Transactions, month), uc.projector.PredictMonth(snap, month))

	byCategory := make(map[string]*CategoryBreakdownItem)
	total := decimal.Zero
	for _, t := range view {
		if t.Type != entity.TransactionTypeExpense {
			continue
		}
		item, ok := byCategory[t.Category]
		if !ok {
			item = &CategoryBreakdownItem{Category: t.Category, Amount: decimal.Zero, PredictedAmount: decimal.Zero}
			byCategory[t.Category] = item
		}
		item.Amount = item.Amount.Add(t.Value)
		if t.IsPredicted {
			item.PredictedAmount = item.PredictedAmount.Add(t.Value)
		}
		item.TransactionCount++
		total = total.Add(t.Value)
	}

	categories := make([]CategoryBreakdownItem, 0, len(byCategory))
	for _, item := range byCategory {
		if total.IsPositive() {
			item.Percentage = item.Amount.Mul(hundred).Div(total).Round(2)
		}
		categories = append(categories, *item)
	}
	sort.Slice(categories, func(i, j int) bool {
		if !categories[i].Amount.Equal(categories[j].Amount) {
			return categories[i].Amount.GreaterThan(categories[j].Amount)
		}
		return categories[i].Category < categories[j].Category
	})

	return &GetCategoryBreakdownOutput{
		Month:         month,
		TotalExpenses: total,
		Categories:    categories,
	}, nil
}
