package transaction

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// ruleLookahead is how far past a rule's end (or today) its months are offered.
const ruleLookahead = 12

// AvailableMonthsInput represents the input for the month selector.
type AvailableMonthsInput struct {
	UserID uuid.UUID
}

// AvailableMonthsOutput lists selectable months, newest first.
type AvailableMonthsOutput struct {
	Months []valueobject.Month
}

// AvailableMonthsUseCase lists the months a user can navigate to.
type AvailableMonthsUseCase struct {
	transactionRepo adapter.TransactionRepository
	ruleRepo        adapter.RecurringRuleRepository
	clock           adapter.Clock
}

// NewAvailableMonthsUseCase creates a new AvailableMonthsUseCase instance.
func NewAvailableMonthsUseCase(transactionRepo adapter.TransactionRepository, ruleRepo adapter.RecurringRuleRepository, clock adapter.Clock) *AvailableMonthsUseCase {
	return &AvailableMonthsUseCase{
		transactionRepo: transactionRepo,
		ruleRepo:        ruleRepo,
		clock:           clock,
	}
}

// Execute returns months with data, the current month and every month a
// rule covers up to twelve months past its end date (or today).
func (uc *AvailableMonthsUseCase) Execute(ctx context.Context, input AvailableMonthsInput) (*AvailableMonthsOutput, error) {
	today := valueobject.MonthOf(uc.clock.Now())
	set := map[valueobject.Month]struct{}{today: {}}

	months, err := uc.transactionRepo.ListMonths(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewPersistenceError("list months", err)
	}
	for _, m := range months {
		set[m] = struct{}{}
	}

	rules, err := uc.ruleRepo.FindByUser(ctx, input.UserID, false)
	if err != nil {
		return nil, domainerror.NewPersistenceError("load recurring rules", err)
	}
	for _, rule := range rules {
		if rule.StartDate.IsZero() {
			continue
		}
		last := today
		if rule.EndDate != nil {
			last = valueobject.MonthOf(*rule.EndDate)
		}
		last = last.AddMonths(ruleLookahead)
		for m := valueobject.MonthOf(rule.StartDate); !m.After(last); m = m.AddMonths(1) {
			set[m] = struct{}{}
		}
	}

	out := make([]valueobject.Month, 0, len(set))
	for m := range set {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].After(out[j])
	})

	return &AvailableMonthsOutput{
		Months: out,
	}, nil
}
