// Package projection expands recurring rules into predicted transactions.
//
// The engine is a pure function of its Input: the same rules, exclusions
// and real transactions always yield the same predictions, with the same
// ids, in the same order.
package projection

import (
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// DefaultHorizon is the number of months after the reference month that are projected.
const DefaultHorizon = 12

// predictionNamespace seeds the deterministic ids given to predictions.
var predictionNamespace = uuid.MustParse("6f1c2a4e-9b7d-4c1e-8a53-2d0f6e9b4c71")

var hundred = decimal.NewFromInt(100)

// Input is a snapshot of everything the engine reads.
type Input struct {
	Rules       []*entity.RecurringRule
	Exclusions  valueobject.ExclusionSet
	RealByMonth map[valueobject.Month][]*entity.Transaction
	// AllKnown is searched when resolving variable_by_income references.
	AllKnown  []*entity.Transaction
	Horizon   int
	Reference time.Time
}

// Engine generates predicted transactions.
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates a new Engine. A nil logger falls back to slog.Default().
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// Generate projects every active rule over the months [reference, reference+horizon].
// Output is ordered by date, then by rule id.
func (e *Engine) Generate(in Input) []*entity.Transaction {
	horizon := in.Horizon
	if horizon < 0 {
		horizon = 0
	}
	reference := valueobject.MonthOf(in.Reference)
	incomes := indexIncomes(in.AllKnown)

	var out []*entity.Transaction
	for _, rule := range in.Rules {
		if rule == nil || !rule.IsActive {
			continue
		}
		if err := rule.Validate(); err != nil {
			e.logger.Warn("skipping malformed recurring rule",
				"rule_id", rule.ID.String(),
				"owner_id", rule.UserID.String(),
				"error", err.Error(),
			)
			continue
		}

		for i := 0; i <= horizon; i++ {
			if p := e.project(rule, reference.AddMonths(i), in, incomes); p != nil {
				out = append(out, p)
			}
		}
	}

	sortPredictions(out)
	return out
}

// Find returns the live prediction identified by key, if the snapshot produces one.
func (e *Engine) Find(in Input, key valueobject.PredictionKey) (*entity.Transaction, bool) {
	var rules []*entity.RecurringRule
	for _, r := range in.Rules {
		if r != nil && r.ID == key.RuleID {
			rules = append(rules, r)
		}
	}
	if len(rules) == 0 {
		return nil, false
	}

	narrowed := in
	narrowed.Rules = rules
	for _, p := range e.Generate(narrowed) {
		if p.Key != nil && *p.Key == key {
			return p, true
		}
	}
	return nil, false
}

func (e *Engine) project(rule *entity.RecurringRule, month valueobject.Month, in Input, incomes map[uuid.UUID]*entity.Transaction) *entity.Transaction {
	date := month.Date(rule.DayOfMonth)

	if date.Before(calendarDate(rule.StartDate)) {
		return nil
	}
	if rule.EndDate != nil && date.After(calendarDate(*rule.EndDate)) {
		return nil
	}

	var current, total *int
	if rule.Kind == entity.RecurrenceInstallment {
		n := month.MonthsSince(firstOccurrence(rule))
		if n < 0 || n >= *rule.TotalInstallments {
			return nil
		}
		installment := n + 1
		count := *rule.TotalInstallments
		current, total = &installment, &count
	}

	key := valueobject.NewPredictionKey(rule.ID, month)
	if in.Exclusions.Contains(key) {
		return nil
	}

	for _, t := range in.RealByMonth[month] {
		if t.IsRealInstanceOf(rule.ID) {
			return nil
		}
	}

	ruleID := rule.ID
	return &entity.Transaction{
		ID:                 uuid.NewSHA1(predictionNamespace, []byte(key.String())),
		UserID:             rule.UserID,
		Description:        rule.Description,
		Type:               rule.Type,
		Category:           rule.Category,
		Value:              e.resolveValue(rule, incomes),
		Date:               date,
		Month:              month,
		RecurringID:        &ruleID,
		IsPaid:             false,
		IsPredicted:        true,
		Key:                &key,
		CurrentInstallment: current,
		TotalInstallments:  total,
	}
}

func (e *Engine) resolveValue(rule *entity.RecurringRule, incomes map[uuid.UUID]*entity.Transaction) decimal.Decimal {
	if rule.Kind != entity.RecurrenceVariableByIncome {
		return rule.Value
	}

	income, ok := incomes[*rule.SelectedIncomeID]
	if !ok {
		// Unresolved reference: keep the rule's own value as the estimate.
		return rule.Value
	}
	return income.Value.Mul(rule.Value).Div(hundred).Round(2)
}

// firstOccurrence is the month of the rule's first projected instance. When
// the anchor day in the start month falls before the start date, the series
// begins one month later.
func firstOccurrence(rule *entity.RecurringRule) valueobject.Month {
	start := valueobject.MonthOf(rule.StartDate)
	if start.Date(rule.DayOfMonth).Before(calendarDate(rule.StartDate)) {
		return start.AddMonths(1)
	}
	return start
}

func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func indexIncomes(txns []*entity.Transaction) map[uuid.UUID]*entity.Transaction {
	out := make(map[uuid.UUID]*entity.Transaction, len(txns))
	for _, t := range txns {
		if t == nil || t.IsPredicted {
			continue
		}
		out[t.ID] = t
	}
	return out
}

func sortPredictions(ps []*entity.Transaction) {
	sort.SliceStable(ps, func(i, j int) bool {
		if !ps[i].Date.Equal(ps[j].Date) {
			return ps[i].Date.Before(ps[j].Date)
		}
		return ps[i].RecurringID.String() < ps[j].RecurringID.String()
	})
}
