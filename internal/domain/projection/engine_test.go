package projection

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

var owner = uuid.MustParse("0d9a3c52-6a51-4d43-9a2f-3f0f4a9e0b11")

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func month(y int, m time.Month) valueobject.Month {
	return valueobject.NewMonth(y, m)
}

func fixedRule(value int64, day int, start time.Time) *entity.RecurringRule {
	return entity.NewRecurringRule(owner, "Salário", entity.TransactionTypeIncome, "Salário",
		decimal.NewFromInt(value), entity.RecurrenceFixed, day, start)
}

func installmentRule(value int64, day int, start time.Time, total int) *entity.RecurringRule {
	r := entity.NewRecurringRule(owner, "Notebook", entity.TransactionTypeExpense, "Compras",
		decimal.NewFromInt(value), entity.RecurrenceInstallment, day, start)
	r.TotalInstallments = &total
	return r
}

func realInstance(rule *entity.RecurringRule, d time.Time) *entity.Transaction {
	t := entity.NewTransaction(owner, rule.Description, rule.Type, rule.Category, rule.Value, d, true)
	id := rule.ID
	t.RecurringID = &id
	return t
}

func newEngine() *Engine {
	return NewEngine(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
}

func monthsOf(ps []*entity.Transaction) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Month.String())
	}
	return out
}

func TestGenerate_FixedRuleOverHorizon(t *testing.T) {
	rule := fixedRule(1500, 5, date(2024, 1, 1))

	out := newEngine().Generate(Input{
		Rules:     []*entity.RecurringRule{rule},
		Horizon:   2,
		Reference: date(2024, 1, 15),
	})

	require.Len(t, out, 3)
	assert.Equal(t, []string{"2024-01", "2024-02", "2024-03"}, monthsOf(out))

	for i, p := range out {
		m := month(2024, time.January).AddMonths(i)
		assert.Equal(t, date(2024, m.Month, 5), p.Date)
		assert.Equal(t, "predicted-"+rule.ID.String()+"-"+m.String(), p.Key.String())
		assert.True(t, p.IsPredicted)
		assert.False(t, p.IsPaid)
		assert.True(t, p.Value.Equal(decimal.NewFromInt(1500)))
		require.NotNil(t, p.RecurringID)
		assert.Equal(t, rule.ID, *p.RecurringID)
		assert.Nil(t, p.CurrentInstallment)
	}
}

func TestGenerate_RealInstanceSuppressesMonth(t *testing.T) {
	rule := fixedRule(1500, 5, date(2024, 1, 1))
	paid := realInstance(rule, date(2024, 2, 5))

	predicted := newEngine().Generate(Input{
		Rules:       []*entity.RecurringRule{rule},
		RealByMonth: GroupByMonth([]*entity.Transaction{paid}),
		Horizon:     2,
		Reference:   date(2024, 1, 15),
	})

	assert.Equal(t, []string{"2024-01", "2024-03"}, monthsOf(predicted))

	merged := Merge([]*entity.Transaction{paid}, predicted)
	assert.Equal(t, []string{"2024-01", "2024-02", "2024-03"}, monthsOf(merged))
	assert.False(t, merged[1].IsPredicted)
}

func TestGenerate_RealInstanceOfOtherRuleDoesNotSuppress(t *testing.T) {
	rule := fixedRule(1500, 5, date(2024, 1, 1))
	other := fixedRule(99, 5, date(2024, 1, 1))
	manual := entity.NewTransaction(owner, "avulso", entity.TransactionTypeIncome, "Salário", decimal.NewFromInt(1500), date(2024, 2, 5), true)

	out := newEngine().Generate(Input{
		Rules:       []*entity.RecurringRule{rule},
		RealByMonth: GroupByMonth([]*entity.Transaction{realInstance(other, date(2024, 2, 5)), manual}),
		Horizon:     2,
		Reference:   date(2024, 1, 15),
	})

	assert.Len(t, out, 3)
}

func TestGenerate_InstallmentRuleStopsAfterTotal(t *testing.T) {
	rule := installmentRule(300, 10, date(2024, 1, 10), 3)

	out := newEngine().Generate(Input{
		Rules:     []*entity.RecurringRule{rule},
		Horizon:   12,
		Reference: date(2024, 1, 1),
	})

	require.Len(t, out, 3)
	assert.Equal(t, []string{"2024-01", "2024-02", "2024-03"}, monthsOf(out))
	for i, p := range out {
		require.NotNil(t, p.CurrentInstallment)
		require.NotNil(t, p.TotalInstallments)
		assert.Equal(t, i+1, *p.CurrentInstallment)
		assert.Equal(t, 3, *p.TotalInstallments)
	}
}

func TestGenerate_InstallmentCountsFromFirstOccurrence(t *testing.T) {
	// Anchor day 5 is before the start date, so the first installment lands in February.
	rule := installmentRule(300, 5, date(2024, 1, 20), 2)

	out := newEngine().Generate(Input{
		Rules:     []*entity.RecurringRule{rule},
		Horizon:   6,
		Reference: date(2024, 1, 1),
	})

	require.Len(t, out, 2)
	assert.Equal(t, []string{"2024-02", "2024-03"}, monthsOf(out))
	assert.Equal(t, 1, *out[0].CurrentInstallment)
	assert.Equal(t, 2, *out[1].CurrentInstallment)
}

func TestGenerate_ConvertedPredictionIsSuppressedTwice(t *testing.T) {
	rule := fixedRule(1500, 5, date(2024, 1, 1))
	engine := newEngine()
	in := Input{
		Rules:     []*entity.RecurringRule{rule},
		Horizon:   2,
		Reference: date(2024, 1, 15),
	}

	key := valueobject.NewPredictionKey(rule.ID, month(2024, time.February))
	prediction, ok := engine.Find(in, key)
	require.True(t, ok)

	converted := prediction.Materialize()
	in.RealByMonth = GroupByMonth([]*entity.Transaction{converted})
	in.Exclusions = valueobject.NewExclusionSet(key)

	assert.True(t, converted.IsPaid)
	assert.False(t, converted.IsPredicted)
	assert.Equal(t, date(2024, 2, 5), converted.Date)
	assert.Equal(t, rule.ID, *converted.RecurringID)

	_, ok = engine.Find(in, key)
	assert.False(t, ok)
	assert.Equal(t, []string{"2024-01", "2024-03"}, monthsOf(engine.Generate(in)))

	// Either suppression alone is enough.
	in.Exclusions = nil
	_, ok = engine.Find(in, key)
	assert.False(t, ok)
}

func TestGenerate_ClampsDayAnchorToMonthEnd(t *testing.T) {
	rule := fixedRule(100, 31, date(2024, 1, 1))

	out := newEngine().Generate(Input{
		Rules:     []*entity.RecurringRule{rule},
		Horizon:   3,
		Reference: date(2024, 1, 1),
	})

	require.Len(t, out, 4)
	assert.Equal(t, date(2024, 1, 31), out[0].Date)
	assert.Equal(t, date(2024, 2, 29), out[1].Date)
	assert.Equal(t, date(2024, 3, 31), out[2].Date)
	assert.Equal(t, date(2024, 4, 30), out[3].Date)
	assert.Equal(t, []string{"2024-01", "2024-02", "2024-03", "2024-04"}, monthsOf(out))
}

func TestGenerate_RespectsStartAndEndDates(t *testing.T) {
	rule := fixedRule(100, 15, date(2024, 2, 20))
	end := date(2024, 5, 15)
	rule.EndDate = &end

	out := newEngine().Generate(Input{
		Rules:     []*entity.RecurringRule{rule},
		Horizon:   12,
		Reference: date(2024, 1, 1),
	})

	// February's 15th precedes the start; May's 15th is the inclusive end.
	assert.Equal(t, []string{"2024-03", "2024-04", "2024-05"}, monthsOf(out))
}

func TestGenerate_SkipsInactiveAndMalformedRules(t *testing.T) {
	var logs bytes.Buffer
	engine := NewEngine(slog.New(slog.NewTextHandler(&logs, nil)))

	paused := fixedRule(100, 5, date(2024, 1, 1))
	paused.IsActive = false
	broken := installmentRule(100, 5, date(2024, 1, 1), 1)
	broken.TotalInstallments = nil
	healthy := fixedRule(100, 5, date(2024, 1, 1))

	out := engine.Generate(Input{
		Rules:     []*entity.RecurringRule{paused, broken, healthy},
		Horizon:   1,
		Reference: date(2024, 1, 1),
	})

	require.Len(t, out, 2)
	for _, p := range out {
		assert.Equal(t, healthy.ID, *p.RecurringID)
	}
	assert.Contains(t, logs.String(), "skipping malformed recurring rule")
	assert.Contains(t, logs.String(), broken.ID.String())
}

func TestGenerate_VariableByIncome(t *testing.T) {
	salary := entity.NewTransaction(owner, "Salário", entity.TransactionTypeIncome, "Salário", decimal.NewFromInt(5000), date(2024, 1, 5), true)

	tithe := entity.NewRecurringRule(owner, "Dízimo", entity.TransactionTypeExpense, "Outros",
		decimal.NewFromInt(10), entity.RecurrenceVariableByIncome, 10, date(2024, 1, 1))
	tithe.SelectedIncomeID = &salary.ID

	missing := uuid.New()
	orphan := entity.NewRecurringRule(owner, "Reserva", entity.TransactionTypeExpense, "Investimentos",
		decimal.NewFromInt(15), entity.RecurrenceVariableByIncome, 10, date(2024, 1, 1))
	orphan.SelectedIncomeID = &missing

	out := newEngine().Generate(Input{
		Rules:     []*entity.RecurringRule{tithe, orphan},
		AllKnown:  []*entity.Transaction{salary},
		Horizon:   0,
		Reference: date(2024, 1, 1),
	})

	require.Len(t, out, 2)
	byRule := map[uuid.UUID]*entity.Transaction{}
	for _, p := range out {
		byRule[*p.RecurringID] = p
	}
	assert.True(t, byRule[tithe.ID].Value.Equal(decimal.NewFromInt(500)), "got %s", byRule[tithe.ID].Value)
	assert.True(t, byRule[orphan.ID].Value.Equal(decimal.NewFromInt(15)), "got %s", byRule[orphan.ID].Value)
}

func TestGenerate_IsIdempotent(t *testing.T) {
	rules := []*entity.RecurringRule{
		fixedRule(1500, 5, date(2024, 1, 1)),
		fixedRule(80, 5, date(2023, 6, 1)),
		installmentRule(300, 28, date(2024, 2, 1), 6),
	}
	in := Input{
		Rules:      rules,
		Exclusions: valueobject.NewExclusionSet(valueobject.NewPredictionKey(rules[0].ID, month(2024, time.March))),
		Horizon:    12,
		Reference:  date(2024, 1, 15),
	}

	engine := newEngine()
	first := engine.Generate(in)
	second := engine.Generate(in)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Key.String(), second[i].Key.String())
		assert.Equal(t, first[i].Date, second[i].Date)
		assert.True(t, first[i].Value.Equal(second[i].Value))
	}
	assert.Equal(t, first, second)
}

func TestGenerate_NoDuplicateCoverage(t *testing.T) {
	rules := []*entity.RecurringRule{
		fixedRule(1500, 5, date(2024, 1, 1)),
		fixedRule(50, 31, date(2024, 1, 1)),
	}
	recorded := []*entity.Transaction{
		realInstance(rules[0], date(2024, 3, 5)),
		realInstance(rules[1], date(2024, 2, 29)),
	}

	predicted := newEngine().Generate(Input{
		Rules:       rules,
		RealByMonth: GroupByMonth(recorded),
		Horizon:     24,
		Reference:   date(2024, 1, 1),
	})
	merged := Merge(recorded, predicted)

	seen := map[valueobject.PredictionKey]int{}
	for _, tx := range merged {
		seen[valueobject.NewPredictionKey(*tx.RecurringID, tx.Month)]++
	}
	for key, n := range seen {
		assert.Equal(t, 1, n, "rule/month %s covered %d times", key, n)
	}
}

func TestGenerate_ExclusionsRespectedAtAnyHorizon(t *testing.T) {
	rule := fixedRule(100, 5, date(2024, 1, 1))
	excluded := valueobject.NewExclusionSet(
		valueobject.NewPredictionKey(rule.ID, month(2024, time.January)),
		valueobject.NewPredictionKey(rule.ID, month(2025, time.June)),
	)

	for _, horizon := range []int{0, 1, 12, 24} {
		out := newEngine().Generate(Input{
			Rules:      []*entity.RecurringRule{rule},
			Exclusions: excluded,
			Horizon:    horizon,
			Reference:  date(2024, 1, 1),
		})
		for _, p := range out {
			assert.False(t, excluded.Contains(*p.Key), "horizon %d produced excluded %s", horizon, p.Key)
		}
	}
}

func TestGenerate_InstallmentBoundAcrossRealAndPredicted(t *testing.T) {
	rule := installmentRule(250, 10, date(2024, 1, 10), 5)
	recorded := []*entity.Transaction{
		realInstance(rule, date(2024, 1, 10)),
		realInstance(rule, date(2024, 2, 10)),
	}
	one, two := 1, 2
	recorded[0].CurrentInstallment = &one
	recorded[1].CurrentInstallment = &two

	// Viewed from March, the first two instances are already real.
	predicted := newEngine().Generate(Input{
		Rules:       []*entity.RecurringRule{rule},
		RealByMonth: GroupByMonth(recorded),
		Horizon:     24,
		Reference:   date(2024, 3, 1),
	})

	var numbers []int
	for _, tx := range recorded {
		numbers = append(numbers, *tx.CurrentInstallment)
	}
	for _, p := range predicted {
		numbers = append(numbers, *p.CurrentInstallment)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, numbers)
}

func TestBudgetStatusIgnoresPredictions(t *testing.T) {
	march := month(2024, time.March)
	budget := entity.NewCategoryBudget(owner, "Moradia", march, decimal.NewFromInt(2000), 0)
	rent := entity.NewTransaction(owner, "Aluguel", entity.TransactionTypeExpense, "Moradia", decimal.NewFromInt(1200), march.Date(10), true)

	before := budget.Status([]*entity.Transaction{rent})

	rule := entity.NewRecurringRule(owner, "Condomínio", entity.TransactionTypeExpense, "Moradia",
		decimal.NewFromInt(700), entity.RecurrenceFixed, 15, date(2024, 1, 1))
	predicted := newEngine().Generate(Input{
		Rules:     []*entity.RecurringRule{rule},
		Horizon:   0,
		Reference: march.First(),
	})
	require.Len(t, predicted, 1)

	after := budget.Status(Merge([]*entity.Transaction{rent}, predicted))
	assert.True(t, before.SpentValue.Equal(after.SpentValue))
	assert.True(t, after.SpentValue.Equal(decimal.NewFromInt(1200)))
}
