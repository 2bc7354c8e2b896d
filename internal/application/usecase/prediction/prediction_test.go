package prediction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter/fake"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/projection"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

type fixture struct {
	userID     uuid.UUID
	rule       *entity.RecurringRule
	txns       *fake.Transactions
	rules      *fake.Rules
	exclusions *fake.Exclusions
	sessions   *fake.Sessions
	ledger     *Ledger
	projector  *Projector
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	userID := uuid.New()
	rule := entity.NewRecurringRule(userID, "Salário", entity.TransactionTypeIncome, "Salário",
		decimal.NewFromInt(1500), entity.RecurrenceFixed, 5, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	f := &fixture{
		userID:     userID,
		rule:       rule,
		txns:       fake.NewTransactions(),
		rules:      fake.NewRules(rule),
		exclusions: fake.NewExclusions(),
		sessions:   fake.NewSessions(),
	}
	f.ledger = NewLedger(f.exclusions, f.sessions, nil)
	f.projector = NewProjector(
		f.txns,
		f.rules,
		f.ledger,
		projection.NewEngine(nil),
		fake.Clock{At: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)},
		HorizonConfig{Default: 2, Max: 24},
	)
	return f
}

func (f *fixture) key(y int, m time.Month) valueobject.PredictionKey {
	return valueobject.NewPredictionKey(f.rule.ID, valueobject.NewMonth(y, m))
}

func months(ps []*entity.Transaction) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Month.String())
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestListPredictions(t *testing.T) {
	f := newFixture(t)
	uc := NewListPredictionsUseCase(f.projector)

	out, err := uc.Execute(context.Background(), ListPredictionsInput{UserID: f.userID})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Horizon != 2 {
		t.Errorf("expected default horizon 2, got %d", out.Horizon)
	}
	want := []string{"2024-01", "2024-02", "2024-03"}
	if got := months(out.Predictions); !equalStrings(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	bad := 25
	_, err = uc.Execute(context.Background(), ListPredictionsInput{UserID: f.userID, Horizon: &bad})
	if !errors.Is(err, domainerror.ErrInvalidHorizon) {
		t.Errorf("expected ErrInvalidHorizon, got %v", err)
	}
}

func TestConvertPrediction(t *testing.T) {
	f := newFixture(t)
	convert := NewConvertPredictionUseCase(f.projector, f.txns, f.ledger, nil)
	list := NewListPredictionsUseCase(f.projector)
	key := f.key(2024, time.February)

	out, err := convert.Execute(context.Background(), ConvertPredictionInput{UserID: f.userID, Key: key.String()})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	txn := out.Transaction
	if txn.IsPredicted || !txn.IsPaid {
		t.Errorf("expected a paid real transaction, got predicted=%v paid=%v", txn.IsPredicted, txn.IsPaid)
	}
	if !txn.Date.Equal(time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected date 2024-02-05, got %s", txn.Date)
	}
	if txn.RecurringID == nil || *txn.RecurringID != f.rule.ID {
		t.Error("expected linkage to the rule")
	}
	if len(f.txns.All()) != 1 {
		t.Errorf("expected 1 stored transaction, got %d", len(f.txns.All()))
	}

	ledger, _ := f.exclusions.FindByUser(context.Background(), f.userID)
	if !ledger.Contains(key) {
		t.Error("expected the key in the exclusion ledger")
	}
	cached, ok, _ := f.sessions.GetExclusions(context.Background(), f.userID)
	if !ok || !cached.Contains(key) {
		t.Error("expected the session cache to mirror the ledger")
	}

	listed, err := list.Execute(context.Background(), ListPredictionsInput{UserID: f.userID})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := months(listed.Predictions); !equalStrings(got, []string{"2024-01", "2024-03"}) {
		t.Errorf("expected february suppressed, got %v", got)
	}

	// Converting again finds nothing to convert.
	_, err = convert.Execute(context.Background(), ConvertPredictionInput{UserID: f.userID, Key: key.String()})
	if !errors.Is(err, domainerror.ErrPredictionNotFound) {
		t.Errorf("expected ErrPredictionNotFound, got %v", err)
	}
}

func TestConvertPrediction_Overrides(t *testing.T) {
	f := newFixture(t)
	convert := NewConvertPredictionUseCase(f.projector, f.txns, f.ledger, nil)

	value := decimal.NewFromInt(1650)
	paid := false
	out, err := convert.Execute(context.Background(), ConvertPredictionInput{
		UserID: f.userID,
		Key:    f.key(2024, time.March).String(),
		Overrides: ConvertOverrides{
			Value:  &value,
			IsPaid: &paid,
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !out.Transaction.Value.Equal(value) {
		t.Errorf("expected value %s, got %s", value, out.Transaction.Value)
	}
	if out.Transaction.IsPaid {
		t.Error("expected is_paid override to win")
	}

	zero := decimal.Zero
	_, err = convert.Execute(context.Background(), ConvertPredictionInput{
		UserID:    f.userID,
		Key:       f.key(2024, time.January).String(),
		Overrides: ConvertOverrides{Value: &zero},
	})
	if domainerror.KindOf(err) != domainerror.KindValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestConvertPrediction_DateStaysInMonth(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	convert := NewConvertPredictionUseCase(f.projector, f.txns, f.ledger, nil)

	if _, err := convert.Execute(ctx, ConvertPredictionInput{UserID: f.userID, Key: f.key(2024, time.March).String()}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	intoMarch := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	_, err := convert.Execute(ctx, ConvertPredictionInput{
		UserID:    f.userID,
		Key:       f.key(2024, time.February).String(),
		Overrides: ConvertOverrides{Date: &intoMarch},
	})
	if !errors.Is(err, domainerror.ErrDateOutsidePredictionMonth) {
		t.Fatalf("expected ErrDateOutsidePredictionMonth, got %v", err)
	}
	if domainerror.KindOf(err) != domainerror.KindValidation {
		t.Errorf("expected validation error, got %v", err)
	}

	march := valueobject.NewMonth(2024, time.March)
	instances := 0
	for _, txn := range f.txns.All() {
		if txn.Month == march && txn.IsRealInstanceOf(f.rule.ID) {
			instances++
		}
	}
	if instances != 1 {
		t.Errorf("expected 1 real instance in 2024-03, got %d", instances)
	}
	ledger, _ := f.exclusions.FindByUser(ctx, f.userID)
	if ledger.Contains(f.key(2024, time.February)) {
		t.Error("expected february to stay convertible")
	}

	withinFebruary := time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC)
	out, err := convert.Execute(ctx, ConvertPredictionInput{
		UserID:    f.userID,
		Key:       f.key(2024, time.February).String(),
		Overrides: ConvertOverrides{Date: &withinFebruary},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !out.Transaction.Date.Equal(withinFebruary) {
		t.Errorf("expected date %s, got %s", withinFebruary, out.Transaction.Date)
	}
}

func TestConvertPrediction_Failures(t *testing.T) {
	tests := []struct {
		name     string
		key      func(f *fixture) string
		userID   func(f *fixture) uuid.UUID
		failTxns bool
		wantKind domainerror.Kind
	}{
		{
			name:     "malformed key",
			key:      func(f *fixture) string { return "predicted-nope" },
			userID:   func(f *fixture) uuid.UUID { return f.userID },
			wantKind: domainerror.KindValidation,
		},
		{
			name:     "month outside rule schedule",
			key:      func(f *fixture) string { return f.key(2023, time.December).String() },
			userID:   func(f *fixture) uuid.UUID { return f.userID },
			wantKind: domainerror.KindNotFound,
		},
		{
			name:     "another owner's rule",
			key:      func(f *fixture) string { return f.key(2024, time.February).String() },
			userID:   func(f *fixture) uuid.UUID { return uuid.New() },
			wantKind: domainerror.KindNotFound,
		},
		{
			name:     "storage failure",
			key:      func(f *fixture) string { return f.key(2024, time.February).String() },
			userID:   func(f *fixture) uuid.UUID { return f.userID },
			failTxns: true,
			wantKind: domainerror.KindPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.txns.Fail = tt.failTxns
			convert := NewConvertPredictionUseCase(f.projector, f.txns, f.ledger, nil)

			_, err := convert.Execute(context.Background(), ConvertPredictionInput{UserID: tt.userID(f), Key: tt.key(f)})
			if got := domainerror.KindOf(err); got != tt.wantKind {
				t.Errorf("expected %s, got %s (%v)", tt.wantKind, got, err)
			}

			ledger, _ := f.exclusions.FindByUser(context.Background(), f.userID)
			if len(ledger) != 0 {
				t.Errorf("expected ledger untouched, got %v", ledger.Keys())
			}
		})
	}
}

func TestDismissAndRestorePrediction(t *testing.T) {
	f := newFixture(t)
	dismiss := NewDismissPredictionUseCase(f.rules, f.ledger)
	restore := NewRestorePredictionUseCase(f.ledger)
	list := NewListPredictionsUseCase(f.projector)
	key := f.key(2024, time.January)
	ctx := context.Background()

	if _, err := dismiss.Execute(ctx, DismissPredictionInput{UserID: f.userID, Key: key.String()}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(f.txns.All()) != 0 {
		t.Error("expected dismissal not to touch transactions")
	}

	out, _ := list.Execute(ctx, ListPredictionsInput{UserID: f.userID})
	if got := months(out.Predictions); !equalStrings(got, []string{"2024-02", "2024-03"}) {
		t.Errorf("expected january dismissed, got %v", got)
	}

	// Pausing and reactivating the rule does not resurrect the month.
	f.rule.IsActive = false
	out, _ = list.Execute(ctx, ListPredictionsInput{UserID: f.userID})
	if len(out.Predictions) != 0 {
		t.Errorf("expected paused rule to project nothing, got %v", months(out.Predictions))
	}
	f.rule.IsActive = true
	out, _ = list.Execute(ctx, ListPredictionsInput{UserID: f.userID})
	if len(out.Predictions) != 2 {
		t.Errorf("expected exclusion to persist, got %v", months(out.Predictions))
	}

	restored, err := restore.Execute(ctx, RestorePredictionInput{UserID: f.userID, Key: key.String()})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if restored.Exclusions.Contains(key) {
		t.Error("expected key removed from returned ledger")
	}

	out, _ = list.Execute(ctx, ListPredictionsInput{UserID: f.userID})
	if len(out.Predictions) != 3 {
		t.Errorf("expected january back, got %v", months(out.Predictions))
	}

	_, err = restore.Execute(ctx, RestorePredictionInput{UserID: f.userID, Key: key.String()})
	if !errors.Is(err, domainerror.ErrPredictionNotExcluded) {
		t.Errorf("expected ErrPredictionNotExcluded, got %v", err)
	}
}

func TestDismissPrediction_UnknownRule(t *testing.T) {
	f := newFixture(t)
	dismiss := NewDismissPredictionUseCase(f.rules, f.ledger)

	key := valueobject.NewPredictionKey(uuid.New(), valueobject.NewMonth(2024, time.January))
	_, err := dismiss.Execute(context.Background(), DismissPredictionInput{UserID: f.userID, Key: key.String()})
	if !errors.Is(err, domainerror.ErrPredictionNotFound) {
		t.Errorf("expected ErrPredictionNotFound, got %v", err)
	}
}

func TestLedger_FallsBackWhenCacheFails(t *testing.T) {
	f := newFixture(t)
	key := f.key(2024, time.February)
	_ = f.exclusions.Add(context.Background(), f.userID, key)
	f.sessions.Fail = true

	set, err := f.ledger.Load(context.Background(), f.userID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !set.Contains(key) {
		t.Error("expected ledger loaded from the repository")
	}
}

func TestLedger_RepositoryFailureLeavesCacheUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cachedKey := f.key(2024, time.March)
	_ = f.sessions.SetExclusions(ctx, f.userID, valueobject.NewExclusionSet(cachedKey))
	f.exclusions.Fail = true

	_, err := f.ledger.Exclude(ctx, f.userID, f.key(2024, time.February))
	if domainerror.KindOf(err) != domainerror.KindPersistence {
		t.Errorf("expected persistence error, got %v", err)
	}

	cached, ok, _ := f.sessions.GetExclusions(ctx, f.userID)
	if !ok || len(cached) != 1 || !cached.Contains(cachedKey) {
		t.Errorf("expected cache unchanged, got %v", cached.Keys())
	}
}

func TestProjector_PredictMonth(t *testing.T) {
	f := newFixture(t)
	snap, err := f.projector.Snapshot(context.Background(), f.userID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	tests := []struct {
		month valueobject.Month
		want  int
	}{
		{valueobject.NewMonth(2023, time.December), 0},
		{valueobject.NewMonth(2024, time.January), 1},
		{valueobject.NewMonth(2025, time.June), 1},
		{valueobject.NewMonth(2026, time.January), 1},
		{valueobject.NewMonth(2026, time.February), 0},
	}
	for _, tt := range tests {
		if got := len(f.projector.PredictMonth(snap, tt.month)); got != tt.want {
			t.Errorf("%s: expected %d predictions, got %d", tt.month, tt.want, got)
		}
	}
}
