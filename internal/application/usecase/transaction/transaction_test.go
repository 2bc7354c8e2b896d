package transaction

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter/fake"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/prediction"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/projection"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

var now = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

type spendCall struct {
	category string
	month    valueobject.Month
	delta    decimal.Decimal
}

type recordingNotifier struct {
	calls []spendCall
}

func (n *recordingNotifier) SpendChanged(_ context.Context, _ uuid.UUID, category string, month valueobject.Month, delta decimal.Decimal) {
	n.calls = append(n.calls, spendCall{category: category, month: month, delta: delta})
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func expense(userID uuid.UUID, desc string, value int64, on time.Time) *entity.Transaction {
	return entity.NewTransaction(userID, desc, entity.TransactionTypeExpense, "Alimentação", decimal.NewFromInt(value), on, false)
}

func TestCreateTransactionUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		input    CreateTransactionInput
		wantCode string
	}{
		{
			name: "valid expense",
			input: CreateTransactionInput{
				UserID: userID, Description: " Mercado ", Type: entity.TransactionTypeExpense,
				Category: "Alimentação", Value: decimal.NewFromInt(120), Date: date(2024, 1, 10),
			},
		},
		{
			name: "invalid type",
			input: CreateTransactionInput{
				UserID: userID, Description: "x", Type: "transfer",
				Category: "Outros", Value: decimal.NewFromInt(1), Date: date(2024, 1, 10),
			},
			wantCode: string(domainerror.ErrCodeInvalidTransactionType),
		},
		{
			name: "zero value",
			input: CreateTransactionInput{
				UserID: userID, Description: "x", Type: entity.TransactionTypeIncome,
				Category: "Outros", Value: decimal.Zero, Date: date(2024, 1, 10),
			},
			wantCode: string(domainerror.ErrCodeInvalidTransactionValue),
		},
		{
			name: "missing category",
			input: CreateTransactionInput{
				UserID: userID, Description: "x", Type: entity.TransactionTypeIncome,
				Category: "  ", Value: decimal.NewFromInt(1), Date: date(2024, 1, 10),
			},
			wantCode: string(domainerror.ErrCodeMissingTransactionFields),
		},
		{
			name: "missing date",
			input: CreateTransactionInput{
				UserID: userID, Description: "x", Type: entity.TransactionTypeIncome,
				Category: "Outros", Value: decimal.NewFromInt(1),
			},
			wantCode: string(domainerror.ErrCodeInvalidTransactionDate),
		},
		{
			name: "description too long",
			input: CreateTransactionInput{
				UserID: userID, Description: strings.Repeat("a", MaxDescriptionLength+1), Type: entity.TransactionTypeIncome,
				Category: "Outros", Value: decimal.NewFromInt(1), Date: date(2024, 1, 10),
			},
			wantCode: string(domainerror.ErrCodeDescriptionTooLong),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := fake.NewTransactions()
			notifier := &recordingNotifier{}
			uc := NewCreateTransactionUseCase(repo, notifier)

			out, err := uc.Execute(context.Background(), tt.input)

			if tt.wantCode != "" {
				code, _ := domainerror.CodeOf(err)
				if code != tt.wantCode {
					t.Errorf("expected code %s, got %v", tt.wantCode, err)
				}
				if len(repo.All()) != 0 {
					t.Errorf("expected nothing persisted on validation failure")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Transaction.Description != "Mercado" {
				t.Errorf("expected trimmed description, got %q", out.Transaction.Description)
			}
			if out.Transaction.Month != valueobject.NewMonth(2024, time.January) {
				t.Errorf("expected month 2024-01, got %s", out.Transaction.Month)
			}
			if len(notifier.calls) != 1 || !notifier.calls[0].delta.Equal(decimal.NewFromInt(120)) {
				t.Errorf("expected one spend notification of 120, got %+v", notifier.calls)
			}
		})
	}
}

func TestCreateTransactionUseCase_IncomeDoesNotNotify(t *testing.T) {
	notifier := &recordingNotifier{}
	uc := NewCreateTransactionUseCase(fake.NewTransactions(), notifier)

	_, err := uc.Execute(context.Background(), CreateTransactionInput{
		UserID: uuid.New(), Description: "Salário", Type: entity.TransactionTypeIncome,
		Category: "Salário", Value: decimal.NewFromInt(3000), Date: date(2024, 1, 5),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifier.calls) != 0 {
		t.Errorf("expected no notification for income, got %d", len(notifier.calls))
	}
}

func TestCreateTransactionUseCase_PersistenceFailure(t *testing.T) {
	repo := fake.NewTransactions()
	repo.Fail = true
	uc := NewCreateTransactionUseCase(repo, nil)

	_, err := uc.Execute(context.Background(), CreateTransactionInput{
		UserID: uuid.New(), Description: "x", Type: entity.TransactionTypeExpense,
		Category: "Outros", Value: decimal.NewFromInt(1), Date: date(2024, 1, 5),
	})
	if domainerror.KindOf(err) != domainerror.KindPersistence {
		t.Errorf("expected persistence error, got %v", err)
	}
}

func TestUpdateTransactionUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	existing := expense(userID, "Mercado", 100, date(2024, 1, 31))
	repo := fake.NewTransactions(existing)
	notifier := &recordingNotifier{}
	uc := NewUpdateTransactionUseCase(repo, notifier)

	newValue := decimal.NewFromInt(150)
	newDate := date(2024, 2, 2)
	out, err := uc.Execute(context.Background(), UpdateTransactionInput{
		ID:     existing.ID.String(),
		UserID: userID,
		Value:  &newValue,
		Date:   &newDate,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Transaction.Month != valueobject.NewMonth(2024, time.February) {
		t.Errorf("expected month re-derived as 2024-02, got %s", out.Transaction.Month)
	}
	if out.Transaction.Description != "Mercado" {
		t.Errorf("expected untouched description, got %q", out.Transaction.Description)
	}
	// Moving to another month counts the full value against the new bucket
	if len(notifier.calls) != 1 || !notifier.calls[0].delta.Equal(newValue) {
		t.Errorf("expected delta 150, got %+v", notifier.calls)
	}
}

func TestUpdateTransactionUseCase_DeltaInSameBucket(t *testing.T) {
	userID := uuid.New()
	existing := expense(userID, "Mercado", 100, date(2024, 1, 10))
	notifier := &recordingNotifier{}
	uc := NewUpdateTransactionUseCase(fake.NewTransactions(existing), notifier)

	newValue := decimal.NewFromInt(130)
	if _, err := uc.Execute(context.Background(), UpdateTransactionInput{
		ID: existing.ID.String(), UserID: userID, Value: &newValue,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(notifier.calls) != 1 || !notifier.calls[0].delta.Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected delta 30, got %+v", notifier.calls)
	}
}

func TestUpdateTransactionUseCase_RecurringInstanceKeepsMonth(t *testing.T) {
	userID, ruleID := uuid.New(), uuid.New()
	linked := expense(userID, "Aluguel", 1200, date(2024, 2, 5))
	linked.RecurringID = &ruleID
	repo := fake.NewTransactions(linked)
	uc := NewUpdateTransactionUseCase(repo, nil)

	intoMarch := date(2024, 3, 5)
	_, err := uc.Execute(context.Background(), UpdateTransactionInput{
		ID: linked.ID.String(), UserID: userID, Date: &intoMarch,
	})
	if !errors.Is(err, domainerror.ErrRecurringInstanceMoved) {
		t.Fatalf("expected ErrRecurringInstanceMoved, got %v", err)
	}
	if domainerror.KindOf(err) != domainerror.KindInvalidOperation {
		t.Errorf("expected invalid operation, got %v", err)
	}
	stored, _ := repo.FindByID(context.Background(), linked.ID)
	if stored.Month != valueobject.NewMonth(2024, time.February) {
		t.Errorf("expected row to stay in 2024-02, got %s", stored.Month)
	}

	sameMonth := date(2024, 2, 28)
	out, err := uc.Execute(context.Background(), UpdateTransactionInput{
		ID: linked.ID.String(), UserID: userID, Date: &sameMonth,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Transaction.Date.Equal(sameMonth) {
		t.Errorf("expected date %s, got %s", sameMonth, out.Transaction.Date)
	}
}

func TestUpdateTransactionUseCase_InvalidLeavesRowUntouched(t *testing.T) {
	userID := uuid.New()
	existing := expense(userID, "Mercado", 100, date(2024, 1, 10))
	repo := fake.NewTransactions(existing)
	uc := NewUpdateTransactionUseCase(repo, nil)

	negative := decimal.NewFromInt(-5)
	_, err := uc.Execute(context.Background(), UpdateTransactionInput{
		ID: existing.ID.String(), UserID: userID, Value: &negative,
	})
	if !errors.Is(err, domainerror.ErrInvalidTransactionValue) {
		t.Fatalf("expected invalid value error, got %v", err)
	}
	if !existing.Value.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected stored value 100, got %s", existing.Value)
	}
}

func TestMutationsRejectPredictionKeys(t *testing.T) {
	userID := uuid.New()
	key := valueobject.NewPredictionKey(uuid.New(), valueobject.NewMonth(2024, time.March)).String()
	repo := fake.NewTransactions()
	paid := true

	calls := map[string]func() error{
		"toggle": func() error {
			_, err := NewTogglePaymentStatusUseCase(repo).Execute(context.Background(), TogglePaymentStatusInput{ID: key, UserID: userID})
			return err
		},
		"update": func() error {
			_, err := NewUpdateTransactionUseCase(repo, nil).Execute(context.Background(), UpdateTransactionInput{ID: key, UserID: userID, IsPaid: &paid})
			return err
		},
		"delete": func() error {
			return NewDeleteTransactionUseCase(repo).Execute(context.Background(), DeleteTransactionInput{ID: key, UserID: userID})
		},
		"duplicate": func() error {
			_, err := NewDuplicateTransactionUseCase(repo, nil).Execute(context.Background(), DuplicateTransactionInput{ID: key, UserID: userID})
			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			if !errors.Is(err, domainerror.ErrPredictionNotMutable) {
				t.Errorf("expected prediction not mutable, got %v", err)
			}
			if domainerror.KindOf(err) != domainerror.KindInvalidOperation {
				t.Errorf("expected invalid operation kind, got %s", domainerror.KindOf(err))
			}
		})
	}

	if repo.Calls != 0 {
		t.Errorf("expected no repository calls, got %d", repo.Calls)
	}
}

func TestTogglePaymentStatusUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	existing := expense(userID, "Luz", 90, date(2024, 1, 10))
	uc := NewTogglePaymentStatusUseCase(fake.NewTransactions(existing))

	out, err := uc.Execute(context.Background(), TogglePaymentStatusInput{ID: existing.ID.String(), UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Transaction.IsPaid {
		t.Errorf("expected transaction to be paid")
	}

	out, err = uc.Execute(context.Background(), TogglePaymentStatusInput{ID: existing.ID.String(), UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Transaction.IsPaid {
		t.Errorf("expected transaction to be unpaid after second toggle")
	}
}

func TestOwnershipIsHidden(t *testing.T) {
	existing := expense(uuid.New(), "Luz", 90, date(2024, 1, 10))
	repo := fake.NewTransactions(existing)

	err := NewDeleteTransactionUseCase(repo).Execute(context.Background(), DeleteTransactionInput{
		ID: existing.ID.String(), UserID: uuid.New(),
	})
	if !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Errorf("expected not found for another owner's row, got %v", err)
	}
	if len(repo.All()) != 1 {
		t.Errorf("expected row to survive")
	}
}

func TestDeleteTransactionUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	existing := expense(userID, "Luz", 90, date(2024, 1, 10))
	repo := fake.NewTransactions(existing)

	if err := NewDeleteTransactionUseCase(repo).Execute(context.Background(), DeleteTransactionInput{
		ID: existing.ID.String(), UserID: userID,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.All()) != 0 {
		t.Errorf("expected row deleted")
	}
}

func TestDuplicateTransactionUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	ruleID := uuid.New()

	tests := []struct {
		name     string
		on       time.Time
		wantDate time.Time
	}{
		{name: "keeps day", on: date(2024, 1, 15), wantDate: date(2024, 2, 15)},
		{name: "clamps to 28", on: date(2024, 1, 31), wantDate: date(2024, 2, 28)},
		{name: "rolls the year", on: date(2024, 12, 30), wantDate: date(2025, 1, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := expense(userID, "Aluguel", 1200, tt.on)
			src.RecurringID = &ruleID
			src.IsPaid = true
			repo := fake.NewTransactions(src)

			out, err := NewDuplicateTransactionUseCase(repo, nil).Execute(context.Background(), DuplicateTransactionInput{
				ID: src.ID.String(), UserID: userID,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !out.Transaction.Date.Equal(tt.wantDate) {
				t.Errorf("expected date %s, got %s", tt.wantDate, out.Transaction.Date)
			}
			if out.Transaction.RecurringID != nil {
				t.Errorf("expected copy without rule linkage")
			}
			if out.Transaction.IsPaid {
				t.Errorf("expected copy to be unpaid")
			}
			if out.Transaction.ID == src.ID {
				t.Errorf("expected a new id")
			}
		})
	}
}

func newProjector(txns *fake.Transactions, rules *fake.Rules) *prediction.Projector {
	ledger := prediction.NewLedger(fake.NewExclusions(), fake.NewSessions(), nil)
	return prediction.NewProjector(txns, rules, ledger, projection.NewEngine(nil), fake.Clock{At: now},
		prediction.HorizonConfig{Default: 12, Max: 24})
}

func TestListMonthUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	rent := entity.NewRecurringRule(userID, "Aluguel", entity.TransactionTypeExpense, "Moradia",
		decimal.NewFromInt(1000), entity.RecurrenceFixed, 10, date(2024, 1, 1))
	salary := entity.NewRecurringRule(userID, "Salário", entity.TransactionTypeIncome, "Salário",
		decimal.NewFromInt(3000), entity.RecurrenceFixed, 5, date(2024, 1, 1))

	paidRent := rent.ID
	realRent := expense(userID, "Aluguel", 1000, date(2024, 2, 10))
	realRent.RecurringID = &paidRent
	realRent.IsPaid = true
	groceries := expense(userID, "Mercado", 200, date(2024, 2, 3))

	uc := NewListMonthUseCase(newProjector(fake.NewTransactions(realRent, groceries), fake.NewRules(rent, salary)))

	out, err := uc.Execute(context.Background(), ListMonthInput{UserID: userID, Month: "2024-02"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Transactions) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(out.Transactions))
	}
	wantOrder := []string{"Mercado", "Salário", "Aluguel"}
	for i, want := range wantOrder {
		if out.Transactions[i].Description != want {
			t.Errorf("position %d: expected %s, got %s", i, want, out.Transactions[i].Description)
		}
	}
	if !out.Transactions[1].IsPredicted {
		t.Errorf("expected salary to be predicted")
	}
	if out.Transactions[2].IsPredicted {
		t.Errorf("expected rent to be the real instance")
	}

	if !out.Totals.Income.Equal(decimal.NewFromInt(3000)) {
		t.Errorf("expected income 3000, got %s", out.Totals.Income)
	}
	if !out.Totals.Expense.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected expense 1200, got %s", out.Totals.Expense)
	}
	if !out.Totals.Balance.Equal(decimal.NewFromInt(1800)) {
		t.Errorf("expected balance 1800, got %s", out.Totals.Balance)
	}
	if out.Totals.PredictedCount != 1 {
		t.Errorf("expected 1 predicted, got %d", out.Totals.PredictedCount)
	}
}

func TestListMonthUseCase_PastMonthHasNoPredictions(t *testing.T) {
	userID := uuid.New()
	rule := entity.NewRecurringRule(userID, "Netflix", entity.TransactionTypeExpense, "Lazer",
		decimal.NewFromInt(40), entity.RecurrenceFixed, 1, date(2023, 1, 1))

	uc := NewListMonthUseCase(newProjector(fake.NewTransactions(), fake.NewRules(rule)))

	out, err := uc.Execute(context.Background(), ListMonthInput{UserID: userID, Month: "2023-11"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Transactions) != 0 {
		t.Errorf("expected no predictions for a past month, got %d", len(out.Transactions))
	}
}

func TestListMonthUseCase_InvalidMonth(t *testing.T) {
	uc := NewListMonthUseCase(newProjector(fake.NewTransactions(), fake.NewRules()))

	_, err := uc.Execute(context.Background(), ListMonthInput{UserID: uuid.New(), Month: "2024-13"})
	code, _ := domainerror.CodeOf(err)
	if code != string(domainerror.ErrCodeInvalidMonth) {
		t.Errorf("expected invalid month code, got %v", err)
	}
}

func TestStartMonthUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	ruleID := uuid.New()

	plain := expense(userID, "Academia", 90, date(2024, 1, 31))
	plain.IsPaid = true
	linked := expense(userID, "Aluguel", 1000, date(2024, 1, 10))
	linked.RecurringID = &ruleID
	otherMonth := expense(userID, "Antigo", 10, date(2023, 12, 5))

	repo := fake.NewTransactions(plain, linked, otherMonth)
	sessions := fake.NewSessions()
	uc := NewStartMonthUseCase(repo, sessions, nil)

	out, err := uc.Execute(context.Background(), StartMonthInput{UserID: userID, Month: "2024-02", CopyFromPrevious: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Copied) != 1 {
		t.Fatalf("expected 1 copied transaction, got %d", len(out.Copied))
	}
	copied := out.Copied[0]
	if copied.Description != "Academia" || copied.IsPaid {
		t.Errorf("expected unpaid copy of Academia, got %+v", copied)
	}
	if !copied.Date.Equal(date(2024, 2, 29)) {
		t.Errorf("expected day clamped to 2024-02-29, got %s", copied.Date)
	}

	selected, ok, _ := sessions.GetSelectedMonth(context.Background(), userID)
	if !ok || selected != valueobject.NewMonth(2024, time.February) {
		t.Errorf("expected 2024-02 selected, got %s (ok=%v)", selected, ok)
	}
}

func TestStartMonthUseCase_WithoutCopy(t *testing.T) {
	userID := uuid.New()
	repo := fake.NewTransactions(expense(userID, "Academia", 90, date(2024, 1, 5)))

	out, err := NewStartMonthUseCase(repo, fake.NewSessions(), nil).Execute(context.Background(), StartMonthInput{
		UserID: userID, Month: "2024-02",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Copied) != 0 || len(repo.All()) != 1 {
		t.Errorf("expected nothing copied")
	}
}

func TestAvailableMonthsUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	end := date(2024, 3, 1)
	rule := entity.NewRecurringRule(userID, "Curso", entity.TransactionTypeExpense, "Educação",
		decimal.NewFromInt(100), entity.RecurrenceFixed, 1, date(2023, 11, 1))
	rule.EndDate = &end

	txns := fake.NewTransactions(expense(userID, "Antigo", 10, date(2022, 6, 5)))
	uc := NewAvailableMonthsUseCase(txns, fake.NewRules(rule), fake.Clock{At: now})

	out, err := uc.Execute(context.Background(), AvailableMonthsInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2023-11 .. 2025-03 from the rule, plus 2022-06
	if len(out.Months) != 18 {
		t.Fatalf("expected 18 months, got %d", len(out.Months))
	}
	if out.Months[0].String() != "2025-03" {
		t.Errorf("expected newest month 2025-03 first, got %s", out.Months[0])
	}
	if out.Months[len(out.Months)-1].String() != "2022-06" {
		t.Errorf("expected oldest month 2022-06 last, got %s", out.Months[len(out.Months)-1])
	}
}

func TestAvailableMonthsUseCase_DefaultsToCurrentMonth(t *testing.T) {
	uc := NewAvailableMonthsUseCase(fake.NewTransactions(), fake.NewRules(), fake.Clock{At: now})

	out, err := uc.Execute(context.Background(), AvailableMonthsInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Months) != 1 || out.Months[0].String() != "2024-01" {
		t.Errorf("expected only 2024-01, got %v", out.Months)
	}
}

func TestExportMonthUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	repo := fake.NewTransactions(
		expense(userID, "Mercado", 100, date(2024, 1, 3)),
		expense(userID, "Fevereiro", 100, date(2024, 2, 3)),
	)
	codec := &fake.Codec{}

	var buf bytes.Buffer
	if err := NewExportMonthUseCase(repo, codec).Execute(context.Background(), ExportMonthInput{UserID: userID, Month: "2024-01"}, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "Mercado\n" {
		t.Errorf("expected only January rows, got %q", buf.String())
	}
}

func TestImportTransactionsUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	records := []adapter.TransactionRecord{
		{Line: 2, Date: date(2024, 1, 3), Description: "Mercado", Type: entity.TransactionTypeExpense, Category: "Alimentação", Value: decimal.NewFromInt(80)},
		{Line: 3, Date: date(2024, 1, 4), Description: "Ração", Type: entity.TransactionTypeExpense, Category: "Pets", Value: decimal.NewFromInt(60), IsPaid: true},
		{Line: 4, Date: date(2024, 1, 9), Description: "Banho", Type: entity.TransactionTypeExpense, Category: "Pets", Value: decimal.NewFromInt(50)},
	}
	repo := fake.NewTransactions()
	categories := fake.NewCategories()
	uc := NewImportTransactionsUseCase(repo, categories, &fake.Codec{Records: records}, nil)

	out, err := uc.Execute(context.Background(), ImportTransactionsInput{UserID: userID, File: strings.NewReader("")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Imported != 3 || len(repo.All()) != 3 {
		t.Errorf("expected 3 imported rows, got %d", out.Imported)
	}
	if len(out.CreatedCategories) != 1 || out.CreatedCategories[0] != "Pets" {
		t.Errorf("expected Pets to be created, got %v", out.CreatedCategories)
	}
}

func TestImportTransactionsUseCase_RejectsWholeFile(t *testing.T) {
	records := []adapter.TransactionRecord{
		{Line: 2, Date: date(2024, 1, 3), Description: "Mercado", Type: entity.TransactionTypeExpense, Category: "Alimentação", Value: decimal.NewFromInt(80)},
		{Line: 3, Date: date(2024, 1, 4), Description: "Errado", Type: entity.TransactionTypeExpense, Category: "Alimentação", Value: decimal.NewFromInt(-1)},
	}
	repo := fake.NewTransactions()
	uc := NewImportTransactionsUseCase(repo, fake.NewCategories(), &fake.Codec{Records: records}, nil)

	_, err := uc.Execute(context.Background(), ImportTransactionsInput{UserID: uuid.New(), File: strings.NewReader("")})
	if !errors.Is(err, domainerror.ErrInvalidImportFile) {
		t.Fatalf("expected invalid import file, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("expected the failing line in the message, got %q", err.Error())
	}
	if len(repo.All()) != 0 {
		t.Errorf("expected nothing imported")
	}
}

func TestImportTransactionsUseCase_DecodeFailure(t *testing.T) {
	uc := NewImportTransactionsUseCase(fake.NewTransactions(), fake.NewCategories(), &fake.Codec{Err: errors.New("bad header")}, nil)

	_, err := uc.Execute(context.Background(), ImportTransactionsInput{UserID: uuid.New(), File: strings.NewReader("")})
	code, _ := domainerror.CodeOf(err)
	if code != string(domainerror.ErrCodeInvalidImportFile) {
		t.Errorf("expected invalid import code, got %v", err)
	}
}
