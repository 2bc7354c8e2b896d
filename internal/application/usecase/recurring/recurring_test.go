package recurring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter/fake"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/prediction"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

var jan2024 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func validInput(userID uuid.UUID) CreateRuleInput {
	return CreateRuleInput{
		UserID:      userID,
		Description: "  Netflix ",
		Type:        entity.TransactionTypeExpense,
		Category:    "Assinaturas",
		Value:       decimal.NewFromFloat(55.9),
		Kind:        entity.RecurrenceFixed,
		DayOfMonth:  10,
		StartDate:   jan2024,
	}
}

func TestCreateRuleUseCase(t *testing.T) {
	three := 3
	incomeID := uuid.New()
	before := jan2024.AddDate(0, 0, -1)

	tests := []struct {
		name     string
		mutate   func(in *CreateRuleInput)
		wantErr  error
		wantKind domainerror.Kind
	}{
		{"valid fixed", func(in *CreateRuleInput) {}, nil, domainerror.KindUnknown},
		{"valid installment", func(in *CreateRuleInput) {
			in.Kind = entity.RecurrenceInstallment
			in.TotalInstallments = &three
		}, nil, domainerror.KindUnknown},
		{"valid by income", func(in *CreateRuleInput) {
			in.Kind = entity.RecurrenceVariableByIncome
			in.SelectedIncomeID = &incomeID
		}, nil, domainerror.KindUnknown},
		{"empty description", func(in *CreateRuleInput) { in.Description = "   " }, nil, domainerror.KindValidation},
		{"installment without count", func(in *CreateRuleInput) { in.Kind = entity.RecurrenceInstallment }, domainerror.ErrMissingInstallments, domainerror.KindValidation},
		{"end before start", func(in *CreateRuleInput) { in.EndDate = &before }, domainerror.ErrEndBeforeStart, domainerror.KindValidation},
		{"non-positive value", func(in *CreateRuleInput) { in.Value = decimal.Zero }, domainerror.ErrInvalidRuleValue, domainerror.KindValidation},
		{"day out of range", func(in *CreateRuleInput) { in.DayOfMonth = 32 }, domainerror.ErrInvalidDayOfMonth, domainerror.KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := fake.NewRules()
			uc := NewCreateRuleUseCase(repo)
			in := validInput(uuid.New())
			tt.mutate(&in)

			out, err := uc.Execute(context.Background(), in)
			if tt.wantKind == domainerror.KindUnknown {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				if out.Rule.Description != "Netflix" {
					t.Errorf("expected trimmed description, got %q", out.Rule.Description)
				}
				if !out.Rule.IsActive {
					t.Error("expected new rule to be active")
				}
				if _, err := repo.FindByID(context.Background(), out.Rule.ID); err != nil {
					t.Errorf("expected rule persisted, got %v", err)
				}
				return
			}

			if domainerror.KindOf(err) != tt.wantKind {
				t.Errorf("expected %s, got %v", tt.wantKind, err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			rules, _ := repo.FindByUser(context.Background(), in.UserID, false)
			if len(rules) != 0 {
				t.Error("expected nothing persisted")
			}
		})
	}
}

func TestCreateRuleUseCase_PersistenceFailure(t *testing.T) {
	repo := fake.NewRules()
	repo.Fail = true

	_, err := NewCreateRuleUseCase(repo).Execute(context.Background(), validInput(uuid.New()))
	if !errors.Is(err, domainerror.ErrPersistence) {
		t.Errorf("expected persistence error, got %v", err)
	}
}

func TestUpdateRuleUseCase(t *testing.T) {
	userID := uuid.New()
	repo := fake.NewRules()
	created, err := NewCreateRuleUseCase(repo).Execute(context.Background(), validInput(userID))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	uc := NewUpdateRuleUseCase(repo)

	t.Run("pause rule", func(t *testing.T) {
		inactive := false
		out, err := uc.Execute(context.Background(), UpdateRuleInput{RuleID: created.Rule.ID, UserID: userID, IsActive: &inactive})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out.Rule.IsActive {
			t.Error("expected rule paused")
		}
	})

	t.Run("invalid change leaves stored rule untouched", func(t *testing.T) {
		kind := entity.RecurrenceInstallment
		_, err := uc.Execute(context.Background(), UpdateRuleInput{RuleID: created.Rule.ID, UserID: userID, Kind: &kind})
		if !errors.Is(err, domainerror.ErrMissingInstallments) {
			t.Fatalf("expected ErrMissingInstallments, got %v", err)
		}
		stored, _ := repo.FindByID(context.Background(), created.Rule.ID)
		if stored.Kind != entity.RecurrenceFixed {
			t.Errorf("expected kind unchanged, got %s", stored.Kind)
		}
	})

	t.Run("switching kind drops foreign fields", func(t *testing.T) {
		kind := entity.RecurrenceInstallment
		four := 4
		out, err := uc.Execute(context.Background(), UpdateRuleInput{RuleID: created.Rule.ID, UserID: userID, Kind: &kind, TotalInstallments: &four})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		kind = entity.RecurrenceFixed
		out, err = uc.Execute(context.Background(), UpdateRuleInput{RuleID: out.Rule.ID, UserID: userID, Kind: &kind})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if out.Rule.TotalInstallments != nil {
			t.Error("expected installments cleared")
		}
	})

	t.Run("other owner", func(t *testing.T) {
		active := true
		_, err := uc.Execute(context.Background(), UpdateRuleInput{RuleID: created.Rule.ID, UserID: uuid.New(), IsActive: &active})
		if !errors.Is(err, domainerror.ErrRecurringRuleNotFound) {
			t.Errorf("expected ErrRecurringRuleNotFound, got %v", err)
		}
	})
}

func TestDeleteRuleUseCase_Cascades(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	txns := fake.NewTransactions()
	exclusions := fake.NewExclusions()
	sessions := fake.NewSessions()
	rules := fake.NewRules()
	rules.Transactions = txns
	rules.Exclusions = exclusions
	ledger := prediction.NewLedger(exclusions, sessions, nil)

	doomed, _ := NewCreateRuleUseCase(rules).Execute(ctx, validInput(userID))
	kept, _ := NewCreateRuleUseCase(rules).Execute(ctx, validInput(userID))

	linked := func(ruleID uuid.UUID, month time.Month) *entity.Transaction {
		txn := entity.NewTransaction(userID, "Netflix", entity.TransactionTypeExpense, "Assinaturas", decimal.NewFromInt(55), time.Date(2024, month, 10, 0, 0, 0, 0, time.UTC), true)
		id := ruleID
		txn.RecurringID = &id
		return txn
	}
	_ = txns.Create(ctx, linked(doomed.Rule.ID, time.January))
	_ = txns.Create(ctx, linked(doomed.Rule.ID, time.February))
	_ = txns.Create(ctx, linked(kept.Rule.ID, time.January))
	manual := entity.NewTransaction(userID, "Mercado", entity.TransactionTypeExpense, "Alimentação", decimal.NewFromInt(300), jan2024, true)
	_ = txns.Create(ctx, manual)

	doomedKey := valueobject.NewPredictionKey(doomed.Rule.ID, valueobject.NewMonth(2024, time.March))
	keptKey := valueobject.NewPredictionKey(kept.Rule.ID, valueobject.NewMonth(2024, time.March))
	_, _ = ledger.Exclude(ctx, userID, doomedKey)
	_, _ = ledger.Exclude(ctx, userID, keptKey)

	out, err := NewDeleteRuleUseCase(rules, ledger, nil).Execute(ctx, DeleteRuleInput{RuleID: doomed.Rule.ID, UserID: userID})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.DeletedTransactions != 2 {
		t.Errorf("expected 2 cascaded transactions, got %d", out.DeletedTransactions)
	}
	if len(txns.All()) != 2 {
		t.Errorf("expected 2 remaining transactions, got %d", len(txns.All()))
	}

	cached, ok, _ := sessions.GetExclusions(ctx, userID)
	if !ok {
		t.Fatal("expected session cache refreshed")
	}
	if cached.Contains(doomedKey) || !cached.Contains(keptKey) {
		t.Errorf("expected only the deleted rule's exclusions pruned, got %v", cached.Keys())
	}

	if _, err := rules.FindByID(ctx, doomed.Rule.ID); !errors.Is(err, domainerror.ErrRecurringRuleNotFound) {
		t.Errorf("expected rule gone, got %v", err)
	}
}

func TestDeleteRuleUseCase_RefreshFailureStillSucceeds(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	txns := fake.NewTransactions()
	exclusions := fake.NewExclusions()
	rules := fake.NewRules()
	rules.Transactions = txns
	rules.Exclusions = exclusions
	ledger := prediction.NewLedger(exclusions, fake.NewSessions(), nil)

	created, _ := NewCreateRuleUseCase(rules).Execute(ctx, validInput(userID))
	txn := entity.NewTransaction(userID, "Netflix", entity.TransactionTypeExpense, "Assinaturas", decimal.NewFromInt(55), jan2024, true)
	ruleID := created.Rule.ID
	txn.RecurringID = &ruleID
	_ = txns.Create(ctx, txn)

	// The cascade commits, then reloading the ledger fails
	exclusions.Fail = true

	out, err := NewDeleteRuleUseCase(rules, ledger, nil).Execute(ctx, DeleteRuleInput{RuleID: ruleID, UserID: userID})
	if err != nil {
		t.Fatalf("expected delete to succeed, got %v", err)
	}
	if out.DeletedTransactions != 1 {
		t.Errorf("expected 1 cascaded transaction, got %d", out.DeletedTransactions)
	}
	if _, err := rules.FindByID(ctx, ruleID); !errors.Is(err, domainerror.ErrRecurringRuleNotFound) {
		t.Errorf("expected rule gone, got %v", err)
	}
}
