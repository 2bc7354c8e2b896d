package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter/fake"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/usecase/prediction"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

var clock = fake.Clock{At: time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)}

func TestGetSessionUseCase_DefaultsAndWarmsCache(t *testing.T) {
	userID := uuid.New()
	key := valueobject.NewPredictionKey(uuid.New(), valueobject.NewMonth(2024, time.June))

	exclusions := fake.NewExclusions()
	if err := exclusions.Add(context.Background(), userID, key); err != nil {
		t.Fatalf("seed: %v", err)
	}
	sessions := fake.NewSessions()
	uc := NewGetSessionUseCase(sessions, prediction.NewLedger(exclusions, sessions, nil), clock, nil)

	out, err := uc.Execute(context.Background(), GetSessionInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.State.SelectedMonth != valueobject.NewMonth(2024, time.May) {
		t.Errorf("expected current month 2024-05, got %s", out.State.SelectedMonth)
	}
	if !out.State.Exclusions.Contains(key) {
		t.Errorf("expected ledger to contain %s", key)
	}

	cached, ok, _ := sessions.GetExclusions(context.Background(), userID)
	if !ok || !cached.Contains(key) {
		t.Errorf("expected cache to be warmed")
	}
}

func TestGetSessionUseCase_UsesSelectedMonth(t *testing.T) {
	userID := uuid.New()
	sessions := fake.NewSessions()
	selected := valueobject.NewMonth(2023, time.December)
	_ = sessions.SetSelectedMonth(context.Background(), userID, selected)

	uc := NewGetSessionUseCase(sessions, prediction.NewLedger(fake.NewExclusions(), sessions, nil), clock, nil)

	out, err := uc.Execute(context.Background(), GetSessionInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.State.SelectedMonth != selected {
		t.Errorf("expected %s, got %s", selected, out.State.SelectedMonth)
	}
}

func TestGetSessionUseCase_CacheDownFallsBack(t *testing.T) {
	userID := uuid.New()
	sessions := fake.NewSessions()
	sessions.Fail = true

	uc := NewGetSessionUseCase(sessions, prediction.NewLedger(fake.NewExclusions(), sessions, nil), clock, nil)

	out, err := uc.Execute(context.Background(), GetSessionInput{UserID: userID})
	if err != nil {
		t.Fatalf("expected fallback without error, got %v", err)
	}
	if out.State.SelectedMonth != valueobject.NewMonth(2024, time.May) {
		t.Errorf("expected current month, got %s", out.State.SelectedMonth)
	}
}

func TestSelectMonthUseCase_Execute(t *testing.T) {
	tests := []struct {
		name     string
		month    string
		wantCode string
	}{
		{name: "valid", month: "2024-02"},
		{name: "bad format", month: "02/2024", wantCode: string(domainerror.ErrCodeInvalidSessionMonth)},
		{name: "bad month", month: "2024-13", wantCode: string(domainerror.ErrCodeInvalidSessionMonth)},
		{name: "empty", month: "", wantCode: string(domainerror.ErrCodeInvalidSessionMonth)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := fake.NewSessions()
			userID := uuid.New()

			out, err := NewSelectMonthUseCase(sessions).Execute(context.Background(), SelectMonthInput{UserID: userID, Month: tt.month})

			if tt.wantCode != "" {
				code, _ := domainerror.CodeOf(err)
				if code != tt.wantCode {
					t.Errorf("expected code %s, got %v", tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			stored, ok, _ := sessions.GetSelectedMonth(context.Background(), userID)
			if !ok || stored != out.Month {
				t.Errorf("expected %s stored, got %s", out.Month, stored)
			}
		})
	}
}

func TestResetSessionUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	sessions := fake.NewSessions()
	_ = sessions.SetSelectedMonth(context.Background(), userID, valueobject.NewMonth(2024, time.March))

	if err := NewResetSessionUseCase(sessions).Execute(context.Background(), ResetSessionInput{UserID: userID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok, _ := sessions.GetSelectedMonth(context.Background(), userID); ok {
		t.Errorf("expected selected month to be cleared")
	}

	sessions.Fail = true
	err := NewResetSessionUseCase(sessions).Execute(context.Background(), ResetSessionInput{UserID: userID})
	if !errors.Is(err, fake.ErrStorage) {
		t.Errorf("expected storage error, got %v", err)
	}
	if domainerror.KindOf(err) != domainerror.KindPersistence {
		t.Errorf("expected persistence kind, got %s", domainerror.KindOf(err))
	}
}
