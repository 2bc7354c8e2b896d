package goal

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter/fake"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	domainerror "github.com/MatheusJosue/planilha-financeira-v2/internal/domain/error"
)

func TestCreateGoalUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		input    CreateGoalInput
		wantCode string
	}{
		{
			name:  "valid goal",
			input: CreateGoalInput{UserID: userID, Name: "Viagem", TargetValue: decimal.NewFromInt(5000), CurrentValue: decimal.NewFromInt(500)},
		},
		{
			name:     "missing name",
			input:    CreateGoalInput{UserID: userID, Name: " ", TargetValue: decimal.NewFromInt(5000)},
			wantCode: string(domainerror.ErrCodeMissingGoalFields),
		},
		{
			name:     "zero target",
			input:    CreateGoalInput{UserID: userID, Name: "Viagem", TargetValue: decimal.Zero},
			wantCode: string(domainerror.ErrCodeInvalidTargetValue),
		},
		{
			name:     "negative current",
			input:    CreateGoalInput{UserID: userID, Name: "Viagem", TargetValue: decimal.NewFromInt(10), CurrentValue: decimal.NewFromInt(-1)},
			wantCode: string(domainerror.ErrCodeInvalidCurrentValue),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NewCreateGoalUseCase(fake.NewGoals()).Execute(context.Background(), tt.input)

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
			if out.Goal.Color != entity.DefaultGoalColor || out.Goal.Icon != entity.DefaultGoalIcon {
				t.Errorf("expected default color and icon, got %s %s", out.Goal.Color, out.Goal.Icon)
			}
			if out.Goal.IsCompleted {
				t.Errorf("expected goal not completed")
			}
		})
	}
}

func seedGoal(t *testing.T, repo *fake.Goals, userID uuid.UUID, target, current int64) *entity.FinancialGoal {
	t.Helper()
	g := entity.NewFinancialGoal(userID, "Reserva", decimal.NewFromInt(target), decimal.NewFromInt(current))
	if err := repo.Create(context.Background(), g); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return g
}

func TestContributeToGoalUseCase_Execute(t *testing.T) {
	tests := []struct {
		name          string
		amount        int64
		wantCurrent   int64
		wantCompleted bool
		wantErr       error
	}{
		{name: "deposit", amount: 200, wantCurrent: 600},
		{name: "completes the goal", amount: 600, wantCurrent: 1000, wantCompleted: true},
		{name: "withdrawal", amount: -100, wantCurrent: 300},
		{name: "withdraw everything", amount: -400, wantCurrent: 0},
		{name: "overdraw", amount: -401, wantErr: domainerror.ErrInvalidContribution},
		{name: "zero", amount: 0, wantErr: domainerror.ErrInvalidContribution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID := uuid.New()
			repo := fake.NewGoals()
			g := seedGoal(t, repo, userID, 1000, 400)

			out, err := NewContributeToGoalUseCase(repo).Execute(context.Background(), ContributeToGoalInput{
				GoalID: g.ID, UserID: userID, Amount: decimal.NewFromInt(tt.amount),
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				stored, _ := repo.FindByID(context.Background(), g.ID)
				if !stored.CurrentValue.Equal(decimal.NewFromInt(400)) {
					t.Errorf("expected stored value unchanged, got %s", stored.CurrentValue)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !out.Goal.CurrentValue.Equal(decimal.NewFromInt(tt.wantCurrent)) {
				t.Errorf("expected current %d, got %s", tt.wantCurrent, out.Goal.CurrentValue)
			}
			if out.Goal.IsCompleted != tt.wantCompleted {
				t.Errorf("expected completed %v, got %v", tt.wantCompleted, out.Goal.IsCompleted)
			}
		})
	}
}

func TestUpdateGoalUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	repo := fake.NewGoals()
	g := seedGoal(t, repo, userID, 1000, 400)

	target := decimal.NewFromInt(400)
	out, err := NewUpdateGoalUseCase(repo).Execute(context.Background(), UpdateGoalInput{
		GoalID: g.ID, UserID: userID, TargetValue: &target,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Goal.IsCompleted {
		t.Errorf("expected lowering the target to complete the goal")
	}

	zero := decimal.Zero
	_, err = NewUpdateGoalUseCase(repo).Execute(context.Background(), UpdateGoalInput{
		GoalID: g.ID, UserID: userID, TargetValue: &zero,
	})
	if !errors.Is(err, domainerror.ErrInvalidTargetValue) {
		t.Errorf("expected invalid target, got %v", err)
	}
}

func TestGoalOwnership(t *testing.T) {
	repo := fake.NewGoals()
	g := seedGoal(t, repo, uuid.New(), 1000, 0)
	stranger := uuid.New()

	_, err := NewGetGoalUseCase(repo).Execute(context.Background(), GetGoalInput{GoalID: g.ID, UserID: stranger})
	if !errors.Is(err, domainerror.ErrUnauthorizedGoalAccess) {
		t.Errorf("expected unauthorized, got %v", err)
	}

	err = NewDeleteGoalUseCase(repo).Execute(context.Background(), DeleteGoalInput{GoalID: g.ID, UserID: stranger})
	if !errors.Is(err, domainerror.ErrUnauthorizedGoalAccess) {
		t.Errorf("expected unauthorized, got %v", err)
	}

	_, err = NewGetGoalUseCase(repo).Execute(context.Background(), GetGoalInput{GoalID: uuid.New(), UserID: stranger})
	if !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestListAndDeleteGoals(t *testing.T) {
	userID := uuid.New()
	repo := fake.NewGoals()
	g := seedGoal(t, repo, userID, 1000, 0)
	seedGoal(t, repo, uuid.New(), 1000, 0)

	out, err := NewListGoalsUseCase(repo).Execute(context.Background(), ListGoalsInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Goals) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(out.Goals))
	}

	if err := NewDeleteGoalUseCase(repo).Execute(context.Background(), DeleteGoalInput{GoalID: g.ID, UserID: userID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, _ = NewListGoalsUseCase(repo).Execute(context.Background(), ListGoalsInput{UserID: userID})
	if len(out.Goals) != 0 {
		t.Errorf("expected empty list after delete, got %d", len(out.Goals))
	}
}
