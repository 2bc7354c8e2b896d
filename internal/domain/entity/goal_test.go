package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestFinancialGoal_Contribute(t *testing.T) {
	tests := []struct {
		name          string
		current       int64
		amount        int64
		wantApplied   bool
		wantCurrent   int64
		wantCompleted bool
	}{
		{"deposit below target", 100, 200, true, 300, false},
		{"deposit reaching target", 900, 100, true, 1000, true},
		{"deposit past target", 900, 500, true, 1400, true},
		{"withdrawal", 500, -200, true, 300, false},
		{"withdrawal to zero", 500, -500, true, 0, false},
		{"overdraw rejected", 100, -200, false, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewFinancialGoal(uuid.New(), "Viagem", decimal.NewFromInt(1000), decimal.NewFromInt(tt.current))

			applied := g.Contribute(decimal.NewFromInt(tt.amount))
			if applied != tt.wantApplied {
				t.Errorf("expected applied %v, got %v", tt.wantApplied, applied)
			}
			if !g.CurrentValue.Equal(decimal.NewFromInt(tt.wantCurrent)) {
				t.Errorf("expected current %d, got %s", tt.wantCurrent, g.CurrentValue)
			}
			if g.IsCompleted != tt.wantCompleted {
				t.Errorf("expected completed %v, got %v", tt.wantCompleted, g.IsCompleted)
			}
		})
	}
}

func TestFinancialGoal_Progress(t *testing.T) {
	g := NewFinancialGoal(uuid.New(), "Reserva", decimal.NewFromInt(400), decimal.NewFromInt(100))
	if !g.Progress().Equal(decimal.NewFromInt(25)) {
		t.Errorf("expected 25, got %s", g.Progress())
	}

	g.Contribute(decimal.NewFromInt(1000))
	if !g.Progress().Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected progress capped at 100, got %s", g.Progress())
	}
}
