package csvio

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
)

func TestCodec_Encode(t *testing.T) {
	owner := uuid.New()
	txns := []*entity.Transaction{
		entity.NewTransaction(owner, "Salário", entity.TransactionTypeIncome, "Salário",
			decimal.NewFromInt(5000), time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), true),
		entity.NewTransaction(owner, "Mercado, feira", entity.TransactionTypeExpense, "Alimentação",
			decimal.RequireFromString("312.5"), time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), false),
	}

	var buf bytes.Buffer
	if err := NewCodec(0).Encode(&buf, txns); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "date,description,type,category,value,paid\n" +
		"2024-03-05,Salário,income,Salário,5000.00,true\n" +
		"2024-03-09,\"Mercado, feira\",expense,Alimentação,312.50,false\n"
	if buf.String() != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, buf.String())
	}
}

func TestCodec_EncodeEmptyWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCodec(';').Encode(&buf, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "date;description;type;category;value;paid\n" {
		t.Errorf("expected header only, got %q", buf.String())
	}
}

func TestCodec_Decode(t *testing.T) {
	input := "date,description,type,category,value,paid\n" +
		"2024-03-05,Salário,receita,Salário,5000,sim\n" +
		"2024-03-09,Feira,expense,Alimentação,\"45,90\",\n"

	records, err := NewCodec(0).Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first, second := records[0], records[1]
	if first.Line != 2 || second.Line != 3 {
		t.Errorf("expected lines 2 and 3, got %d and %d", first.Line, second.Line)
	}
	if first.Type != entity.TransactionTypeIncome || !first.IsPaid {
		t.Errorf("expected paid income, got %s paid=%v", first.Type, first.IsPaid)
	}
	if !second.Value.Equal(decimal.RequireFromString("45.90")) {
		t.Errorf("expected 45.90, got %s", second.Value)
	}
	if second.IsPaid {
		t.Error("expected empty paid cell to mean unpaid")
	}
	if !second.Date.Equal(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected 2024-03-09, got %s", second.Date)
	}
}

func TestCodec_DecodeErrors(t *testing.T) {
	header := "date,description,type,category,value,paid\n"

	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{name: "bad date", input: header + "05/03/2024,x,expense,Lazer,10,false\n", wantMsg: "line 2: date"},
		{name: "bad type", input: header + "2024-03-05,x,transfer,Lazer,10,false\n", wantMsg: "line 2: unknown type"},
		{name: "bad value on third line", input: header + "2024-03-05,x,expense,Lazer,10,false\n2024-03-06,y,expense,Lazer,abc,false\n", wantMsg: "line 3: value"},
		{name: "bad paid", input: header + "2024-03-05,x,expense,Lazer,10,talvez\n", wantMsg: "line 2: paid"},
		{name: "empty file", input: "", wantMsg: "error parsing CSV data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCodec(0).Decode(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("expected error containing %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}
