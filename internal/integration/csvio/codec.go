// Package csvio reads and writes transactions as CSV files.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/application/adapter"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
)

// DateLayout is the date format of the date column.
const DateLayout = "2006-01-02"

// row is one CSV line. Every column is read as text and parsed afterwards
// so a bad cell can be reported with its line number.
type row struct {
	Date        string `csv:"date"`
	Description string `csv:"description"`
	Type        string `csv:"type"`
	Category    string `csv:"category"`
	Value       string `csv:"value"`
	Paid        string `csv:"paid"`
}

// Codec implements adapter.TransactionCodec with gocsv.
type Codec struct {
	delimiter rune
}

// NewCodec creates a CSV codec. A zero delimiter means comma.
func NewCodec(delimiter rune) *Codec {
	if delimiter == 0 {
		delimiter = ','
	}
	return &Codec{delimiter: delimiter}
}

// Encode writes the header and one row per transaction.
func (c *Codec) Encode(w io.Writer, transactions []*entity.Transaction) error {
	rows := make([]row, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, row{
			Date:        t.Date.Format(DateLayout),
			Description: t.Description,
			Type:        string(t.Type),
			Category:    t.Category,
			Value:       t.Value.StringFixed(2),
			Paid:        strconv.FormatBool(t.IsPaid),
		})
	}

	writer := csv.NewWriter(w)
	writer.Comma = c.delimiter
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// Decode parses every row. The first malformed cell aborts with its line number.
func (c *Codec) Decode(r io.Reader) ([]adapter.TransactionRecord, error) {
	var rows []row
	err := gocsv.UnmarshalCSV(c.reader(r), &rows)
	if err != nil {
		return nil, fmt.Errorf("error parsing CSV data: %w", err)
	}

	records := make([]adapter.TransactionRecord, 0, len(rows))
	for i, rw := range rows {
		// Line 1 is the header.
		rec, err := parseRow(i+2, rw)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (c *Codec) reader(r io.Reader) gocsv.CSVReader {
	reader := csv.NewReader(r)
	reader.Comma = c.delimiter
	reader.TrimLeadingSpace = true
	return reader
}

func parseRow(line int, rw row) (adapter.TransactionRecord, error) {
	date, err := time.Parse(DateLayout, strings.TrimSpace(rw.Date))
	if err != nil {
		return adapter.TransactionRecord{}, fmt.Errorf("line %d: date must be YYYY-MM-DD", line)
	}

	txnType, err := parseType(rw.Type)
	if err != nil {
		return adapter.TransactionRecord{}, fmt.Errorf("line %d: %w", line, err)
	}

	value, err := parseValue(rw.Value)
	if err != nil {
		return adapter.TransactionRecord{}, fmt.Errorf("line %d: %w", line, err)
	}

	paid, err := parsePaid(rw.Paid)
	if err != nil {
		return adapter.TransactionRecord{}, fmt.Errorf("line %d: %w", line, err)
	}

	return adapter.TransactionRecord{
		Line:        line,
		Date:        date,
		Description: strings.TrimSpace(rw.Description),
		Type:        txnType,
		Category:    strings.TrimSpace(rw.Category),
		Value:       value,
		IsPaid:      paid,
	}, nil
}

func parseType(raw string) (entity.TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "expense", "despesa":
		return entity.TransactionTypeExpense, nil
	case "income", "receita":
		return entity.TransactionTypeIncome, nil
	default:
		return "", fmt.Errorf("unknown type %q", raw)
	}
}

// parseValue accepts "1234.56" and the Brazilian "1234,56".
func parseValue(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("value %q is not a number", raw)
	}
	return value, nil
}

func parsePaid(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "false", "0", "no", "não", "nao":
		return false, nil
	case "true", "1", "yes", "sim":
		return true, nil
	default:
		return false, fmt.Errorf("paid must be true or false, got %q", raw)
	}
}

var _ adapter.TransactionCodec = (*Codec)(nil)
