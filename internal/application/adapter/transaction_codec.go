package adapter

import (
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
)

// TransactionRecord is one decoded row of an imported file.
type TransactionRecord struct {
	Line        int
	Date        time.Time
	Description string
	Type        entity.TransactionType
	Category    string
	Value       decimal.Decimal
	IsPaid      bool
}

// TransactionCodec encodes and decodes transactions in a flat file format.
type TransactionCodec interface {
	// Encode writes the transactions, header first.
	Encode(w io.Writer, transactions []*entity.Transaction) error

	// Decode reads every row of r. A malformed row fails the whole decode.
	Decode(r io.Reader) ([]TransactionRecord, error)
}
