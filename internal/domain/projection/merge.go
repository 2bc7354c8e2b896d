package projection

import (
	"sort"

	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/entity"
	"github.com/MatheusJosue/planilha-financeira-v2/internal/domain/valueobject"
)

// GroupByMonth indexes transactions by their month.
func GroupByMonth(txns []*entity.Transaction) map[valueobject.Month][]*entity.Transaction {
	out := make(map[valueobject.Month][]*entity.Transaction)
	for _, t := range txns {
		out[t.Month] = append(out[t.Month], t)
	}
	return out
}

// InMonth returns the transactions that belong to month.
func InMonth(txns []*entity.Transaction, month valueobject.Month) []*entity.Transaction {
	var out []*entity.Transaction
	for _, t := range txns {
		if t.Month == month {
			out = append(out, t)
		}
	}
	return out
}

// Merge builds the displayed view of a month: real transactions and
// predictions together, ordered by date. On the same date real
// transactions come first.
func Merge(recorded, predicted []*entity.Transaction) []*entity.Transaction {
	out := make([]*entity.Transaction, 0, len(recorded)+len(predicted))
	out = append(out, recorded...)
	out = append(out, predicted...)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
