package valueobject

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

const predictionKeyPrefix = "predicted-"

// PredictionKey identifies a predicted transaction: one rule in one month.
// It doubles as the exclusion-ledger key.
type PredictionKey struct {
	RuleID uuid.UUID
	Month  Month
}

// NewPredictionKey creates a PredictionKey.
func NewPredictionKey(ruleID uuid.UUID, month Month) PredictionKey {
	return PredictionKey{RuleID: ruleID, Month: month}
}

// String renders the key as "predicted-<ruleId>-<YYYY-MM>".
func (k PredictionKey) String() string {
	return predictionKeyPrefix + k.RuleID.String() + "-" + k.Month.String()
}

// ParsePredictionKey parses the textual form produced by String.
func ParsePredictionKey(s string) (PredictionKey, error) {
	rest, ok := strings.CutPrefix(s, predictionKeyPrefix)
	if !ok {
		return PredictionKey{}, fmt.Errorf("invalid prediction key %q: missing prefix", s)
	}

	// "<uuid>-YYYY-MM": the month is always the trailing 7 characters.
	if len(rest) < len(MonthLayout)+2 || rest[len(rest)-len(MonthLayout)-1] != '-' {
		return PredictionKey{}, fmt.Errorf("invalid prediction key %q", s)
	}
	monthPart := rest[len(rest)-len(MonthLayout):]
	rulePart := rest[:len(rest)-len(MonthLayout)-1]

	ruleID, err := uuid.Parse(rulePart)
	if err != nil {
		return PredictionKey{}, fmt.Errorf("invalid prediction key %q: bad rule id: %w", s, err)
	}
	month, err := ParseMonth(monthPart)
	if err != nil {
		return PredictionKey{}, fmt.Errorf("invalid prediction key %q: %w", s, err)
	}

	return PredictionKey{RuleID: ruleID, Month: month}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (k PredictionKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *PredictionKey) UnmarshalText(text []byte) error {
	parsed, err := ParsePredictionKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ExclusionSet is the set of dismissed prediction keys for one owner.
type ExclusionSet map[PredictionKey]struct{}

// NewExclusionSet builds a set from the given keys.
func NewExclusionSet(keys ...PredictionKey) ExclusionSet {
	set := make(ExclusionSet, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// Contains reports whether key has been dismissed. Safe on a nil set.
func (s ExclusionSet) Contains(key PredictionKey) bool {
	_, ok := s[key]
	return ok
}

// Add inserts key into the set.
func (s ExclusionSet) Add(key PredictionKey) {
	s[key] = struct{}{}
}

// Without returns a copy of the set without any key belonging to ruleID.
func (s ExclusionSet) Without(ruleID uuid.UUID) ExclusionSet {
	out := make(ExclusionSet, len(s))
	for k := range s {
		if k.RuleID != ruleID {
			out[k] = struct{}{}
		}
	}
	return out
}

// Keys returns the keys sorted by their string form.
func (s ExclusionSet) Keys() []PredictionKey {
	keys := make([]PredictionKey, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
	return keys
}
