// Package valueobject contains domain value objects for the planilha-financeira system.
package valueobject

import (
	"fmt"
	"time"
)

// MonthLayout is the canonical textual form of a Month.
const MonthLayout = "2006-01"

// Month is a calendar month. The zero value is not a valid month.
type Month struct {
	Year  int
	Month time.Month
}

// NewMonth creates a Month, normalizing out-of-range month numbers.
func NewMonth(year int, month time.Month) Month {
	return MonthOf(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the calendar month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a "YYYY-MM" string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: expected YYYY-MM", s)
	}
	return MonthOf(t), nil
}

// String formats the month as "YYYY-MM".
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// IsZero reports whether m is the zero Month.
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// First returns midnight UTC of the first day of the month.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Last returns midnight UTC of the last day of the month.
func (m Month) Last() time.Time {
	return time.Date(m.Year, m.Month, m.DaysIn(), 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in the month.
func (m Month) DaysIn() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Date returns the given day of the month, clamped to [1, DaysIn()].
// A day anchor of 31 in February yields the 28th (or 29th), never a date
// in March.
func (m Month) Date(day int) time.Time {
	if day < 1 {
		day = 1
	}
	if last := m.DaysIn(); day > last {
		day = last
	}
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC)
}

// AddMonths returns the month n months after m (n may be negative).
func (m Month) AddMonths(n int) Month {
	return NewMonth(m.Year, m.Month+time.Month(n))
}

// MonthsSince returns the number of whole calendar months from other to m.
func (m Month) MonthsSince(other Month) int {
	return (m.Year-other.Year)*12 + int(m.Month) - int(other.Month)
}

// Contains reports whether t falls inside the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// Before reports whether m is earlier than other.
func (m Month) Before(other Month) bool {
	return m.MonthsSince(other) < 0
}

// After reports whether m is later than other.
func (m Month) After(other Month) bool {
	return m.MonthsSince(other) > 0
}

// MarshalText implements encoding.TextMarshaler.
func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Month) UnmarshalText(text []byte) error {
	parsed, err := ParseMonth(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
