package period

import (
	"fmt"
	"time"
)

// Period is one calendar month, keyed as "YYYY-MM". It is the pay cycle
// granularity for KPI results, advance deductions and payroll records.
type Period struct {
	Year  int
	Month time.Month
}

func New(year, month int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("invalid month: %d", month)
	}
	if year < 2000 || year > 2100 {
		return Period{}, fmt.Errorf("invalid year: %d", year)
	}
	return Period{Year: year, Month: time.Month(month)}, nil
}

// Parse parses a "YYYY-MM" period key.
func Parse(key string) (Period, error) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period key %q: expected YYYY-MM", key)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

func FromDate(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// Key returns the canonical "YYYY-MM" form.
func (p Period) Key() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Start is the first instant of the month.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the first instant of the following month (exclusive bound).
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

// Last is midnight on the last day of the month.
func (p Period) Last() time.Time {
	return p.End().AddDate(0, 0, -1)
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start()) && t.Before(p.End())
}

func (p Period) Next() Period {
	return FromDate(p.End())
}
