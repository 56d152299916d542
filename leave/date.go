package leave

import (
	"time"
)

// =============================================================================
// DATE - Calendar date anchored at UTC midnight
// =============================================================================

// Date is a calendar date with no time-of-day component. Anchoring at UTC
// midnight keeps day and month arithmetic free of local-timezone drift.
type Date struct {
	Time time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date. Callers of the engine should
// pass an explicit date instead wherever reproducibility matters.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// ParseDate parses a date strictly in YYYY-MM-DD form. The shape is checked
// first so that a malformed string (ErrMalformedDate) is distinguishable
// from a well-shaped but impossible calendar date such as February 30
// (ErrImpossibleDate). Invalid input never flows into arithmetic.
func ParseDate(s string) (Date, error) {
	if !isDateShaped(s) {
		return Date{}, &DateError{Value: s, Reason: "expected YYYY-MM-DD", Err: ErrMalformedDate}
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, &DateError{Value: s, Reason: "no such calendar date", Err: ErrImpossibleDate}
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

func isDateShaped(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, c := range s {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Comparison
func (d Date) Before(other Date) bool { return d.Time.Before(other.Time) }
func (d Date) After(other Date) bool  { return d.Time.After(other.Time) }
func (d Date) Equal(other Date) bool  { return d.Time.Equal(other.Time) }
func (d Date) IsZero() bool           { return d.Time.IsZero() }

// Arithmetic
func (d Date) AddDays(n int) Date {
	t := d.Time.AddDate(0, 0, n)
	return NewDate(t.Year(), t.Month(), t.Day())
}
func (d Date) AddMonths(n int) Date {
	t := d.Time.AddDate(0, n, 0)
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Properties
func (d Date) Year() int         { return d.Time.Year() }
func (d Date) Month() time.Month { return d.Time.Month() }
func (d Date) Day() int          { return d.Time.Day() }

func (d Date) String() string { return d.Time.Format("2006-01-02") }

// =============================================================================
// TENURE ARITHMETIC
// =============================================================================

// DiffInDays returns the whole-day difference between two dates, clamped to
// zero when to precedes from (a future-dated hire record reads as zero
// tenure rather than negative).
func DiffInDays(from, to Date) int {
	days := int(to.Time.Sub(from.Time).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// FullMonthsBetween returns the number of whole calendar months elapsed
// between start and end: the month count is decremented when end's
// day-of-month has not yet reached start's, so partial final months are
// dropped. Never negative.
//
// This single function backs BOTH accrual and the eligibility gate; they
// must always agree on what "one full month" means.
func FullMonthsBetween(start, end Date) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// TenureBreakdown is the human-readable decomposition of elapsed tenure.
// Display only: eligibility and accrual use FullMonthsBetween instead.
type TenureBreakdown struct {
	Years  int
	Months int
	Days   int
}

// TenureComponents decomposes hire date → today into whole years, months
// and days. Borrowing a month converts using the length of the calendar
// month preceding today; borrowing a year adds twelve months.
func TenureComponents(hireDate, today Date) TenureBreakdown {
	years := today.Year() - hireDate.Year()
	months := int(today.Month()) - int(hireDate.Month())
	days := today.Day() - hireDate.Day()

	if days < 0 {
		months--
		// Day zero of the current month is the last day of the previous one.
		prev := time.Date(today.Year(), today.Month(), 0, 0, 0, 0, 0, time.UTC)
		days += prev.Day()
	}
	if months < 0 {
		years--
		months += 12
	}

	return TenureBreakdown{Years: years, Months: months, Days: days}
}
