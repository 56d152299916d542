package leave

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// ACCRUAL CONFIGURATION
// =============================================================================

// DefaultEligibilityMonths is the tenure gate: an employee may draw on
// their balance only after this many full months of service.
const DefaultEligibilityMonths = 6

// defaultMonthlyRate is 0.83 day of leave per full month of tenure,
// applied uniformly regardless of leave type or employee category.
var defaultMonthlyRate = decimal.RequireFromString("0.83")

// AccrualConfig makes the accrual rate and eligibility threshold
// first-class inputs instead of inline literals.
type AccrualConfig struct {
	// MonthlyRate is the leave accrued per full calendar month of tenure.
	MonthlyRate decimal.Decimal

	// EligibilityMonths is the minimum whole-months tenure before the
	// balance may be used.
	EligibilityMonths int
}

func DefaultAccrualConfig() AccrualConfig {
	return AccrualConfig{
		MonthlyRate:       defaultMonthlyRate,
		EligibilityMonths: DefaultEligibilityMonths,
	}
}

// =============================================================================
// ACCRUAL + ELIGIBILITY ENGINES
// =============================================================================

// AccruedLeave returns the total leave accrued from hire date to the as-of
// date: full months of tenure times the monthly rate. There is no annual
// reset; accrual is monotonic and cumulative over the entire employment.
// The starting balance and leave taken are netted by the transformer, not
// here.
func (c AccrualConfig) AccruedLeave(hireDate, asOf Date) decimal.Decimal {
	months := FullMonthsBetween(hireDate, asOf)
	return c.MonthlyRate.Mul(decimal.NewFromInt(int64(months)))
}

// IsEligible reports whether an employee with the given whole-months tenure
// may currently draw on their balance. Pure threshold predicate.
func (c AccrualConfig) IsEligible(fullMonthsTenure int) bool {
	return fullMonthsTenure >= c.EligibilityMonths
}
