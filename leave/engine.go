/*
engine.go - The transformer composing tenure, accrual and balance

PURPOSE:

	ComputeEmployeeLeave is the single entry point the API layer calls. It
	maps raw employee records into enriched records with tenure breakdown,
	total accrued leave, leave taken, balance and usage eligibility.

PIPELINE (per employee):
 1. Parse and validate hire date and every entry date (fail fast)
 2. Tenure: day count + display breakdown + whole-months count
 3. Accrual: full months x monthly rate, plus the starting balance
 4. Aggregate: sum leave taken, net against accrual
 5. Gate: eligibility from whole-months tenure; available-to-use is the
    balance when eligible, zero otherwise
 6. Round the four money-like outputs to 2 decimals (output boundary only)

FAILURE MODE:

	Whole-batch fail-fast: one malformed record aborts the transformation
	with an error naming the employee. There is no partial-success mode.

DETERMINISM:

	The as-of date is a mandatory parameter. Computing twice with the same
	snapshot and date yields identical output; only the HTTP layer ever
	supplies the live current date.
*/
package leave

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Engine computes enriched leave records from raw ones. It is stateless
// apart from its configuration and safe for concurrent use.
type Engine struct {
	Config AccrualConfig
}

func NewEngine() *Engine {
	return &Engine{Config: DefaultAccrualConfig()}
}

func NewEngineWithConfig(cfg AccrualConfig) *Engine {
	return &Engine{Config: cfg}
}

// ComputeEmployeeLeave enriches every raw record against the given as-of
// date, preserving input order and length. The input snapshot is treated
// as immutable; entirely new structures are returned.
func (e *Engine) ComputeEmployeeLeave(employees []EmployeeRaw, asOf Date) ([]EmployeeWithLeave, error) {
	out := make([]EmployeeWithLeave, 0, len(employees))
	for _, emp := range employees {
		enriched, err := e.computeOne(emp, asOf)
		if err != nil {
			return nil, fmt.Errorf("employee %s: %w", emp.ID, err)
		}
		out = append(out, enriched)
	}
	return out, nil
}

func (e *Engine) computeOne(emp EmployeeRaw, asOf Date) (EmployeeWithLeave, error) {
	hireDate, err := ParseDate(emp.HireDate)
	if err != nil {
		return EmployeeWithLeave{}, fmt.Errorf("hire date: %w", err)
	}
	for i, entry := range emp.LeaveTaken {
		if _, err := ParseDate(entry.Date); err != nil {
			return EmployeeWithLeave{}, fmt.Errorf("leave entry %d: %w", i, err)
		}
	}

	tenureDays := DiffInDays(hireDate, asOf)
	tenure := TenureComponents(hireDate, asOf)
	fullMonths := FullMonthsBetween(hireDate, asOf)

	// Total accrual over the entire employment (no annual reset) plus the
	// manual starting balance. Full precision until the final rounding.
	accrued := e.Config.AccruedLeave(hireDate, asOf).Add(emp.StartingBalance)
	taken := SumLeaveTaken(emp.LeaveTaken)
	balance := accrued.Sub(taken)

	canUse := e.Config.IsEligible(fullMonths)
	available := decimal.Zero
	if canUse {
		available = balance
	}

	return EmployeeWithLeave{
		EmployeeRaw: emp,

		TenureDays:       tenureDays,
		TenureYears:      tenure.Years,
		TenureMonths:     tenure.Months,
		FullMonthsTenure: fullMonths,

		AccruedLeave:    accrued.Round(2),
		LeaveTakenTotal: taken.Round(2),
		LeaveBalance:    balance.Round(2),

		CanUseLeave:         canUse,
		AvailableLeaveToUse: available.Round(2),
	}, nil
}

// ComputeEmployeeLeave runs the default engine. Convenience for callers
// that never override the accrual configuration.
func ComputeEmployeeLeave(employees []EmployeeRaw, asOf Date) ([]EmployeeWithLeave, error) {
	return NewEngine().ComputeEmployeeLeave(employees, asOf)
}
