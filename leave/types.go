/*
Package leave provides the core leave accrual and eligibility engine.

PURPOSE:

	This package contains the domain logic for tracking employee paid-leave
	balances: tenure computation, monthly accrual, the six-month eligibility
	gate, and the balance aggregation that nets leave taken against leave
	accrued. Everything else in the repository (HTTP handlers, spreadsheet
	and SQLite stores) is thin plumbing around this package.

KEY CONCEPTS IN THIS FILE (types.go):
  - LeaveEntry: One recorded leave event, immutable once recorded
  - EmployeeRaw: The source-of-truth record supplied by the record store
  - EmployeeWithLeave: EmployeeRaw enriched with derived balance fields

DESIGN PRINCIPLES:
 1. Purity: Derived fields are recomputed from scratch on every read;
    nothing in this package performs I/O or holds state between calls
 2. Precision: Uses decimal.Decimal to avoid floating-point errors;
    rounding to 2 decimals happens once, at the output boundary
 3. Explicit time: The as-of date is always a parameter, never time.Now()

USAGE:

	engine := leave.NewEngine()
	enriched, err := engine.ComputeEmployeeLeave(employees, leave.Today())

SEE ALSO:
  - engine.go: The transformer composing the calculations
  - accrual.go: Accrual rate and eligibility configuration
  - store.go: The Source interface record stores implement
*/
package leave

import (
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// LEAVE ENTRY - One recorded leave event
// =============================================================================

// LeaveEntry is a single leave event taken by an employee. Entries are
// append-only: once recorded they are never mutated or deleted.
type LeaveEntry struct {
	Date string // Calendar date in YYYY-MM-DD form
	Days decimal.Decimal
	Type string // Free-form category label (Annual, Sick, Unpaid, ...)
	Note string // Optional free text
}

// Validate checks that an entry is well-formed before it is recorded.
// It must pass before any store mutation happens.
func (e LeaveEntry) Validate() error {
	if _, err := ParseDate(e.Date); err != nil {
		return &InvalidEntryError{Field: "date", Reason: err.Error()}
	}
	if !e.Days.IsPositive() {
		return &InvalidEntryError{Field: "days", Reason: "must be a positive number"}
	}
	if strings.TrimSpace(e.Type) == "" {
		return &InvalidEntryError{Field: "type", Reason: "must not be empty"}
	}
	return nil
}

// =============================================================================
// EMPLOYEE RECORDS
// =============================================================================

// EmployeeRaw is the source-of-truth record as supplied by the record store.
// The engine never persists it; the store owns it entirely.
type EmployeeRaw struct {
	ID       string
	FullName string
	Position string
	HireDate string // YYYY-MM-DD

	// StartingBalance is a manual credit/debit baseline independent of
	// accrual (e.g. an initial credit granted at migration time).
	StartingBalance decimal.Decimal

	// LeaveTaken holds entries in sheet-append order. The order carries
	// no meaning; only the sum of Days does.
	LeaveTaken []LeaveEntry
}

// EmployeeWithLeave is an EmployeeRaw plus derived fields. Instances exist
// only for the duration of a single response and are never cached.
type EmployeeWithLeave struct {
	EmployeeRaw

	// Display-only tenure breakdown from hire date to the as-of date.
	TenureDays   int
	TenureYears  int
	TenureMonths int

	// FullMonthsTenure is the whole-calendar-months count backing both
	// accrual and the eligibility gate.
	FullMonthsTenure int

	// Money-like outputs, rounded to 2 decimals.
	AccruedLeave    decimal.Decimal // total accrual + starting balance
	LeaveTakenTotal decimal.Decimal
	LeaveBalance    decimal.Decimal // may be negative (over-drawn)

	CanUseLeave         bool
	AvailableLeaveToUse decimal.Decimal // LeaveBalance if eligible, else 0
}
