package sheets

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/warp/leave-tracker/leave"
)

// =============================================================================
// ROW PARSING - Pure helpers, kept API-free for unit testing
// =============================================================================

// parseEmployeeRow maps one Employees row (id, fullName, position,
// hireDate, startingBalance) to an EmployeeRaw. Rows without an id are
// skipped. A missing or unparseable starting balance reads as 0.
func parseEmployeeRow(row []any) (leave.EmployeeRaw, bool) {
	id := cellString(row, 0)
	if id == "" {
		return leave.EmployeeRaw{}, false
	}

	balance := decimal.Zero
	if raw := cellString(row, 4); raw != "" {
		if d, ok := cellDecimal(raw); ok {
			balance = d
		}
	}

	return leave.EmployeeRaw{
		ID:              id,
		FullName:        cellString(row, 1),
		Position:        cellString(row, 2),
		HireDate:        cellString(row, 3),
		StartingBalance: balance,
		LeaveTaken:      []leave.LeaveEntry{},
	}, true
}

// parseLeaveRow maps one Leaves row (employeeId, date, days, type, note).
// Rows missing any of the required fields are skipped, matching the
// hand-edited nature of the sheet.
func parseLeaveRow(row []any) (string, leave.LeaveEntry, bool) {
	employeeID := cellString(row, 0)
	date := cellString(row, 1)
	daysRaw := cellString(row, 2)
	entryType := cellString(row, 3)
	if employeeID == "" || date == "" || daysRaw == "" || entryType == "" {
		return "", leave.LeaveEntry{}, false
	}

	days, ok := cellDecimal(daysRaw)
	if !ok {
		return "", leave.LeaveEntry{}, false
	}

	return employeeID, leave.LeaveEntry{
		Date: date,
		Days: days,
		Type: entryType,
		Note: cellString(row, 4),
	}, true
}

func cellString(row []any, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[i]))
}

// cellDecimal parses a numeric cell, normalizing a decimal comma.
func cellDecimal(s string) (decimal.Decimal, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
