package leave

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// BALANCE AGGREGATION
// =============================================================================

// SumLeaveTaken returns the exact sum of every entry's Days. Entries are
// never filtered by date range or type: all historical entries count
// against the balance forever.
func SumLeaveTaken(entries []LeaveEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Days)
	}
	return total
}
