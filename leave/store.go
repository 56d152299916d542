package leave

import (
	"context"
)

// =============================================================================
// SOURCE INTERFACE - What the engine needs from a record store
// =============================================================================

// Source supplies the raw employee snapshot and accepts new leave entries.
// Implementations: store/sheets (Google Sheets, the production store),
// store/sqlite, and leave/store (in-memory, for dev and tests).
type Source interface {
	// FetchEmployees returns a full snapshot of every employee with their
	// leave entries in append order. The engine treats the snapshot as
	// immutable for the duration of one computation.
	FetchEmployees(ctx context.Context) ([]EmployeeRaw, error)

	// AppendLeave records one leave entry for an employee. It must fail
	// with ErrEmployeeNotFound for an unknown id without writing anything,
	// and must reject invalid entries before any mutation.
	AppendLeave(ctx context.Context, employeeID string, entry LeaveEntry) error
}
