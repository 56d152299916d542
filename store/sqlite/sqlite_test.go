package sqlite_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/leave-tracker/leave"
	"github.com/warp/leave-tracker/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func saveTestEmployees(t *testing.T, store *sqlite.Store) {
	ctx := context.Background()
	require.NoError(t, store.SaveEmployee(ctx, leave.EmployeeRaw{
		ID:              "emp-1",
		FullName:        "First Person",
		Position:        "Manager",
		HireDate:        "2021-03-01",
		StartingBalance: decimal.RequireFromString("2.5"),
	}))
	require.NoError(t, store.SaveEmployee(ctx, leave.EmployeeRaw{
		ID:       "emp-2",
		FullName: "Second Person",
		HireDate: "2023-11-20",
	}))
}

// =============================================================================
// ROUND TRIPS
// =============================================================================

func TestStore_FetchEmployees_PreservesOrderAndDecimals(t *testing.T) {
	store := newTestStore(t)
	saveTestEmployees(t, store)

	employees, err := store.FetchEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 2)

	assert.Equal(t, "emp-1", employees[0].ID)
	assert.Equal(t, "emp-2", employees[1].ID)
	assert.Equal(t, "Manager", employees[0].Position)
	assert.True(t, employees[0].StartingBalance.Equal(decimal.RequireFromString("2.5")))
	assert.True(t, employees[1].StartingBalance.IsZero())
	assert.Empty(t, employees[0].LeaveTaken)
}

func TestStore_AppendLeave_GroupsInInsertionOrder(t *testing.T) {
	store := newTestStore(t)
	saveTestEmployees(t, store)
	ctx := context.Background()

	first := leave.LeaveEntry{Date: "2024-01-10", Days: decimal.NewFromInt(2), Type: "Annual", Note: "Trip"}
	second := leave.LeaveEntry{Date: "2024-02-05", Days: decimal.RequireFromString("0.5"), Type: "Sick"}
	require.NoError(t, store.AppendLeave(ctx, "emp-1", first))
	require.NoError(t, store.AppendLeave(ctx, "emp-1", second))

	employees, err := store.FetchEmployees(ctx)
	require.NoError(t, err)

	taken := employees[0].LeaveTaken
	require.Len(t, taken, 2)
	assert.Equal(t, "2024-01-10", taken[0].Date)
	assert.Equal(t, "Trip", taken[0].Note)
	assert.True(t, taken[1].Days.Equal(decimal.RequireFromString("0.5")))
	assert.Empty(t, employees[1].LeaveTaken)
}

// =============================================================================
// APPEND FAILURE MODES
// =============================================================================

func TestStore_AppendLeave_UnknownEmployee_WritesNothing(t *testing.T) {
	store := newTestStore(t)
	saveTestEmployees(t, store)
	ctx := context.Background()

	entry := leave.LeaveEntry{Date: "2024-01-10", Days: decimal.NewFromInt(1), Type: "Annual"}
	err := store.AppendLeave(ctx, "nobody", entry)
	assert.ErrorIs(t, err, leave.ErrEmployeeNotFound)

	employees, err := store.FetchEmployees(ctx)
	require.NoError(t, err)
	for _, emp := range employees {
		assert.Empty(t, emp.LeaveTaken)
	}
}

func TestStore_AppendLeave_RejectsInvalidEntry(t *testing.T) {
	store := newTestStore(t)
	saveTestEmployees(t, store)

	bad := leave.LeaveEntry{Date: "2024-01-10", Days: decimal.NewFromInt(-1), Type: "Annual"}
	err := store.AppendLeave(context.Background(), "emp-1", bad)
	assert.ErrorIs(t, err, leave.ErrInvalidEntry)
}

// =============================================================================
// INTEGRATION WITH THE ENGINE
// =============================================================================

func TestStore_SnapshotFeedsEngine(t *testing.T) {
	store := newTestStore(t)
	saveTestEmployees(t, store)
	ctx := context.Background()

	require.NoError(t, store.AppendLeave(ctx, "emp-1", leave.LeaveEntry{
		Date: "2023-06-01", Days: decimal.NewFromInt(3), Type: "Annual",
	}))

	employees, err := store.FetchEmployees(ctx)
	require.NoError(t, err)

	enriched, err := leave.ComputeEmployeeLeave(employees, leave.NewDate(2024, 3, 1))
	require.NoError(t, err)
	require.Len(t, enriched, 2)

	// emp-1: 36 full months x 0.83 + 2.5 starting - 3 taken
	assert.Equal(t, 36, enriched[0].FullMonthsTenure)
	assert.True(t, enriched[0].AccruedLeave.Equal(decimal.RequireFromString("32.38")))
	assert.True(t, enriched[0].LeaveBalance.Equal(decimal.RequireFromString("29.38")))
}
