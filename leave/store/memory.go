// Package store provides an in-memory leave.Source implementation.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/warp/leave-tracker/leave"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu        sync.RWMutex
	employees []leave.EmployeeRaw
}

var _ leave.Source = (*Memory)(nil)

func NewMemory(seed ...leave.EmployeeRaw) *Memory {
	m := &Memory{}
	m.employees = append(m.employees, seed...)
	return m
}

// FetchEmployees returns a deep copy so callers can never mutate the
// stored records through a returned snapshot.
func (m *Memory) FetchEmployees(_ context.Context) ([]leave.EmployeeRaw, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]leave.EmployeeRaw, len(m.employees))
	for i, emp := range m.employees {
		out[i] = emp
		out[i].LeaveTaken = append([]leave.LeaveEntry(nil), emp.LeaveTaken...)
	}
	return out, nil
}

// AppendLeave validates the entry, then appends it to the matching
// employee. Unknown ids fail without touching any record.
func (m *Memory) AppendLeave(_ context.Context, employeeID string, entry leave.LeaveEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.employees {
		if m.employees[i].ID == employeeID {
			m.employees[i].LeaveTaken = append(m.employees[i].LeaveTaken, entry)
			return nil
		}
	}
	return fmt.Errorf("%s: %w", employeeID, leave.ErrEmployeeNotFound)
}

// =============================================================================
// DEMO SEED - Small realistic data set for -backend=memory
// =============================================================================

func DemoEmployees() []leave.EmployeeRaw {
	return []leave.EmployeeRaw{
		{
			ID:              "emp-001",
			FullName:        "Maeve Noonan",
			Position:        "Office Manager",
			HireDate:        "2021-03-01",
			StartingBalance: decimal.NewFromInt(5),
			LeaveTaken: []leave.LeaveEntry{
				{Date: "2023-08-14", Days: decimal.NewFromInt(5), Type: "Annual", Note: "Summer break"},
				{Date: "2024-01-03", Days: decimal.RequireFromString("0.5"), Type: "Sick"},
			},
		},
		{
			ID:              "emp-002",
			FullName:        "Tomás Byrne",
			Position:        "Technician",
			HireDate:        "2023-11-20",
			StartingBalance: decimal.Zero,
			LeaveTaken:      []leave.LeaveEntry{},
		},
		{
			ID:              "emp-003",
			FullName:        "Aoife Kelly",
			Position:        "Accounts",
			HireDate:        "2019-06-10",
			StartingBalance: decimal.NewFromInt(-2),
			LeaveTaken: []leave.LeaveEntry{
				{Date: "2022-12-23", Days: decimal.NewFromInt(3), Type: "Annual"},
				{Date: "2023-05-02", Days: decimal.NewFromInt(2), Type: "Unpaid", Note: "Family"},
			},
		},
	}
}
