/*
Package sqlite provides a SQLite-backed implementation of leave.Source.

PURPOSE:

	Keeps employee records and their leave entries in SQLite for
	deployments that do not use the Google Sheets store. The same patterns
	apply to PostgreSQL - only minor SQL dialect differences.

APPEND-ONLY ENFORCEMENT:

	leave_entries is append-only: no UPDATE or DELETE statements exist.
	Balances are never stored; they are always derived fresh by the engine.

KEY TABLES:

	employees:     Source-of-truth employee records
	leave_entries: Recorded leave events, insertion order = append order

DECIMALS:

	Day counts and starting balances are stored as TEXT and parsed with
	shopspring/decimal, never as floating point.

WAL MODE:

	SQLite is opened with WAL (Write-Ahead Logging) for better concurrency.

USAGE:

	store, err := sqlite.New("./data/leave.db")
	if err != nil {
	    log.Fatal(err)
	}
	defer store.Close()

MIGRATION:

	Schema is auto-migrated on New(). For production, use a proper
	migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - leave/store.go: Interface definition
  - store/sheets: Google Sheets implementation
  - leave/store: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"github.com/warp/leave-tracker/leave"
)

// Store implements leave.Source using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ leave.Source = (*Store)(nil)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		position TEXT NOT NULL DEFAULT '',
		hire_date TEXT NOT NULL,
		starting_balance TEXT NOT NULL DEFAULT '0',
		created_at TEXT NOT NULL
	);

	-- Append-only: leave entries are never mutated or deleted
	CREATE TABLE IF NOT EXISTS leave_entries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id TEXT NOT NULL REFERENCES employees(id),
		date TEXT NOT NULL,
		days TEXT NOT NULL,
		type TEXT NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_leave_entries_employee
		ON leave_entries(employee_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// EMPLOYEES
// =============================================================================

// SaveEmployee inserts or replaces an employee record. Leave entries are
// not touched; they live in their own append-only table.
func (s *Store) SaveEmployee(ctx context.Context, emp leave.EmployeeRaw) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO employees (id, full_name, position, hire_date, starting_balance, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		emp.ID, emp.FullName, emp.Position, emp.HireDate,
		emp.StartingBalance.String(), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save employee %s: %w", emp.ID, err)
	}
	return nil
}

// FetchEmployees returns all employees with their leave entries grouped in
// insertion order.
func (s *Store) FetchEmployees(ctx context.Context) ([]leave.EmployeeRaw, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, full_name, position, hire_date, starting_balance
		FROM employees ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []leave.EmployeeRaw
	index := make(map[string]int)
	for rows.Next() {
		var emp leave.EmployeeRaw
		var balance string
		if err := rows.Scan(&emp.ID, &emp.FullName, &emp.Position, &emp.HireDate, &balance); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		emp.StartingBalance, err = decimal.NewFromString(balance)
		if err != nil {
			return nil, fmt.Errorf("employee %s: bad starting_balance %q: %w", emp.ID, balance, err)
		}
		emp.LeaveTaken = []leave.LeaveEntry{}
		index[emp.ID] = len(employees)
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	entryRows, err := s.db.QueryContext(ctx, `
		SELECT employee_id, date, days, type, note
		FROM leave_entries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave entries: %w", err)
	}
	defer entryRows.Close()

	for entryRows.Next() {
		var employeeID, days string
		var entry leave.LeaveEntry
		if err := entryRows.Scan(&employeeID, &entry.Date, &days, &entry.Type, &entry.Note); err != nil {
			return nil, fmt.Errorf("failed to scan leave entry: %w", err)
		}
		entry.Days, err = decimal.NewFromString(days)
		if err != nil {
			return nil, fmt.Errorf("leave entry for %s: bad days %q: %w", employeeID, days, err)
		}
		if i, ok := index[employeeID]; ok {
			employees[i].LeaveTaken = append(employees[i].LeaveTaken, entry)
		}
	}
	if err := entryRows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// =============================================================================
// LEAVE ENTRIES (append-only)
// =============================================================================

// AppendLeave records one leave entry. The employee lookup and the insert
// run in a single transaction so an unknown id can never leave a row
// behind.
func (s *Store) AppendLeave(ctx context.Context, employeeID string, entry leave.LeaveEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM employees WHERE id = ?`, employeeID).Scan(&one)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%s: %w", employeeID, leave.ErrEmployeeNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to look up employee %s: %w", employeeID, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO leave_entries (employee_id, date, days, type, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		employeeID, entry.Date, entry.Days.String(), entry.Type, entry.Note,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to append leave entry: %w", err)
	}

	return tx.Commit()
}
