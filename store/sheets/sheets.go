/*
Package sheets provides the Google Sheets implementation of leave.Source.

PURPOSE:

	The production record store is a Google spreadsheet maintained by the
	office: an Employees tab and a Leaves tab. This package reads both tabs
	into EmployeeRaw snapshots and appends new leave entries as rows.

SHEET LAYOUT:

	Employees!A2:E  id | fullName | position | hireDate | startingBalance
	Leaves!A2:E     employeeId | date | days | type | note

AUTHENTICATION:

	Service-account credentials, resolved in order from
	GOOGLE_SERVICE_ACCOUNT_JSON (inline), GOOGLE_SERVICE_ACCOUNT_FILE, or
	GOOGLE_APPLICATION_CREDENTIALS. The spreadsheet id comes from
	GOOGLE_SPREADSHEET_ID.

BEST-EFFORT ROW PARSING:

	Rows with a missing id or incomplete leave fields are skipped, matching
	how the sheet is actually edited by hand. Date validation is the
	engine's job and fails fast there.

SEE ALSO:
  - parse.go: Pure row-parsing helpers (unit tested without the API)
  - leave/store.go: Interface definition
*/
package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/warp/leave-tracker/leave"
	"google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

const (
	employeesRange    = "Employees!A2:E"
	leavesRange       = "Leaves!A2:E"
	leavesAppendRange = "Leaves!A:E"
)

// Client implements leave.Source against the Google Sheets API.
type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
}

var _ leave.Source = (*Client)(nil)

// NewFromEnv creates a Sheets client from environment variables.
// Required: GOOGLE_SPREADSHEET_ID plus service-account credentials.
func NewFromEnv(ctx context.Context) (*Client, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// newSheetsService initializes a Sheets service using service-account
// credentials from the environment.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	inlineJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	credFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if inlineJSON == "" && credFile == "" {
		credFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	switch {
	case inlineJSON != "":
		credentialsJSON = []byte(inlineJSON)
	case credFile != "":
		b, err := os.ReadFile(credFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		credentialsJSON = b
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	svc, err := gsheet.NewService(ctx,
		option.WithCredentialsJSON(credentialsJSON),
		option.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return svc, nil
}

// =============================================================================
// SOURCE IMPLEMENTATION
// =============================================================================

// FetchEmployees reads both tabs and groups leave rows per employee in
// sheet-append order.
func (c *Client) FetchEmployees(ctx context.Context) ([]leave.EmployeeRaw, error) {
	empResp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, employeesRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", employeesRange, err)
	}

	var employees []leave.EmployeeRaw
	index := make(map[string]int)
	for _, row := range empResp.Values {
		emp, ok := parseEmployeeRow(row)
		if !ok {
			continue
		}
		index[emp.ID] = len(employees)
		employees = append(employees, emp)
	}

	leavesResp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, leavesRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", leavesRange, err)
	}

	for _, row := range leavesResp.Values {
		employeeID, entry, ok := parseLeaveRow(row)
		if !ok {
			continue
		}
		if i, found := index[employeeID]; found {
			employees[i].LeaveTaken = append(employees[i].LeaveTaken, entry)
		}
	}

	return employees, nil
}

// AppendLeave verifies the employee exists in the Employees tab, then
// appends one row to the Leaves tab. An unknown id writes nothing.
func (c *Client) AppendLeave(ctx context.Context, employeeID string, entry leave.LeaveEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	empResp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, employeesRange).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("read %s: %w", employeesRange, err)
	}
	found := false
	for _, row := range empResp.Values {
		if emp, ok := parseEmployeeRow(row); ok && emp.ID == employeeID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%s: %w", employeeID, leave.ErrEmployeeNotFound)
	}

	vr := &gsheet.ValueRange{
		Values: [][]any{{employeeID, entry.Date, entry.Days.String(), entry.Type, entry.Note}},
	}
	_, err = c.svc.Spreadsheets.Values.Append(c.spreadsheetID, leavesAppendRange, vr).
		ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append to %s: %w", leavesAppendRange, err)
	}
	return nil
}
