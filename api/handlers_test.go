package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/leave-tracker/api"
	"github.com/warp/leave-tracker/leave"
	"github.com/warp/leave-tracker/leave/store"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestServer(t *testing.T) (*httptest.Server, *store.Memory) {
	source := store.NewMemory(
		leave.EmployeeRaw{
			ID:         "emp-1",
			FullName:   "Eligible Employee",
			Position:   "Manager",
			HireDate:   "2023-01-15",
			LeaveTaken: []leave.LeaveEntry{},
		},
		leave.EmployeeRaw{
			ID:              "emp-2",
			FullName:        "New Hire",
			HireDate:        "2024-05-01",
			StartingBalance: decimal.NewFromInt(3),
			LeaveTaken:      []leave.LeaveEntry{},
		},
	)

	server := httptest.NewServer(api.NewRouter(api.NewHandler(source)))
	t.Cleanup(server.Close)
	return server, source
}

func getJSON(t *testing.T, url string, out any) int {
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, url string, body any, out any) int {
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// =============================================================================
// LIST EMPLOYEES
// =============================================================================

func TestListEmployees_WithExplicitAsOf(t *testing.T) {
	server, _ := newTestServer(t)

	var employees []api.EmployeeLeaveDTO
	status := getJSON(t, server.URL+"/api/employees?as_of=2023-07-15", &employees)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, employees, 2)

	// emp-1: exactly six full months of tenure on 2023-07-15
	got := employees[0]
	assert.Equal(t, "emp-1", got.ID)
	assert.Equal(t, 6, got.FullMonthsTenure)
	assert.True(t, got.CanUseLeave)
	assert.InDelta(t, 4.98, got.AccruedLeave, 0.001)
	assert.InDelta(t, 4.98, got.AvailableLeaveToUse, 0.001)

	// emp-2: not hired yet as of that date; zero tenure, gate closed
	assert.Equal(t, "emp-2", employees[1].ID)
	assert.Equal(t, 0, employees[1].TenureDays)
	assert.False(t, employees[1].CanUseLeave)
	assert.InDelta(t, 0.0, employees[1].AvailableLeaveToUse, 0.001)
}

func TestListEmployees_BadAsOf(t *testing.T) {
	server, _ := newTestServer(t)

	var errResp api.ErrorResponse
	status := getJSON(t, server.URL+"/api/employees?as_of=15-07-2023", &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, errResp.Error)
}

func TestListEmployees_DefaultsToToday(t *testing.T) {
	server, _ := newTestServer(t)

	var employees []api.EmployeeLeaveDTO
	status := getJSON(t, server.URL+"/api/employees", &employees)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, employees, 2)
}

// =============================================================================
// GET EMPLOYEE
// =============================================================================

func TestGetEmployee(t *testing.T) {
	server, _ := newTestServer(t)

	var got api.EmployeeLeaveDTO
	status := getJSON(t, server.URL+"/api/employees/emp-2?as_of=2024-12-01", &got)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "New Hire", got.FullName)
	assert.Equal(t, 7, got.FullMonthsTenure)
	assert.True(t, got.CanUseLeave)
}

func TestGetEmployee_NotFound(t *testing.T) {
	server, _ := newTestServer(t)

	status := getJSON(t, server.URL+"/api/employees/nobody", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

// =============================================================================
// ADD LEAVE
// =============================================================================

func TestAddLeave_RecomputesAllBalances(t *testing.T) {
	server, source := newTestServer(t)

	days := 1.5
	var resp api.AddLeaveResponse
	status := postJSON(t, server.URL+"/api/employees/emp-1/leave", api.AddLeaveRequest{
		Date: "2024-03-04",
		Days: &days,
		Type: "Annual",
		Note: "Long weekend",
	}, &resp)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, resp.Employees, 2)

	got := resp.Employees[0]
	require.Len(t, got.LeaveTaken, 1)
	assert.Equal(t, "2024-03-04", got.LeaveTaken[0].Date)
	assert.InDelta(t, 1.5, got.LeaveTakenTotal, 0.001)

	// The entry is durably in the store, not just in the response.
	employees, err := source.FetchEmployees(context.Background())
	require.NoError(t, err)
	assert.Len(t, employees[0].LeaveTaken, 1)
}

func TestAddLeave_MissingFields(t *testing.T) {
	server, _ := newTestServer(t)
	days := 1.0

	cases := []api.AddLeaveRequest{
		{Days: &days, Type: "Annual"},        // no date
		{Date: "2024-03-04", Type: "Annual"}, // no days
		{Date: "2024-03-04", Days: &days},    // no type
	}
	for i, req := range cases {
		status := postJSON(t, server.URL+"/api/employees/emp-1/leave", req, nil)
		assert.Equal(t, http.StatusBadRequest, status, "case %d", i)
	}
}

func TestAddLeave_NonPositiveDays(t *testing.T) {
	server, _ := newTestServer(t)

	for _, days := range []float64{0, -2} {
		d := days
		status := postJSON(t, server.URL+"/api/employees/emp-1/leave", api.AddLeaveRequest{
			Date: "2024-03-04",
			Days: &d,
			Type: "Annual",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, status, "days=%v", days)
	}
}

func TestAddLeave_BadDate(t *testing.T) {
	server, _ := newTestServer(t)
	days := 1.0

	var errResp api.ErrorResponse
	status := postJSON(t, server.URL+"/api/employees/emp-1/leave", api.AddLeaveRequest{
		Date: "2024-02-30",
		Days: &days,
		Type: "Annual",
	}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAddLeave_UnknownEmployee_NothingChanges(t *testing.T) {
	server, source := newTestServer(t)
	days := 1.0

	status := postJSON(t, server.URL+"/api/employees/nobody/leave", api.AddLeaveRequest{
		Date: "2024-03-04",
		Days: &days,
		Type: "Annual",
	}, nil)
	assert.Equal(t, http.StatusNotFound, status)

	employees, err := source.FetchEmployees(context.Background())
	require.NoError(t, err)
	for _, emp := range employees {
		assert.Empty(t, emp.LeaveTaken, "failed append must not touch stored data")
	}
}
