/*
handlers.go - HTTP API handlers for the leave tracker

PURPOSE:

	Exposes the leave engine via REST API. Handles HTTP request/response,
	JSON serialization, and delegates to domain logic.

ENDPOINTS:

	GET    /api/employees              List all employees with balances
	GET    /api/employees/{id}         Single employee with balances
	POST   /api/employees/{id}/leave   Record a leave entry, recompute

REQUEST FLOW:
 1. Parse HTTP request (optional as_of override for reproducibility)
 2. Validate input before any mutation
 3. Fetch the raw snapshot from the record store
 4. Run the engine against an explicit as-of date
 5. Serialize response

ERROR HANDLING:

	Errors are returned as JSON with appropriate HTTP status:
	- 400: Validation errors, invalid input
	- 404: Employee not found
	- 500: Store or computation failures

SECURITY NOTE:

	No authentication middleware currently. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/warp/leave-tracker/leave"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Source leave.Source
	Engine *leave.Engine
}

// NewHandler creates a new handler backed by the given record store.
func NewHandler(source leave.Source) *Handler {
	return &Handler{
		Source: source,
		Engine: leave.NewEngine(),
	}
}

// asOf resolves the evaluation date for a request. The engine requires an
// explicit date; this is the one place the live current date enters, and
// an as_of query parameter overrides it for reproducible responses.
func asOf(r *http.Request) (leave.Date, error) {
	if raw := r.URL.Query().Get("as_of"); raw != "" {
		return leave.ParseDate(raw)
	}
	return leave.Today(), nil
}

// =============================================================================
// EMPLOYEE HANDLERS
// =============================================================================

// ListEmployees returns every employee enriched with leave balances.
// GET /api/employees[?as_of=YYYY-MM-DD]
func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	date, err := asOf(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid as_of date (use YYYY-MM-DD)", err)
		return
	}

	employees, err := h.Source.FetchEmployees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load employees", err)
		return
	}

	enriched, err := h.Engine.ComputeEmployeeLeave(employees, date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to compute leave balances", err)
		return
	}

	writeJSON(w, http.StatusOK, toEmployeeLeaveDTOs(enriched))
}

// GetEmployee returns a single enriched employee.
// GET /api/employees/{id}[?as_of=YYYY-MM-DD]
func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	date, err := asOf(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid as_of date (use YYYY-MM-DD)", err)
		return
	}

	employees, err := h.Source.FetchEmployees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load employees", err)
		return
	}

	enriched, err := h.Engine.ComputeEmployeeLeave(employees, date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to compute leave balances", err)
		return
	}

	for _, e := range enriched {
		if e.ID == id {
			writeJSON(w, http.StatusOK, toEmployeeLeaveDTO(e))
			return
		}
	}
	writeError(w, http.StatusNotFound, "Employee not found", nil)
}

// =============================================================================
// LEAVE APPEND HANDLER
// =============================================================================

// AddLeave validates and records one leave entry, then returns the fully
// recomputed employee list.
// POST /api/employees/{id}/leave
func (h *Handler) AddLeave(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req AddLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Date == "" || req.Days == nil || req.Type == "" {
		writeError(w, http.StatusBadRequest, "date, days, and type are required", nil)
		return
	}

	entry := leave.LeaveEntry{
		Date: req.Date,
		Days: decimal.NewFromFloat(*req.Days),
		Type: req.Type,
		Note: req.Note,
	}
	if err := entry.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid leave entry", err)
		return
	}

	ctx := r.Context()
	if err := h.Source.AppendLeave(ctx, id, entry); err != nil {
		switch {
		case leave.IsNotFound(err):
			writeError(w, http.StatusNotFound, "Employee not found", err)
		case leave.IsClientError(err):
			writeError(w, http.StatusBadRequest, "Invalid leave entry", err)
		default:
			writeError(w, http.StatusInternalServerError, "Failed to record leave entry", err)
		}
		return
	}

	// Reload the full snapshot and recompute every balance.
	employees, err := h.Source.FetchEmployees(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reload employees", err)
		return
	}
	enriched, err := h.Engine.ComputeEmployeeLeave(employees, leave.Today())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to compute leave balances", err)
		return
	}

	writeJSON(w, http.StatusOK, AddLeaveResponse{Employees: toEmployeeLeaveDTOs(enriched)})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
