/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:

	Defines the JSON structures for API communication. These types decouple
	the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

WIRE CONTRACT:

	Field names are camelCase (fullName, accruedLeave, ...) because the
	browser UI consuming this API predates the Go rewrite and its contract
	is preserved verbatim.

VALIDATION:

	Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - leave/types.go: The domain types these mirror
*/
package api

import (
	"github.com/warp/leave-tracker/leave"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// LeaveEntryDTO represents one recorded leave event.
type LeaveEntryDTO struct {
	Date string  `json:"date"`
	Days float64 `json:"days"`
	Type string  `json:"type"`
	Note string  `json:"note,omitempty"`
}

// EmployeeLeaveDTO is an employee with every derived leave field.
type EmployeeLeaveDTO struct {
	ID              string          `json:"id"`
	FullName        string          `json:"fullName"`
	Position        string          `json:"position"`
	HireDate        string          `json:"hireDate"`
	StartingBalance float64         `json:"startingBalance"`
	LeaveTaken      []LeaveEntryDTO `json:"leaveTaken"`

	TenureDays   int `json:"tenureDays"`
	TenureYears  int `json:"tenureYears"`
	TenureMonths int `json:"tenureMonths"`

	AccruedLeave    float64 `json:"accruedLeave"`
	LeaveTakenTotal float64 `json:"leaveTakenTotal"`
	LeaveBalance    float64 `json:"leaveBalance"`

	FullMonthsTenure    int     `json:"fullMonthsTenure"`
	CanUseLeave         bool    `json:"canUseLeave"`
	AvailableLeaveToUse float64 `json:"availableLeaveToUse"`
}

// AddLeaveRequest is the body of POST /api/employees/{id}/leave.
// Days is a pointer so a missing field is distinguishable from zero.
type AddLeaveRequest struct {
	Date string   `json:"date"`
	Days *float64 `json:"days"`
	Type string   `json:"type"`
	Note string   `json:"note"`
}

// AddLeaveResponse returns the full recomputed employee list after an
// append, matching the original UI contract.
type AddLeaveResponse struct {
	Employees []EmployeeLeaveDTO `json:"employees"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toLeaveEntryDTO(e leave.LeaveEntry) LeaveEntryDTO {
	days, _ := e.Days.Float64()
	return LeaveEntryDTO{
		Date: e.Date,
		Days: days,
		Type: e.Type,
		Note: e.Note,
	}
}

func toEmployeeLeaveDTO(e leave.EmployeeWithLeave) EmployeeLeaveDTO {
	startingBalance, _ := e.StartingBalance.Float64()
	accrued, _ := e.AccruedLeave.Float64()
	taken, _ := e.LeaveTakenTotal.Float64()
	balance, _ := e.LeaveBalance.Float64()
	available, _ := e.AvailableLeaveToUse.Float64()

	entries := make([]LeaveEntryDTO, len(e.LeaveTaken))
	for i, entry := range e.LeaveTaken {
		entries[i] = toLeaveEntryDTO(entry)
	}

	return EmployeeLeaveDTO{
		ID:              e.ID,
		FullName:        e.FullName,
		Position:        e.Position,
		HireDate:        e.HireDate,
		StartingBalance: startingBalance,
		LeaveTaken:      entries,

		TenureDays:   e.TenureDays,
		TenureYears:  e.TenureYears,
		TenureMonths: e.TenureMonths,

		AccruedLeave:    accrued,
		LeaveTakenTotal: taken,
		LeaveBalance:    balance,

		FullMonthsTenure:    e.FullMonthsTenure,
		CanUseLeave:         e.CanUseLeave,
		AvailableLeaveToUse: available,
	}
}

func toEmployeeLeaveDTOs(employees []leave.EmployeeWithLeave) []EmployeeLeaveDTO {
	dtos := make([]EmployeeLeaveDTO, len(employees))
	for i, e := range employees {
		dtos[i] = toEmployeeLeaveDTO(e)
	}
	return dtos
}
