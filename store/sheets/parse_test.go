package sheets

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmployeeRow(t *testing.T) {
	emp, ok := parseEmployeeRow([]any{"emp-1", "Maeve Noonan", "Office Manager", "2021-03-01", "5"})
	require.True(t, ok)
	assert.Equal(t, "emp-1", emp.ID)
	assert.Equal(t, "Maeve Noonan", emp.FullName)
	assert.Equal(t, "Office Manager", emp.Position)
	assert.Equal(t, "2021-03-01", emp.HireDate)
	assert.True(t, emp.StartingBalance.Equal(decimal.NewFromInt(5)))
	assert.NotNil(t, emp.LeaveTaken)
}

func TestParseEmployeeRow_ShortRow_BalanceDefaultsToZero(t *testing.T) {
	emp, ok := parseEmployeeRow([]any{"emp-2", "Tomás Byrne", "Technician", "2023-11-20"})
	require.True(t, ok)
	assert.True(t, emp.StartingBalance.IsZero())
}

func TestParseEmployeeRow_EmptyID_Skipped(t *testing.T) {
	_, ok := parseEmployeeRow([]any{"", "Ghost", "None", "2020-01-01", "0"})
	assert.False(t, ok)

	_, ok = parseEmployeeRow([]any{})
	assert.False(t, ok)
}

func TestParseLeaveRow(t *testing.T) {
	id, entry, ok := parseLeaveRow([]any{"emp-1", "2023-08-14", "2.5", "Annual", "Summer"})
	require.True(t, ok)
	assert.Equal(t, "emp-1", id)
	assert.Equal(t, "2023-08-14", entry.Date)
	assert.True(t, entry.Days.Equal(decimal.RequireFromString("2.5")))
	assert.Equal(t, "Annual", entry.Type)
	assert.Equal(t, "Summer", entry.Note)
}

func TestParseLeaveRow_IncompleteRows_Skipped(t *testing.T) {
	cases := [][]any{
		{},
		{"emp-1"},
		{"emp-1", "2023-08-14"},
		{"emp-1", "2023-08-14", "2"},           // missing type
		{"", "2023-08-14", "2", "Annual"},      // missing employee id
		{"emp-1", "2023-08-14", "x", "Annual"}, // unparseable days
	}
	for i, row := range cases {
		_, _, ok := parseLeaveRow(row)
		assert.False(t, ok, "case %d", i)
	}
}

func TestParseLeaveRow_NoteOptional(t *testing.T) {
	_, entry, ok := parseLeaveRow([]any{"emp-1", "2023-08-14", "1", "Sick"})
	require.True(t, ok)
	assert.Empty(t, entry.Note)
}

func TestCellDecimal_NormalizesComma(t *testing.T) {
	d, ok := cellDecimal(" 1,5 ")
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.RequireFromString("1.5")))
}

func TestCellDecimal_SheetNumericCell(t *testing.T) {
	// The Sheets API can hand back numbers as float-typed cells.
	d, ok := cellDecimal(cellString([]any{float64(3)}, 0))
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.NewFromInt(3)))
}
