package database_test

import (
	"testing"

	"github.com/arnavshah/employee-scheduler-api/pkg/database"
	"github.com/arnavshah/employee-scheduler-api/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleCodecRoundTrip(t *testing.T) {
	schedule := models.Schedule{
		1:  {"Morning": {"A", "B"}},
		15: {"Evening": {models.NoAvailableEmployee}},
	}

	var saved database.SavedSchedule
	require.NoError(t, saved.SetSchedule(schedule))

	// Day keys are persisted as strings.
	assert.Contains(t, saved.ScheduleData, `"15"`)

	loaded, err := saved.GetSchedule()
	require.NoError(t, err)
	assert.Equal(t, schedule, loaded)
}

func TestEmployeesCodecRoundTrip(t *testing.T) {
	employees := []models.Employee{
		{Name: "A", Mandatory: []models.DateShift{{Date: "2025-03-01", Shift: "Morning"}}},
	}

	var saved database.SavedSchedule
	require.NoError(t, saved.SetEmployees(employees))

	loaded, err := saved.GetEmployees()
	require.NoError(t, err)
	assert.Equal(t, employees, loaded)
}

func TestNewInviteCode(t *testing.T) {
	code := database.NewInviteCode()
	assert.Len(t, code, 8)
	for _, r := range code {
		assert.True(t, (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'), "unexpected rune %q", r)
	}
}
