package export_test

import (
	"strings"
	"testing"

	"github.com/arnavshah/employee-scheduler-api/pkg/export"
	"github.com/arnavshah/employee-scheduler-api/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleCSV(t *testing.T) {
	schedule := models.Schedule{
		2: {"Morning": {"A", "B"}, "Evening": {models.NoAvailableEmployee}},
		1: {"Morning": {"C"}},
	}

	out, err := export.ScheduleCSV(schedule, []string{"Morning", "Evening"}, 2025, 3)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Date,Day,Shift,Employees", lines[0])
	// Days ascend, shifts keep declared order.
	assert.Equal(t, "2025-03-01,Saturday,Morning,C", lines[1])
	assert.Equal(t, `2025-03-02,Sunday,Morning,"A, B"`, lines[2])
	assert.Equal(t, "2025-03-02,Sunday,Evening,No Available Employee", lines[3])
}

func TestScheduleHTML(t *testing.T) {
	schedule := models.Schedule{
		3: {"Morning": {"A"}},
	}
	employees := []models.Employee{
		{Name: "A", Unavailable: []models.DateShift{{Date: "2025-03-04", Shift: "Evening"}}},
		{Name: "B"},
	}

	out, err := export.ScheduleHTML(schedule, []string{"Morning"}, employees, 2025, 3)
	require.NoError(t, err)

	assert.Contains(t, out, "Work Schedule - March 2025")
	assert.Contains(t, out, `<div class="day-number">3</div>`)
	assert.Contains(t, out, "Morning:")
	assert.Contains(t, out, "2025-03-04 - Evening")
	// Constraint-free employees still show in the appendix.
	assert.Contains(t, out, "<h3>B</h3>")
}

func TestEmployeesCSVRoundTrip(t *testing.T) {
	employees := []models.Employee{
		{
			Name:        "Alice",
			Unavailable: []models.DateShift{{Date: "2025-03-10", Shift: "Morning"}},
			Mandatory: []models.DateShift{
				{Date: "2025-03-11", Shift: "Evening"},
				{Date: "2025-03-12", Shift: "Evening"},
			},
		},
		{Name: "Bob"},
	}

	out, err := export.EmployeesCSV(employees)
	require.NoError(t, err)
	assert.Contains(t, out, "2025-03-11|Evening;2025-03-12|Evening")

	parsed, err := export.ParseEmployeesCSV(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, employees, parsed)
}

func TestParseEmployeesCSV_SkipsBadRows(t *testing.T) {
	in := strings.Join([]string{
		"Name,Unavailable Dates,Mandatory Dates",
		"Alice,not-a-date|Morning;2025-03-10|Evening,",
		",2025-03-01|Morning,",
		"Alice,,",
	}, "\n")

	parsed, err := export.ParseEmployeesCSV(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, "Alice", parsed[0].Name)
	require.Len(t, parsed[0].Unavailable, 1)
	assert.Equal(t, "2025-03-10", parsed[0].Unavailable[0].Date)
}

func TestParseEmployeesCSV_MissingNameColumn(t *testing.T) {
	_, err := export.ParseEmployeesCSV(strings.NewReader("Employee,Dates\nAlice,"))
	assert.ErrorIs(t, err, export.ErrMissingNameColumn)
}
