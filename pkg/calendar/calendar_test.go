package calendar_test

import (
	"testing"

	"github.com/arnavshah/employee-scheduler-api/pkg/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestMonthGrid(t *testing.T) {
	// March 2025 starts on a Saturday and ends on a Monday.
	grid := calendar.MonthGrid(2025, 3)
	require.Len(t, grid, 6)

	assert.Equal(t, [7]int{0, 0, 0, 0, 0, 1, 2}, grid[0])
	assert.Equal(t, [7]int{3, 4, 5, 6, 7, 8, 9}, grid[1])
	assert.Equal(t, [7]int{31, 0, 0, 0, 0, 0, 0}, grid[5])
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, calendar.DaysInMonth(2024, 2))
	assert.Equal(t, 28, calendar.DaysInMonth(2025, 2))
	assert.Equal(t, 31, calendar.DaysInMonth(2025, 12))
}

func TestDaysToSchedule_FullMonth(t *testing.T) {
	days, err := calendar.DaysToSchedule(2024, 2, nil)
	require.NoError(t, err)
	require.Len(t, days, 29)
	assert.Equal(t, 1, days[0])
	assert.Equal(t, 29, days[28])
}

func TestDaysToSchedule_Week(t *testing.T) {
	days, err := calendar.DaysToSchedule(2025, 3, intp(0))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, days)

	days, err = calendar.DaysToSchedule(2025, 3, intp(2))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11, 12, 13, 14, 15, 16}, days)

	days, err = calendar.DaysToSchedule(2025, 3, intp(5))
	require.NoError(t, err)
	assert.Equal(t, []int{31}, days)
}

func TestDaysToSchedule_InvalidWeek(t *testing.T) {
	_, err := calendar.DaysToSchedule(2025, 3, intp(6))
	assert.ErrorIs(t, err, calendar.ErrInvalidPeriod)

	_, err = calendar.DaysToSchedule(2025, 3, intp(-1))
	assert.ErrorIs(t, err, calendar.ErrInvalidPeriod)
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "Saturday", calendar.WeekdayName(2025, 3, 1))
	assert.Equal(t, "Monday", calendar.WeekdayName(2025, 3, 31))
}
