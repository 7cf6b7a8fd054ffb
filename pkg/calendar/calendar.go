package calendar

import (
	"errors"
	"time"
)

// ErrInvalidPeriod is returned when a week index has no row in the month grid.
var ErrInvalidPeriod = errors.New("invalid period: week index out of range")

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthGrid builds the weekday-aligned grid for a month: one row per week,
// seven cells per row, Monday first. Cells outside the month are 0.
func MonthGrid(year, month int) [][7]int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// time.Weekday counts from Sunday; shift so Monday is column 0.
	offset := (int(first.Weekday()) + 6) % 7
	days := DaysInMonth(year, month)

	var grid [][7]int
	var row [7]int
	col := offset
	for day := 1; day <= days; day++ {
		row[col] = day
		col++
		if col == 7 {
			grid = append(grid, row)
			row = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		grid = append(grid, row)
	}
	return grid
}

// DaysToSchedule resolves a period into the ordered day numbers to cover.
// With week == nil it returns every day of the month. With a week index it
// returns the in-month days of that grid row, or ErrInvalidPeriod when the
// row does not exist.
func DaysToSchedule(year, month int, week *int) ([]int, error) {
	if week == nil {
		days := make([]int, 0, DaysInMonth(year, month))
		for d := 1; d <= DaysInMonth(year, month); d++ {
			days = append(days, d)
		}
		return days, nil
	}

	grid := MonthGrid(year, month)
	if *week < 0 || *week >= len(grid) {
		return nil, ErrInvalidPeriod
	}

	var days []int
	for _, day := range grid[*week] {
		if day != 0 {
			days = append(days, day)
		}
	}
	return days, nil
}

// WeekdayName returns the English weekday name for a day of the month.
func WeekdayName(year, month, day int) string {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday().String()
}
