package export

import (
	"encoding/csv"
	"fmt"
	"html/template"
	"sort"
	"strings"
	"time"

	"github.com/arnavshah/employee-scheduler-api/pkg/calendar"
	"github.com/arnavshah/employee-scheduler-api/pkg/models"
)

// ScheduleCSV flattens a schedule into Date/Day/Shift/Employees rows.
// Days ascend; shifts keep their declared order within each day.
func ScheduleCSV(schedule models.Schedule, shifts []string, year, month int) (string, error) {
	days := make([]int, 0, len(schedule))
	for day := range schedule {
		days = append(days, day)
	}
	sort.Ints(days)

	var out strings.Builder
	writer := csv.NewWriter(&out)
	if err := writer.Write([]string{"Date", "Day", "Shift", "Employees"}); err != nil {
		return "", err
	}

	for _, day := range days {
		for _, shift := range shifts {
			names, ok := schedule[day][shift]
			if !ok {
				continue
			}
			err := writer.Write([]string{
				fmt.Sprintf("%04d-%02d-%02d", year, month, day),
				calendar.WeekdayName(year, month, day),
				shift,
				strings.Join(names, ", "),
			})
			if err != nil {
				return "", err
			}
		}
	}

	writer.Flush()
	return out.String(), writer.Error()
}

var calendarTmpl = template.Must(template.New("calendar").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Work Schedule - {{.MonthName}} {{.Year}}</title>
    <style>
        body { font-family: Arial, sans-serif; }
        table { width: 100%; border-collapse: collapse; margin-bottom: 20px; }
        th, td { border: 1px solid #ddd; padding: 8px; text-align: left; vertical-align: top; }
        th { background-color: #f2f2f2; }
        .day-number { font-weight: bold; font-size: 14px; }
        .shift-name { font-weight: bold; color: #555; margin-top: 5px; }
        .employees { margin-top: 2px; }
        .no-day { background-color: #f9f9f9; }
        h1, h2 { text-align: center; }
        .employee-list { margin-top: 30px; }
        @media print {
            body { font-size: 12px; }
            h1 { font-size: 18px; }
            h2 { font-size: 16px; }
            .pagebreak { page-break-before: always; }
        }
    </style>
</head>
<body>
    <h1>Work Schedule - {{.MonthName}} {{.Year}}</h1>
    <table>
        <tr>{{range .DayNames}}<th>{{.}}</th>{{end}}</tr>
{{range .Weeks}}        <tr>
{{range .}}{{if eq .Day 0}}            <td class="no-day"></td>
{{else}}            <td><div class="day-number">{{.Day}}</div>{{range .Entries}}<div class="shift-name">{{.Shift}}:</div><div class="employees">{{.Employees}}</div>{{end}}</td>
{{end}}{{end}}        </tr>
{{end}}    </table>
    <div class="pagebreak"></div>
    <h2>Employee Information</h2>
    <div class="employee-list">
{{range .Employees}}        <h3>{{.Name}}</h3>
        <p><strong>Unavailable Dates:</strong><br>
        {{range .Unavailable}}{{.Date}} - {{.Shift}}<br>{{else}}None<br>{{end}}</p>
        <p><strong>Mandatory Dates:</strong><br>
        {{range .Mandatory}}{{.Date}} - {{.Shift}}<br>{{else}}None<br>{{end}}</p>
{{end}}    </div>
</body>
</html>
`))

type calendarEntry struct {
	Shift     string
	Employees string
}

type calendarCell struct {
	Day     int
	Entries []calendarEntry
}

type calendarPage struct {
	MonthName string
	Year      int
	DayNames  []string
	Weeks     [][]calendarCell
	Employees []models.Employee
}

// ScheduleHTML renders a printable month calendar with an appendix listing
// each employee's constraints.
func ScheduleHTML(schedule models.Schedule, shifts []string, employees []models.Employee, year, month int) (string, error) {
	page := calendarPage{
		MonthName: time.Month(month).String(),
		Year:      year,
		DayNames:  []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
		Employees: employees,
	}

	for _, row := range calendar.MonthGrid(year, month) {
		week := make([]calendarCell, 0, 7)
		for _, day := range row {
			cell := calendarCell{Day: day}
			if day != 0 {
				for _, shift := range shifts {
					if names, ok := schedule[day][shift]; ok {
						cell.Entries = append(cell.Entries, calendarEntry{
							Shift:     shift,
							Employees: strings.Join(names, ", "),
						})
					}
				}
			}
			week = append(week, cell)
		}
		page.Weeks = append(page.Weeks, week)
	}

	var out strings.Builder
	if err := calendarTmpl.Execute(&out, page); err != nil {
		return "", err
	}
	return out.String(), nil
}
