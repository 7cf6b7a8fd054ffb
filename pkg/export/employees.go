package export

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/arnavshah/employee-scheduler-api/pkg/models"
)

// ErrMissingNameColumn is returned when a roster upload has no Name column.
var ErrMissingNameColumn = errors.New("csv must contain a Name column")

// Roster CSV format: one row per employee, constraint pairs encoded as
// "YYYY-MM-DD|Shift" joined with ";".

// EmployeesCSV serializes a roster for bulk export.
func EmployeesCSV(employees []models.Employee) (string, error) {
	var out strings.Builder
	writer := csv.NewWriter(&out)
	if err := writer.Write([]string{"Name", "Unavailable Dates", "Mandatory Dates"}); err != nil {
		return "", err
	}

	for _, emp := range employees {
		err := writer.Write([]string{
			emp.Name,
			joinPairs(emp.Unavailable),
			joinPairs(emp.Mandatory),
		})
		if err != nil {
			return "", err
		}
	}

	writer.Flush()
	return out.String(), writer.Error()
}

func joinPairs(pairs []models.DateShift) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p.Date+"|"+p.Shift)
	}
	return strings.Join(parts, ";")
}

// ParseEmployeesCSV reads a bulk roster upload. Rows missing a name and
// constraint pairs that do not parse are skipped; a duplicate name keeps the
// first occurrence.
func ParseEmployeesCSV(r io.Reader) ([]models.Employee, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	nameCol, ok := cols["Name"]
	if !ok {
		return nil, ErrMissingNameColumn
	}

	var employees []models.Employee
	seen := make(map[string]bool)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if nameCol >= len(record) {
			continue
		}
		name := strings.TrimSpace(record[nameCol])
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		emp := models.Employee{Name: name}
		if i, ok := cols["Unavailable Dates"]; ok && i < len(record) {
			emp.Unavailable = splitPairs(record[i])
		}
		if i, ok := cols["Mandatory Dates"]; ok && i < len(record) {
			emp.Mandatory = splitPairs(record[i])
		}
		employees = append(employees, emp)
	}
	return employees, nil
}

func splitPairs(field string) []models.DateShift {
	var pairs []models.DateShift
	for _, part := range strings.Split(field, ";") {
		date, shift, ok := strings.Cut(part, "|")
		if !ok {
			continue
		}
		date = strings.TrimSpace(date)
		if _, err := time.Parse(models.DateLayout, date); err != nil {
			continue
		}
		pairs = append(pairs, models.DateShift{Date: date, Shift: strings.TrimSpace(shift)})
	}
	return pairs
}
