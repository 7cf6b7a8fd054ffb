package database

import (
	"encoding/json"
	"strconv"

	"github.com/arnavshah/employee-scheduler-api/pkg/models"
)

// SetSchedule serializes a schedule for storage, converting day numbers to
// string keys for JSON.
func (s *SavedSchedule) SetSchedule(schedule models.Schedule) error {
	keyed := make(map[string]map[string][]string, len(schedule))
	for day, shifts := range schedule {
		keyed[strconv.Itoa(day)] = shifts
	}
	data, err := json.Marshal(keyed)
	if err != nil {
		return err
	}
	s.ScheduleData = string(data)
	return nil
}

// GetSchedule deserializes the stored schedule, converting string day keys
// back to integers.
func (s *SavedSchedule) GetSchedule() (models.Schedule, error) {
	var keyed map[string]map[string][]string
	if err := json.Unmarshal([]byte(s.ScheduleData), &keyed); err != nil {
		return nil, err
	}
	schedule := make(models.Schedule, len(keyed))
	for key, shifts := range keyed {
		day, err := strconv.Atoi(key)
		if err != nil {
			return nil, err
		}
		schedule[day] = shifts
	}
	return schedule, nil
}

// SetEmployees serializes the roster the schedule was generated from.
func (s *SavedSchedule) SetEmployees(employees []models.Employee) error {
	data, err := json.Marshal(employees)
	if err != nil {
		return err
	}
	s.EmployeesData = string(data)
	return nil
}

// GetEmployees deserializes the stored roster.
func (s *SavedSchedule) GetEmployees() ([]models.Employee, error) {
	var employees []models.Employee
	if err := json.Unmarshal([]byte(s.EmployeesData), &employees); err != nil {
		return nil, err
	}
	return employees, nil
}
