package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arnavshah/employee-scheduler-api/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduleRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &Handler{}
	r := gin.New()
	r.POST("/schedule", h.GenerateSchedule)
	r.POST("/validate", h.ValidateInput)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateSchedule(t *testing.T) {
	r := scheduleRouter()

	w := postJSON(t, r, "/schedule", models.ScheduleRequest{
		Employees: []models.Employee{{Name: "A"}, {Name: "B"}},
		Shifts:    []string{"Morning"},
		Headcount: 1,
		Year:      2025,
		Month:     7,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Schedule, 31)
	assert.Equal(t, []string{"A"}, resp.Schedule[1]["Morning"])
	assert.Equal(t, []string{"B"}, resp.Schedule[2]["Morning"])
	assert.LessOrEqual(t, resp.Distribution.Spread, 1)
}

func TestGenerateSchedule_WeekFilter(t *testing.T) {
	r := scheduleRouter()
	week := 2

	w := postJSON(t, r, "/schedule", models.ScheduleRequest{
		Employees: []models.Employee{{Name: "A"}},
		Shifts:    []string{"Morning"},
		Headcount: 1,
		Year:      2025,
		Month:     3,
		Week:      &week,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// Week 2 of March 2025 is the 10th through the 16th.
	require.Len(t, resp.Schedule, 7)
	for day := 10; day <= 16; day++ {
		assert.Contains(t, resp.Schedule, day)
	}
}

func TestGenerateSchedule_InvalidWeek(t *testing.T) {
	r := scheduleRouter()
	week := 9

	w := postJSON(t, r, "/schedule", models.ScheduleRequest{
		Employees: []models.Employee{{Name: "A"}},
		Shifts:    []string{"Morning"},
		Headcount: 1,
		Year:      2025,
		Month:     3,
		Week:      &week,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateSchedule_RejectPolicy(t *testing.T) {
	r := scheduleRouter()

	w := postJSON(t, r, "/schedule", models.ScheduleRequest{
		Employees: []models.Employee{
			{Name: "A", Mandatory: []models.DateShift{{Date: "2025-07-01", Shift: "Night"}}},
			{Name: "B", Mandatory: []models.DateShift{{Date: "2025-07-01", Shift: "Night"}}},
		},
		Shifts:              []string{"Night"},
		Headcount:           1,
		Year:                2025,
		Month:               7,
		OnMandatoryOverflow: "reject",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestValidateScheduleRequest(t *testing.T) {
	base := func() models.ScheduleRequest {
		return models.ScheduleRequest{
			Employees: []models.Employee{{Name: "A"}, {Name: "B"}},
			Shifts:    []string{"Morning"},
			Headcount: 1,
			Year:      2025,
			Month:     7,
		}
	}

	tests := map[string]struct {
		mutate  func(*models.ScheduleRequest)
		wantMsg string
	}{
		"valid":               {func(r *models.ScheduleRequest) {}, ""},
		"no shifts":           {func(r *models.ScheduleRequest) { r.Shifts = nil }, "at least one shift is required"},
		"duplicate shift":     {func(r *models.ScheduleRequest) { r.Shifts = []string{"M", "M"} }, "duplicate shift name: M"},
		"zero headcount":      {func(r *models.ScheduleRequest) { r.Headcount = 0 }, "headcount must be positive"},
		"roster too small":    {func(r *models.ScheduleRequest) { r.Headcount = 3 }, "not enough employees for the requested headcount"},
		"duplicate employee":  {func(r *models.ScheduleRequest) { r.Employees[1].Name = "A" }, "duplicate employee name: A"},
		"month out of range":  {func(r *models.ScheduleRequest) { r.Month = 13 }, "month must be between 1 and 12"},
		"empty employee name": {func(r *models.ScheduleRequest) { r.Employees[0].Name = "" }, "employee names must not be empty"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := base()
			tc.mutate(&req)
			assert.Equal(t, tc.wantMsg, validateScheduleRequest(&req))
		})
	}
}

func TestValidateInputEndpoint(t *testing.T) {
	r := scheduleRouter()

	w := postJSON(t, r, "/validate", models.ScheduleRequest{
		Employees: []models.Employee{{Name: "A"}},
		Shifts:    []string{"Morning", "Evening"},
		Headcount: 1,
		Year:      2025,
		Month:     7,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Valid bool `json:"valid"`
		Stats struct {
			EmployeeCount int `json:"employee_count"`
			ShiftCount    int `json:"shift_count"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Valid)
	assert.Equal(t, 1, resp.Stats.EmployeeCount)
	assert.Equal(t, 2, resp.Stats.ShiftCount)
}
