package handlers

import (
	"errors"
	"net/http"

	"github.com/arnavshah/employee-scheduler-api/pkg/calendar"
	"github.com/arnavshah/employee-scheduler-api/pkg/export"
	"github.com/arnavshah/employee-scheduler-api/pkg/models"
	"github.com/arnavshah/employee-scheduler-api/pkg/scheduler"
	"github.com/gin-gonic/gin"
)

// validateScheduleRequest performs the caller-side configuration checks the
// engine itself does not: the engine just degrades on degenerate input.
func validateScheduleRequest(req *models.ScheduleRequest) string {
	if len(req.Shifts) == 0 {
		return "at least one shift is required"
	}
	seenShift := make(map[string]bool, len(req.Shifts))
	for _, shift := range req.Shifts {
		if shift == "" {
			return "shift names must not be empty"
		}
		if seenShift[shift] {
			return "duplicate shift name: " + shift
		}
		seenShift[shift] = true
	}

	if req.Headcount <= 0 {
		return "headcount must be positive"
	}
	if len(req.Employees) < req.Headcount {
		return "not enough employees for the requested headcount"
	}

	seenName := make(map[string]bool, len(req.Employees))
	for _, emp := range req.Employees {
		if emp.Name == "" {
			return "employee names must not be empty"
		}
		if seenName[emp.Name] {
			return "duplicate employee name: " + emp.Name
		}
		seenName[emp.Name] = true
	}

	if req.Month < 1 || req.Month > 12 {
		return "month must be between 1 and 12"
	}
	return ""
}

// runSchedule binds, validates and runs one scheduling pass. On failure the
// response has already been written and the returned response is nil.
func (h *Handler) runSchedule(c *gin.Context) (*models.ScheduleRequest, *models.ScheduleResponse) {
	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil
	}

	if msg := validateScheduleRequest(&req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return nil, nil
	}

	policy, err := scheduler.ParseOverflowPolicy(req.OnMandatoryOverflow)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil
	}

	days, err := calendar.DaysToSchedule(req.Year, req.Month, req.Week)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil
	}

	s := scheduler.NewScheduler(req.Employees, req.Shifts, req.Headcount, policy)
	schedule, err := s.Assign(req.Year, req.Month, days)
	if err != nil {
		if errors.Is(err, scheduler.ErrMandatoryOverflow) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return nil, nil
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, nil
	}

	return &req, &models.ScheduleResponse{
		Schedule:     schedule,
		Distribution: s.Distribution(),
		Warnings:     s.Warnings,
		Overflows:    s.Overflows,
	}
}

// GenerateSchedule handles the JSON-based scheduling request
func (h *Handler) GenerateSchedule(c *gin.Context) {
	_, resp := h.runSchedule(c)
	if resp == nil {
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GenerateScheduleCSV runs a scheduling pass and returns the flattened CSV
func (h *Handler) GenerateScheduleCSV(c *gin.Context) {
	req, resp := h.runSchedule(c)
	if resp == nil {
		return
	}

	out, err := export.ScheduleCSV(resp.Schedule, req.Shifts, req.Year, req.Month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not render CSV"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"csv": out})
}

// GenerateScheduleHTML runs a scheduling pass and returns a printable calendar
func (h *Handler) GenerateScheduleHTML(c *gin.Context) {
	req, resp := h.runSchedule(c)
	if resp == nil {
		return
	}

	out, err := export.ScheduleHTML(resp.Schedule, req.Shifts, req.Employees, req.Year, req.Month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not render calendar"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
}
