package handlers

import (
	"net/http"

	"github.com/arnavshah/employee-scheduler-api/pkg/database"
	"github.com/arnavshah/employee-scheduler-api/pkg/models"
	"github.com/gin-gonic/gin"
)

type savedScheduleRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Month       int               `json:"month"`
	Year        int               `json:"year"`
	Schedule    models.Schedule   `json:"schedule"`
	Employees   []models.Employee `json:"employees"`
}

// SaveSchedule stores a generated schedule under the current user's account
func (h *Handler) SaveSchedule(c *gin.Context) {
	user := h.CurrentUser(c)

	var req savedScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if len(req.Schedule) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "schedule is required"})
		return
	}

	saved := database.SavedSchedule{
		UserID:      user.ID,
		Name:        req.Name,
		Description: req.Description,
		Month:       req.Month,
		Year:        req.Year,
	}
	if err := saved.SetSchedule(req.Schedule); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not serialize schedule"})
		return
	}
	if err := saved.SetEmployees(req.Employees); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not serialize employees"})
		return
	}

	if err := h.DB.Create(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save schedule"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": saved.ID, "message": "Schedule saved successfully"})
}

// ListSchedules returns the current user's saved schedules, newest first
func (h *Handler) ListSchedules(c *gin.Context) {
	user := h.CurrentUser(c)

	var saved []database.SavedSchedule
	if err := h.DB.Where("user_id = ?", user.ID).Order("created_at desc").Find(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch schedules"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedules": saved})
}

// loadOwnedSchedule fetches a saved schedule by path id, scoped to the owner.
func (h *Handler) loadOwnedSchedule(c *gin.Context) *database.SavedSchedule {
	user := h.CurrentUser(c)

	var saved database.SavedSchedule
	if err := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&saved).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return nil
	}
	return &saved
}

// GetSchedule returns one saved schedule with its decoded payload
func (h *Handler) GetSchedule(c *gin.Context) {
	saved := h.loadOwnedSchedule(c)
	if saved == nil {
		return
	}

	schedule, err := saved.GetSchedule()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not decode schedule"})
		return
	}
	employees, err := saved.GetEmployees()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not decode employees"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          saved.ID,
		"name":        saved.Name,
		"description": saved.Description,
		"month":       saved.Month,
		"year":        saved.Year,
		"schedule":    schedule,
		"employees":   employees,
		"created_at":  saved.CreatedAt,
		"updated_at":  saved.UpdatedAt,
	})
}

// UpdateSchedule modifies a saved schedule's fields and payload
func (h *Handler) UpdateSchedule(c *gin.Context) {
	saved := h.loadOwnedSchedule(c)
	if saved == nil {
		return
	}

	var req savedScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != "" {
		saved.Name = req.Name
	}
	saved.Description = req.Description
	if req.Month != 0 {
		saved.Month = req.Month
	}
	if req.Year != 0 {
		saved.Year = req.Year
	}
	if len(req.Schedule) > 0 {
		if err := saved.SetSchedule(req.Schedule); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not serialize schedule"})
			return
		}
	}
	if len(req.Employees) > 0 {
		if err := saved.SetEmployees(req.Employees); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not serialize employees"})
			return
		}
	}

	if err := h.DB.Save(saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update schedule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule updated successfully"})
}

// DeleteSchedule removes a saved schedule
func (h *Handler) DeleteSchedule(c *gin.Context) {
	saved := h.loadOwnedSchedule(c)
	if saved == nil {
		return
	}

	if err := h.DB.Delete(saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete schedule"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted successfully"})
}
