package handlers

import (
	"net/http"

	"github.com/arnavshah/employee-scheduler-api/pkg/models"
	"github.com/gin-gonic/gin"
)

// ValidateInput checks a scheduling request without running the engine
func (h *Handler) ValidateInput(c *gin.Context) {
	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if msg := validateScheduleRequest(&req); msg != "" {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": msg,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"employee_count": len(req.Employees),
			"shift_count":    len(req.Shifts),
		},
	})
}
