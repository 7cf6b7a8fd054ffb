package handlers

import (
	"net/http"
	"time"

	"github.com/arnavshah/employee-scheduler-api/pkg/database"
	"github.com/arnavshah/employee-scheduler-api/pkg/models"
	"github.com/gin-gonic/gin"
)

// CreateTimeOff files a time-off request for the current user
func (h *Handler) CreateTimeOff(c *gin.Context) {
	user := h.CurrentUser(c)

	var req struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
		Reason    string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, err := time.Parse(models.DateLayout, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return
	}
	end, err := time.Parse(models.DateLayout, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not precede start_date"})
		return
	}

	request := database.TimeOffRequest{
		UserID:    user.ID,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
		Status:    database.TimeOffPending,
	}
	if err := h.DB.Create(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"request": request})
}

// ListTimeOff returns the caller's requests; managers see every request
func (h *Handler) ListTimeOff(c *gin.Context) {
	user := h.CurrentUser(c)

	query := h.DB.Order("created_at desc")
	if !user.IsManager() {
		query = query.Where("user_id = ?", user.ID)
	}

	var requests []database.TimeOffRequest
	if err := query.Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// UpdateTimeOffStatus approves or rejects a request (manager only)
func (h *Handler) UpdateTimeOffStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status != database.TimeOffApproved && req.Status != database.TimeOffRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be approved or rejected"})
		return
	}

	var request database.TimeOffRequest
	if err := h.DB.First(&request, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}

	request.Status = req.Status
	if err := h.DB.Save(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"request": request})
}
