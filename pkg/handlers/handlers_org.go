package handlers

import (
	"net/http"

	"github.com/arnavshah/employee-scheduler-api/pkg/database"
	"github.com/gin-gonic/gin"
)

// CreateOrganization creates an organization and makes the caller its admin
func (h *Handler) CreateOrganization(c *gin.Context) {
	user := h.CurrentUser(c)

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	org := database.Organization{
		Name:        req.Name,
		Description: req.Description,
		InviteCode:  database.NewInviteCode(),
	}
	// Retry on the rare invite-code collision.
	for attempt := 0; attempt < 5; attempt++ {
		if err := h.DB.Create(&org).Error; err == nil {
			break
		}
		org.ID = 0
		org.InviteCode = database.NewInviteCode()
	}
	if org.ID == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create organization"})
		return
	}

	user.OrganizationID = &org.ID
	user.Role = database.RoleAdmin
	if err := h.DB.Save(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"organization": org,
		"invite_code":  org.InviteCode,
	})
}

// JoinOrganization adds the caller to an organization via invite code
func (h *Handler) JoinOrganization(c *gin.Context) {
	user := h.CurrentUser(c)

	var req struct {
		InviteCode string `json:"invite_code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var org database.Organization
	if err := h.DB.Where("invite_code = ?", req.InviteCode).First(&org).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid invite code"})
		return
	}

	user.OrganizationID = &org.ID
	if user.Role == "" {
		user.Role = database.RoleEmployee
	}
	if err := h.DB.Save(user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not join organization"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"organization": org})
}

// GetMyOrganization returns the caller's organization and its members
func (h *Handler) GetMyOrganization(c *gin.Context) {
	user := h.CurrentUser(c)
	if user.OrganizationID == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not a member of any organization"})
		return
	}

	var org database.Organization
	if err := h.DB.First(&org, *user.OrganizationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Organization not found"})
		return
	}

	var members []database.User
	h.DB.Where("organization_id = ?", org.ID).Order("username").Find(&members)

	c.JSON(http.StatusOK, gin.H{
		"organization": org,
		"members":      members,
	})
}
