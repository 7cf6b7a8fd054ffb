package handlers

import (
	"net/http"

	"github.com/arnavshah/employee-scheduler-api/pkg/export"
	"github.com/arnavshah/employee-scheduler-api/pkg/models"
	"github.com/gin-gonic/gin"
)

// ImportEmployees parses a bulk roster CSV upload
func (h *Handler) ImportEmployees(c *gin.Context) {
	file, err := c.FormFile("employees_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employees_file is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open employees file"})
		return
	}
	defer f.Close()

	employees, err := export.ParseEmployeesCSV(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"employees":      employees,
		"imported_count": len(employees),
	})
}

// ExportEmployees returns a roster as a bulk CSV
func (h *Handler) ExportEmployees(c *gin.Context) {
	var req struct {
		Employees []models.Employee `json:"employees"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := export.EmployeesCSV(req.Employees)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not render CSV"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"csv": out})
}
