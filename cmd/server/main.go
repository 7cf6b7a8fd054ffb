package main

import (
	"log"
	"net/http"
	"os"

	"github.com/arnavshah/employee-scheduler-api/pkg/auth"
	"github.com/arnavshah/employee-scheduler-api/pkg/database"
	"github.com/arnavshah/employee-scheduler-api/pkg/handlers"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)
	h := &handlers.Handler{DB: db}

	r := gin.Default()

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Employee Scheduler API",
			"version": "1.0.0",
		})
	})

	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/login", h.Login)

	api := r.Group("/api")
	api.Use(h.AuthMiddleware())
	{
		// Scheduling engine
		api.POST("/schedule", h.GenerateSchedule)
		api.POST("/schedule/csv", h.GenerateScheduleCSV)
		api.POST("/schedule/html", h.GenerateScheduleHTML)
		api.POST("/validate", h.ValidateInput)

		// Roster bulk import/export
		api.POST("/employees/import", h.ImportEmployees)
		api.POST("/employees/export", h.ExportEmployees)

		// Saved schedules
		api.GET("/schedules", h.ListSchedules)
		api.POST("/schedules", h.SaveSchedule)
		api.GET("/schedules/:id", h.GetSchedule)
		api.PUT("/schedules/:id", h.UpdateSchedule)
		api.DELETE("/schedules/:id", h.DeleteSchedule)

		// Organizations
		api.POST("/orgs", h.CreateOrganization)
		api.POST("/orgs/join", h.JoinOrganization)
		api.GET("/orgs/me", h.GetMyOrganization)

		// Time off
		api.POST("/timeoff", h.CreateTimeOff)
		api.GET("/timeoff", h.ListTimeOff)
		api.PUT("/timeoff/:id/status", h.ManagerMiddleware(), h.UpdateTimeOffStatus)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}
