package handler

import (
	"net/http"

	"github.com/arnavshah/employee-scheduler-api/pkg/auth"
	"github.com/arnavshah/employee-scheduler-api/pkg/database"
	"github.com/arnavshah/employee-scheduler-api/pkg/handlers"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var r *gin.Engine

func init() {
	// Load .env if it exists (for local testing with vercel dev)
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	// Initialize DB
	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)
	h := &handlers.Handler{DB: db}

	// Initialize Gin
	gin.SetMode(gin.ReleaseMode)
	r = gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Employee Scheduler API (Vercel)",
			"version": "1.0.0",
		})
	})

	r.POST("/auth/signup", h.Signup)
	r.POST("/auth/login", h.Login)

	api := r.Group("/api")
	api.Use(h.AuthMiddleware())
	{
		api.POST("/schedule", h.GenerateSchedule)
		api.POST("/schedule/csv", h.GenerateScheduleCSV)
		api.POST("/schedule/html", h.GenerateScheduleHTML)
		api.POST("/validate", h.ValidateInput)

		api.POST("/employees/import", h.ImportEmployees)
		api.POST("/employees/export", h.ExportEmployees)

		api.GET("/schedules", h.ListSchedules)
		api.POST("/schedules", h.SaveSchedule)
		api.GET("/schedules/:id", h.GetSchedule)
		api.PUT("/schedules/:id", h.UpdateSchedule)
		api.DELETE("/schedules/:id", h.DeleteSchedule)

		api.POST("/orgs", h.CreateOrganization)
		api.POST("/orgs/join", h.JoinOrganization)
		api.GET("/orgs/me", h.GetMyOrganization)

		api.POST("/timeoff", h.CreateTimeOff)
		api.GET("/timeoff", h.ListTimeOff)
		api.PUT("/timeoff/:id/status", h.ManagerMiddleware(), h.UpdateTimeOffStatus)
	}
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, r_req *http.Request) {
	r.ServeHTTP(w, r_req)
}
