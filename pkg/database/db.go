package database

import (
	"log"
	"math/rand"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Roles, lowest to highest privilege.
const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

// Time-off request states.
const (
	TimeOffPending  = "pending"
	TimeOffApproved = "approved"
	TimeOffRejected = "rejected"
)

// Organization groups users under a shared invite code.
type Organization struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	InviteCode  string    `gorm:"unique;not null" json:"invite_code"`
	CreatedAt   time.Time `json:"created_at"`
}

// User represents the users table.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"unique;not null" json:"username"`
	Email          string    `gorm:"unique;not null" json:"email"`
	PasswordHash   string    `gorm:"not null" json:"-"`
	Role           string    `gorm:"default:employee" json:"role"`
	OrganizationID *uint     `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// IsManager reports whether the user may act on other users' requests.
func (u *User) IsManager() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager
}

// TimeOffRequest represents the time_off_requests table.
type TimeOffRequest struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null" json:"end_date"`
	Reason    string    `json:"reason"`
	Status    string    `gorm:"default:pending" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SavedSchedule represents the saved_schedules table. ScheduleData holds the
// schedule JSON keyed by the string form of the day number; EmployeesData
// holds the roster JSON. The string-key conversion happens in this package,
// never in the engine.
type SavedSchedule struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null" json:"user_id"`
	Name          string    `gorm:"not null" json:"name"`
	Description   string    `json:"description"`
	Month         int       `gorm:"not null" json:"month"`
	Year          int       `gorm:"not null" json:"year"`
	ScheduleData  string    `gorm:"not null" json:"-"`
	EmployeesData string    `gorm:"not null" json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

const inviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewInviteCode generates an 8-character organization invite code.
func NewInviteCode() string {
	code := make([]byte, 8)
	for i := range code {
		code[i] = inviteCodeAlphabet[rand.Intn(len(inviteCodeAlphabet))]
	}
	return string(code)
}

// InitDB initializes the database connection and migrates the schema.
// DATABASE_URL selects postgres; otherwise a sqlite file at DATA_PATH is used.
func InitDB() *gorm.DB {
	var db *gorm.DB
	var err error

	dsn := os.Getenv("DATABASE_URL")
	if dsn != "" {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	} else {
		dbPath := os.Getenv("DATA_PATH")
		if dbPath == "" {
			dbPath = "scheduler.db"
		}
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	db.AutoMigrate(&Organization{}, &User{}, &TimeOffRequest{}, &SavedSchedule{})

	return db
}
