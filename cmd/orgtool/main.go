package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/arnavshah/employee-scheduler-api/pkg/database"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env from project root
	_ = godotenv.Load("../.env")
	_ = godotenv.Load(".env")

	if len(os.Args) < 2 {
		fmt.Println("Usage: orgtool <organization name> [description]")
		os.Exit(1)
	}

	name := os.Args[1]
	description := strings.Join(os.Args[2:], " ")

	db := database.InitDB()

	org := database.Organization{
		Name:        name,
		Description: description,
		InviteCode:  database.NewInviteCode(),
	}
	if err := db.Create(&org).Error; err != nil {
		fmt.Printf("Error: could not create organization: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created organization %q (id %d)\nInvite code: %s\n", org.Name, org.ID, org.InviteCode)
}
