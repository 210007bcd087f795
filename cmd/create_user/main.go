package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"costmanager/models"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	id := flag.String("id", "", "business user id (generated when empty)")
	first := flag.String("first", "", "first name")
	last := flag.String("last", "", "last name")
	birthday := flag.String("birthday", "", "birthday (YYYY-MM-DD)")
	status := flag.String("status", "single", "marital status (single|married|divorced|widowed)")
	flag.Parse()

	if *first == "" || *last == "" || *birthday == "" {
		fmt.Println("usage: go run ./cmd/create_user -first <name> -last <name> -birthday <YYYY-MM-DD> [-id <id>] [-status <status>]")
		os.Exit(2)
	}
	bday, err := time.Parse("2006-01-02", *birthday)
	if err != nil {
		log.Fatalf("invalid birthday, expected YYYY-MM-DD: %v", err)
	}
	uid := *id
	if uid == "" {
		uid = uuid.NewString()
	}

	dsn := os.Getenv("DB_DSN")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DB_DSN not set in environment")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	// check existing
	var existing models.User
	if err := db.Where("userid = ?", uid).First(&existing).Error; err == nil {
		fmt.Printf("user %s already exists (%s %s)\n", uid, existing.FirstName, existing.LastName)
		os.Exit(0)
	}

	user := models.User{UserID: uid, FirstName: *first, LastName: *last, Birthday: bday, MaritalStatus: *status}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
	fmt.Printf("created user %s (%s %s)\n", uid, *first, *last)
}
