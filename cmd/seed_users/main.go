package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"costmanager/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func mustDBFromEnv() *gorm.DB {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN not set in env")
	}
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	return gdb
}

type seedUser struct {
	ID            string `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Birthday      string `json:"birthday"` // YYYY-MM-DD
	MaritalStatus string `json:"marital_status"`
}

func main() {
	file := flag.String("file", "users.json", "JSON file with an array of users to insert")
	dry := flag.Bool("dry-run", false, "parse and validate only, don't write to DB")
	flag.Parse()

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("read %s: %v", *file, err)
	}
	var seeds []seedUser
	if err := json.Unmarshal(raw, &seeds); err != nil {
		log.Fatalf("parse %s: %v", *file, err)
	}
	if len(seeds) == 0 {
		fmt.Println("nothing to seed")
		return
	}

	users := make([]models.User, 0, len(seeds))
	for _, s := range seeds {
		bday, err := time.Parse("2006-01-02", s.Birthday)
		if err != nil {
			log.Fatalf("user %s: invalid birthday %q, expected YYYY-MM-DD", s.ID, s.Birthday)
		}
		users = append(users, models.User{
			UserID:        s.ID,
			FirstName:     s.FirstName,
			LastName:      s.LastName,
			Birthday:      bday,
			MaritalStatus: s.MaritalStatus,
		})
	}

	if *dry {
		fmt.Printf("dry-run: %d users parsed ok\n", len(users))
		return
	}

	db := mustDBFromEnv()
	// single batch insert; model hooks validate each row
	if err := db.Create(&users).Error; err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	fmt.Printf("seeded %d users\n", len(users))
}
