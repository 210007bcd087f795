package report

import (
	"fmt"
	"log"
	"os"
	"time"

	"costmanager/models"
	agg "costmanager/pkg/report"

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

// RunReport prints a month-bounded category report for a business user id
// (month in YYYY-MM) and optionally lists the matching cost rows.
func RunReport(userID, month string, list bool) {
	gdb := mustDBFromEnv()

	var user models.User
	if err := gdb.Where("userid = ?", userID).First(&user).Error; err != nil {
		log.Fatalf("user not found: %v", err)
	}

	t, err := time.Parse("2006-01", month)
	if err != nil {
		log.Fatalf("invalid month format, expected YYYY-MM: %v", err)
	}
	start, end := agg.MonthRange(t.Year(), int(t.Month()))

	var costs []models.Cost
	if err := gdb.Where("userid = ? AND date >= ? AND date < ?", userID, start, end).Order("id").Find(&costs).Error; err != nil {
		log.Fatalf("fetch rows failed: %v", err)
	}

	fmt.Printf("Report for user=%s (%s %s) month=%s:\n", user.UserID, user.FirstName, user.LastName, month)
	fmt.Printf("  records=%d total=%.2f\n", len(costs), agg.Total(costs))
	grouped := agg.Group(costs)
	for _, cat := range models.AllowedCategories {
		fmt.Printf("  %-10s %d entries\n", cat, len(grouped[cat]))
	}

	if list {
		for _, c := range costs {
			fmt.Printf("%d|%s|%s|%.2f|%s\n", c.ID, c.Category, c.Description, c.Sum, c.Date.Format(time.RFC3339))
		}
	}
}
