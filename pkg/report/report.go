// Package report holds the aggregation core: month-range computation,
// category grouping and cost totalling. It is pure and storage-agnostic so the
// HTTP handlers and CLI tooling can share it.
package report

import (
	"strings"
	"time"

	"costmanager/models"
)

// Entry is one cost line inside a category bucket of a monthly report.
type Entry struct {
	Sum         float64 `json:"sum"`
	Description string  `json:"description"`
	Day         int     `json:"day"`
}

// MonthRange returns the half-open [start, end) interval covering the given
// calendar month. Boundaries are the local first-of-month instants; a month
// value of 13 rolls into January of the next year via time.Date normalization.
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.Local)
	return start, end
}

// Group partitions costs into the five fixed category buckets. All buckets are
// always present, even when empty. Category names are lower-cased before the
// bucket lookup; records with an unrecognized category are dropped. Day is the
// day-of-month of the record's date in UTC.
func Group(costs []models.Cost) map[string][]Entry {
	grouped := make(map[string][]Entry, len(models.AllowedCategories))
	for _, cat := range models.AllowedCategories {
		grouped[cat] = []Entry{}
	}
	for _, c := range costs {
		key := strings.ToLower(c.Category)
		bucket, ok := grouped[key]
		if !ok {
			continue
		}
		grouped[key] = append(bucket, Entry{
			Sum:         c.Sum,
			Description: c.Description,
			Day:         c.Date.UTC().Day(),
		})
	}
	return grouped
}

// Total sums the Sum field over all costs. An empty slice totals to zero.
func Total(costs []models.Cost) float64 {
	var total float64
	for _, c := range costs {
		total += c.Sum
	}
	return total
}
