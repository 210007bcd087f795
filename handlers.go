package main

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"costmanager/models"
	"costmanager/pkg/report"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// App bundles the dependencies the handlers need. The DB handle is injected
// here instead of living in a package-level variable.
type App struct {
	DB *gorm.DB
}

// developers returned by GET /about.
var developers = []gin.H{
	{"first_name": "Roy", "last_name": "Rizel"},
	{"first_name": "Stav", "last_name": "Sivilya"},
}

func setupRoutes(r *gin.Engine, app *App) {
	r.POST("/add", app.addCostHandler)
	r.GET("/report", app.monthlyReportHandler)
	r.GET("/users/:id", app.userDetailsHandler)
	r.GET("/about", app.aboutHandler)
}

// addCostHandler creates a single cost record for a user.
func (a *App) addCostHandler(c *gin.Context) {
	var req struct {
		Description string     `json:"description"`
		Category    string     `json:"category"`
		UserID      string     `json:"userid"`
		Sum         *float64   `json:"sum"`
		Date        *time.Time `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// sum is only checked for presence, not positivity
	if req.Description == "" || req.Category == "" || req.UserID == "" || req.Sum == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: description, category, userid, or sum."})
		return
	}
	if !models.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category. Allowed categories are: " + strings.Join(models.AllowedCategories, ", ")})
		return
	}
	cost := models.Cost{
		Description: req.Description,
		Category:    req.Category,
		UserID:      req.UserID,
		Sum:         *req.Sum,
	}
	if req.Date != nil {
		cost.Date = *req.Date
	}
	if err := a.DB.Create(&cost).Error; err != nil {
		slog.Error("failed to add cost", "userid", req.UserID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusCreated, cost)
}

// monthlyReportHandler returns one user's costs for a calendar month grouped
// by category. All five category buckets are present in every response.
func (a *App) monthlyReportHandler(c *gin.Context) {
	id := c.Query("id")
	yearStr := c.Query("year")
	monthStr := c.Query("month")
	if id == "" || yearStr == "" || monthStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
		return
	}
	year, errYear := strconv.Atoi(yearStr)
	month, errMonth := strconv.Atoi(monthStr)
	if errYear != nil || errMonth != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
		return
	}

	start, end := report.MonthRange(year, month)
	var costs []models.Cost
	if err := a.DB.Where("userid = ? AND date >= ? AND date < ?", id, start, end).Order("id").Find(&costs).Error; err != nil {
		slog.Error("failed to query monthly costs", "userid", id, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userid": id,
		"year":   year,
		"month":  month,
		"costs":  report.Group(costs),
	})
}

// userDetailsHandler returns a user's name and the total of all their costs.
func (a *App) userDetailsHandler(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := a.DB.Where("userid = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		// unlike /report, this path reports the raw error at 400
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var costs []models.Cost
	if err := a.DB.Where("userid = ?", id).Find(&costs).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         user.UserID,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"total":      report.Total(costs),
	})
}

// aboutHandler returns the development team.
func (a *App) aboutHandler(c *gin.Context) {
	c.JSON(http.StatusOK, developers)
}
