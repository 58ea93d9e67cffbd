package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type NutritionController struct {
	Nutrition *services.NutritionService
}

func NewNutritionController(n *services.NutritionService) *NutritionController {
	return &NutritionController{Nutrition: n}
}

type logEntryRequest struct {
	Date  string                 `json:"date"` // YYYY-MM-DD, defaults to today
	Meals []services.MealRequest `json:"meals" binding:"required,min=1,dive"`
}

// POST /nutrition — upsert the day's entry; totals recomputed in full.
func (nc *NutritionController) LogEntry(c *gin.Context) {
	uid := c.GetUint("userID")

	var body logEntryRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := time.Now()
	if body.Date != "" {
		parsed, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	entry, err := nc.Nutrition.LogEntry(uid, date, body.Meals)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /nutrition?date=YYYY-MM-DD
func (nc *NutritionController) GetByDate(c *gin.Context) {
	uid := c.GetUint("userID")

	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' query param"})
		return
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	entry, err := nc.Nutrition.GetEntryByDate(uid, date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GET /nutrition/history?from=YYYY-MM-DD&to=YYYY-MM-DD
func (nc *NutritionController) History(c *gin.Context) {
	uid := c.GetUint("userID")

	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date"})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' date"})
		return
	}

	entries, err := nc.Nutrition.ListEntries(uid, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// DELETE /nutrition?date=YYYY-MM-DD
func (nc *NutritionController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}
	if err := nc.Nutrition.DeleteEntry(uid, date); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
