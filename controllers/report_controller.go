package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(r *services.ReportService) *ReportController {
	return &ReportController{Reports: r}
}

// POST /reports — returns the pending row immediately; generation runs in
// the background and callers poll for status.
func (rc *ReportController) Generate(c *gin.Context) {
	uid := c.GetUint("userID")
	var in services.ReportInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	report, err := rc.Reports.Generate(uid, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, report)
}

func (rc *ReportController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	reports, err := rc.Reports.List(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (rc *ReportController) Get(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	report, err := rc.Reports.Get(uid, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
