package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Dashboard *services.DashboardService
}

func NewDashboardController(d *services.DashboardService) *DashboardController {
	return &DashboardController{Dashboard: d}
}

func (dc *DashboardController) Summary(c *gin.Context) {
	uid := c.GetUint("userID")
	summary, err := dc.Dashboard.Summary(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
