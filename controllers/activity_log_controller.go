package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ActivityLogController struct {
	Logs *services.ActivityLogService
}

func NewActivityLogController(l *services.ActivityLogService) *ActivityLogController {
	return &ActivityLogController{Logs: l}
}

// GET /activity?limit=50
func (ac *ActivityLogController) Recent(c *gin.Context) {
	uid := c.GetUint("userID")

	limit := 50
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	logs, err := ac.Logs.Recent(uid, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
