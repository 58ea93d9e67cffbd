package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Progress *services.ProgressService
}

func NewProgressController(p *services.ProgressService) *ProgressController {
	return &ProgressController{Progress: p}
}

// POST /progress — one measurement row per day; same-day posts overwrite.
func (pc *ProgressController) Upsert(c *gin.Context) {
	uid := c.GetUint("userID")
	var in services.MeasurementInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := pc.Progress.Upsert(uid, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (pc *ProgressController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	rows, err := pc.Progress.List(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (pc *ProgressController) Latest(c *gin.Context) {
	uid := c.GetUint("userID")
	row, err := pc.Progress.Latest(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (pc *ProgressController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := pc.Progress.Delete(uid, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
