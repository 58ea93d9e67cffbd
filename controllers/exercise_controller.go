package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	Exercises *services.ExerciseService
}

func NewExerciseController(e *services.ExerciseService) *ExerciseController {
	return &ExerciseController{Exercises: e}
}

// GET /exercises?q=press&category=strength&muscle_group=chest
func (ec *ExerciseController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	exercises, err := ec.Exercises.List(uid, c.Query("q"), c.Query("category"), c.Query("muscle_group"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

func (ec *ExerciseController) Get(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	exercise, err := ec.Exercises.Get(uid, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

func (ec *ExerciseController) Create(c *gin.Context) {
	uid := c.GetUint("userID")
	var in services.ExerciseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	exercise, err := ec.Exercises.Create(uid, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

func (ec *ExerciseController) Update(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in services.ExerciseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	exercise, err := ec.Exercises.Update(uid, id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

func (ec *ExerciseController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := ec.Exercises.Delete(uid, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
