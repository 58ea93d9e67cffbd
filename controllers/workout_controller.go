package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	Workouts *services.WorkoutService
}

func NewWorkoutController(w *services.WorkoutService) *WorkoutController {
	return &WorkoutController{Workouts: w}
}

func (wc *WorkoutController) CreateRoutine(c *gin.Context) {
	uid := c.GetUint("userID")
	var in services.RoutineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	routine, err := wc.Workouts.CreateRoutine(uid, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, routine)
}

func (wc *WorkoutController) ListRoutines(c *gin.Context) {
	uid := c.GetUint("userID")
	routines, err := wc.Workouts.ListRoutines(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, routines)
}

func (wc *WorkoutController) GetRoutine(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	routine, err := wc.Workouts.GetRoutine(uid, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, routine)
}

func (wc *WorkoutController) UpdateRoutine(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in services.RoutineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	routine, err := wc.Workouts.UpdateRoutine(uid, id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, routine)
}

func (wc *WorkoutController) DeleteRoutine(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := wc.Workouts.DeleteRoutine(uid, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (wc *WorkoutController) LogSession(c *gin.Context) {
	uid := c.GetUint("userID")
	var in services.SessionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, err := wc.Workouts.LogSession(uid, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GET /workouts/sessions?from=YYYY-MM-DD&to=YYYY-MM-DD — both bounds optional.
func (wc *WorkoutController) ListSessions(c *gin.Context) {
	uid := c.GetUint("userID")

	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date"})
			return
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' date"})
			return
		}
		to = &t
	}

	sessions, err := wc.Workouts.ListSessions(uid, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (wc *WorkoutController) GetSession(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	session, err := wc.Workouts.GetSession(uid, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (wc *WorkoutController) DeleteSession(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := wc.Workouts.DeleteSession(uid, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
