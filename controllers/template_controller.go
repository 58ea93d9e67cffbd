package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type TemplateController struct {
	Templates *services.TemplateService
}

func NewTemplateController(t *services.TemplateService) *TemplateController {
	return &TemplateController{Templates: t}
}

// GET /templates?level=beginner
func (tc *TemplateController) List(c *gin.Context) {
	templates, err := tc.Templates.List(c.Query("level"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (tc *TemplateController) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	tmpl, err := tc.Templates.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tmpl)
}

// POST /templates/:id/copy — instantiate the template as the caller's routine.
func (tc *TemplateController) Copy(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	routine, err := tc.Templates.CopyToRoutine(uid, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, routine)
}
