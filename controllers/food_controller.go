package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Foods       *services.FoodService
	Recognition *services.RecognitionService
}

func NewFoodController(foods *services.FoodService, rec *services.RecognitionService) *FoodController {
	return &FoodController{Foods: foods, Recognition: rec}
}

// GET /foods?q=apple&category=fruits
func (fc *FoodController) List(c *gin.Context) {
	uid := c.GetUint("userID")
	foods, err := fc.Foods.Search(uid, c.Query("q"), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (fc *FoodController) Get(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	food, err := fc.Foods.FindByID(uid, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

func (fc *FoodController) Create(c *gin.Context) {
	uid := c.GetUint("userID")
	var in services.FoodInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	food, err := fc.Foods.Create(uid, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, food)
}

func (fc *FoodController) Update(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var in services.FoodInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	food, err := fc.Foods.Update(uid, id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

func (fc *FoodController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := fc.Foods.Delete(uid, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /foods/recognize  { "image_base64": "data:…" }
func (fc *FoodController) Recognize(c *gin.Context) {
	uid := c.GetUint("userID")
	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if fc.Recognition == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "food recognition is not configured"})
		return
	}
	foods, err := fc.Recognition.RecognizeFood(uid, req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}
