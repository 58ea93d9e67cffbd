package services

import (
	"errors"

	"backend/models"

	"gorm.io/gorm"
)

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

type FoodInput struct {
	Name                 string  `json:"name" binding:"required"`
	Category             string  `json:"category" binding:"omitempty,oneof=fruits vegetables grains protein dairy snacks beverages other"`
	CaloriesPer100g      float64 `json:"calories_per_100g" binding:"gte=0"`
	ProteinPer100g       float64 `json:"protein_per_100g" binding:"gte=0"`
	CarbohydratesPer100g float64 `json:"carbohydrates_per_100g" binding:"gte=0"`
	FatPer100g           float64 `json:"fat_per_100g" binding:"gte=0"`
	SodiumPer100g        float64 `json:"sodium_per_100g" binding:"gte=0"`
	SugarPer100g         float64 `json:"sugar_per_100g" binding:"gte=0"`
	FiberPer100g         float64 `json:"fiber_per_100g" binding:"gte=0"`
	IsPublic             *bool   `json:"is_public"`
}

// FindByID resolves a food the user may see: public entries or their own.
func (s *FoodService) FindByID(userID, foodID uint) (*models.Food, error) {
	var food models.Food
	err := s.db.
		Where("id = ? AND (is_public = ? OR created_by = ?)", foodID, true, userID).
		First(&food).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) Search(userID uint, query, category string) ([]models.Food, error) {
	q := s.db.Where("is_public = ? OR created_by = ?", true, userID)
	if query != "" {
		q = q.Where("name ILIKE ?", "%"+query+"%")
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var foods []models.Food
	err := q.Order("name ASC").Limit(50).Find(&foods).Error
	return foods, err
}

func (s *FoodService) Create(userID uint, in FoodInput) (*models.Food, error) {
	food := models.Food{
		Name:                 in.Name,
		Category:             in.Category,
		CaloriesPer100g:      in.CaloriesPer100g,
		ProteinPer100g:       in.ProteinPer100g,
		CarbohydratesPer100g: in.CarbohydratesPer100g,
		FatPer100g:           in.FatPer100g,
		SodiumPer100g:        in.SodiumPer100g,
		SugarPer100g:         in.SugarPer100g,
		FiberPer100g:         in.FiberPer100g,
		IsPublic:             false,
		CreatedBy:            userID,
	}
	if in.IsPublic != nil {
		food.IsPublic = *in.IsPublic
	}
	if err := s.db.Create(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// Update and Delete only touch foods the caller created.
func (s *FoodService) Update(userID, foodID uint, in FoodInput) (*models.Food, error) {
	var food models.Food
	if err := s.db.Where("id = ? AND created_by = ?", foodID, userID).First(&food).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	food.Name = in.Name
	food.Category = in.Category
	food.CaloriesPer100g = in.CaloriesPer100g
	food.ProteinPer100g = in.ProteinPer100g
	food.CarbohydratesPer100g = in.CarbohydratesPer100g
	food.FatPer100g = in.FatPer100g
	food.SodiumPer100g = in.SodiumPer100g
	food.SugarPer100g = in.SugarPer100g
	food.FiberPer100g = in.FiberPer100g
	if in.IsPublic != nil {
		food.IsPublic = *in.IsPublic
	}
	if err := s.db.Save(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) Delete(userID, foodID uint) error {
	res := s.db.Where("id = ? AND created_by = ?", foodID, userID).Delete(&models.Food{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
