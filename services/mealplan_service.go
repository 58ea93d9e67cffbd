package services

import (
	"errors"

	"backend/models"

	"gorm.io/gorm"
)

type MealPlanService struct {
	db    *gorm.DB
	foods *FoodService
}

func NewMealPlanService(db *gorm.DB, foods *FoodService) *MealPlanService {
	return &MealPlanService{db: db, foods: foods}
}

type MealPlanItemRequest struct {
	DayOfWeek string  `json:"day_of_week" binding:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	MealType  string  `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	FoodID    uint    `json:"food_id" binding:"required"`
	Quantity  float64 `json:"quantity" binding:"required,gt=0"`
	Unit      string  `json:"unit" binding:"required,oneof=g ml oz cup piece"`
}

type MealPlanInput struct {
	Name        string                `json:"name" binding:"required"`
	Description string                `json:"description"`
	Items       []MealPlanItemRequest `json:"items" binding:"dive"`
}

func (s *MealPlanService) buildItems(userID uint, reqs []MealPlanItemRequest) ([]models.MealPlanItem, error) {
	items := make([]models.MealPlanItem, 0, len(reqs))
	for _, r := range reqs {
		food, err := s.foods.FindByID(userID, r.FoodID)
		if err != nil {
			return nil, ErrFoodNotFound
		}
		items = append(items, models.MealPlanItem{
			DayOfWeek: r.DayOfWeek,
			MealType:  r.MealType,
			FoodID:    r.FoodID,
			FoodName:  food.Name,
			Quantity:  r.Quantity,
			Unit:      r.Unit,
		})
	}
	return items, nil
}

func (s *MealPlanService) Create(userID uint, in MealPlanInput) (*models.MealPlan, error) {
	items, err := s.buildItems(userID, in.Items)
	if err != nil {
		return nil, err
	}
	plan := models.MealPlan{
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Items:       items,
	}
	if err := s.db.Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *MealPlanService) Get(userID, id uint) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := s.db.
		Preload("Items").
		Where("id = ? AND user_id = ?", id, userID).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (s *MealPlanService) List(userID uint) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := s.db.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

func (s *MealPlanService) Update(userID, id uint, in MealPlanInput) (*models.MealPlan, error) {
	plan, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	items, err := s.buildItems(userID, in.Items)
	if err != nil {
		return nil, err
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		plan.Name = in.Name
		plan.Description = in.Description
		if err := tx.Model(plan).Select("name", "description").
			Updates(models.MealPlan{Name: plan.Name, Description: plan.Description}).Error; err != nil {
			return err
		}
		if err := tx.Where("meal_plan_id = ?", plan.ID).Delete(&models.MealPlanItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].MealPlanID = plan.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID, id)
}

func (s *MealPlanService) Delete(userID, id uint) error {
	plan, err := s.Get(userID, id)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_plan_id = ?", plan.ID).Delete(&models.MealPlanItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(plan).Error
	})
}
