package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type NutritionService struct {
	db    *gorm.DB
	foods *FoodService
}

func NewNutritionService(db *gorm.DB, foods *FoodService) *NutritionService {
	return &NutritionService{db: db, foods: foods}
}

type MealItemRequest struct {
	FoodID   uint    `json:"food_id" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
	Unit     string  `json:"unit" binding:"required,oneof=g ml oz cup piece"`
}

type MealRequest struct {
	Type  string            `json:"type" binding:"required,oneof=breakfast lunch dinner snack"`
	Items []MealItemRequest `json:"items" binding:"required,min=1,dive"`
}

type DailyTotals struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
}

// FoodResolver looks up a Food by id. The calculator takes it as a
// capability so the arithmetic stays free of data-access concerns.
type FoodResolver func(id uint) (*models.Food, error)

// RoundCalories follows nutrition-label convention: whole kcal.
func RoundCalories(v float64) float64 { return math.Round(v) }

// RoundMacro rounds grams to one decimal place.
func RoundMacro(v float64) float64 { return math.Round(v*10) / 10 }

// ComputeEntryTotals resolves every food line item to its per-100g profile
// and derives item, meal and daily totals. Any missing food reference fails
// the whole computation: callers must persist all of it or none of it.
//
// Per item: multiplier = quantity/100, each nutrient scaled independently.
// Meal totals sum the already-rounded item calories so displayed totals
// stay consistent with the line items a user sees.
func ComputeEntryTotals(meals []MealRequest, resolve FoodResolver) ([]models.Meal, DailyTotals, error) {
	out := make([]models.Meal, 0, len(meals))
	var day DailyTotals

	for _, m := range meals {
		meal := models.Meal{Type: m.Type}
		for _, it := range m.Items {
			food, err := resolve(it.FoodID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, ErrNotFound) {
					return nil, DailyTotals{}, fmt.Errorf("%w: id %d", ErrFoodNotFound, it.FoodID)
				}
				return nil, DailyTotals{}, err
			}

			multiplier := it.Quantity / 100.0
			item := models.MealFoodItem{
				FoodID:        it.FoodID,
				FoodName:      food.Name,
				Quantity:      it.Quantity,
				Unit:          it.Unit,
				Calories:      RoundCalories(food.CaloriesPer100g * multiplier),
				Protein:       RoundMacro(food.ProteinPer100g * multiplier),
				Carbohydrates: RoundMacro(food.CarbohydratesPer100g * multiplier),
				Fat:           RoundMacro(food.FatPer100g * multiplier),
			}
			meal.TotalCalories += item.Calories
			meal.Items = append(meal.Items, item)

			day.Calories += item.Calories
			day.Protein += item.Protein
			day.Carbohydrates += item.Carbohydrates
			day.Fat += item.Fat
		}
		out = append(out, meal)
	}

	day.Calories = RoundCalories(day.Calories)
	day.Protein = RoundMacro(day.Protein)
	day.Carbohydrates = RoundMacro(day.Carbohydrates)
	day.Fat = RoundMacro(day.Fat)
	return out, day, nil
}

// LogEntry upserts the user's nutrition entry for the given date. The
// previous day's meals are replaced wholesale and all derived totals are
// recomputed from current Food rows; nothing is patched incrementally.
func (s *NutritionService) LogEntry(userID uint, date time.Time, meals []MealRequest) (*models.NutritionEntry, error) {
	resolve := func(id uint) (*models.Food, error) {
		return s.foods.FindByID(userID, id)
	}
	computed, totals, err := ComputeEntryTotals(meals, resolve)
	if err != nil {
		return nil, err
	}

	day := dayStart(date)
	var entry models.NutritionEntry

	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND date = ?", userID, day).First(&entry)
		if res.Error != nil {
			if !errors.Is(res.Error, gorm.ErrRecordNotFound) {
				return res.Error
			}
			entry = models.NutritionEntry{UserID: userID, Date: day}
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		} else {
			// drop old meals and their items before re-creating
			var oldMeals []models.Meal
			if err := tx.Where("nutrition_entry_id = ?", entry.ID).Find(&oldMeals).Error; err != nil {
				return err
			}
			for _, om := range oldMeals {
				if err := tx.Where("meal_id = ?", om.ID).Delete(&models.MealFoodItem{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("nutrition_entry_id = ?", entry.ID).Delete(&models.Meal{}).Error; err != nil {
				return err
			}
		}

		for i := range computed {
			computed[i].NutritionEntryID = entry.ID
			if err := tx.Create(&computed[i]).Error; err != nil {
				return err
			}
		}

		return tx.Model(&entry).Updates(map[string]interface{}{
			"total_calories":      totals.Calories,
			"total_protein":       totals.Protein,
			"total_carbohydrates": totals.Carbohydrates,
			"total_fat":           totals.Fat,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetEntryByDate(userID, day)
}

func (s *NutritionService) GetEntryByDate(userID uint, date time.Time) (*models.NutritionEntry, error) {
	var entry models.NutritionEntry
	err := s.db.
		Preload("Meals.Items").
		Where("user_id = ? AND date = ?", userID, dayStart(date)).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (s *NutritionService) ListEntries(userID uint, from, to time.Time) ([]models.NutritionEntry, error) {
	var entries []models.NutritionEntry
	err := s.db.
		Preload("Meals.Items").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, dayStart(from), dayStart(to)).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

func (s *NutritionService) DeleteEntry(userID uint, date time.Time) error {
	var entry models.NutritionEntry
	if err := s.db.Where("user_id = ? AND date = ?", userID, dayStart(date)).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var meals []models.Meal
		if err := tx.Where("nutrition_entry_id = ?", entry.ID).Find(&meals).Error; err != nil {
			return err
		}
		for _, m := range meals {
			if err := tx.Where("meal_id = ?", m.ID).Delete(&models.MealFoodItem{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("nutrition_entry_id = ?", entry.ID).Delete(&models.Meal{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entry).Error
	})
}

// TodayTotals feeds the dashboard; zero totals if nothing logged yet.
func (s *NutritionService) TodayTotals(userID uint) (DailyTotals, error) {
	entry, err := s.GetEntryByDate(userID, time.Now())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return DailyTotals{}, nil
		}
		return DailyTotals{}, err
	}
	return DailyTotals{
		Calories:      entry.TotalCalories,
		Protein:       entry.TotalProtein,
		Carbohydrates: entry.TotalCarbohydrates,
		Fat:           entry.TotalFat,
	}, nil
}

func dayStart(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}
