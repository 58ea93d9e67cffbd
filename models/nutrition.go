package models

import (
	"time"

	"gorm.io/gorm"
)

// NutritionEntry is one user's one-day log of meals. There is at most one
// entry per (user, date); logging the same day again replaces it wholesale.
type NutritionEntry struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"index;not null"` // truncated to local midnight
	Meals  []Meal

	// Daily totals, recomputed in full on every write.
	TotalCalories      float64
	TotalProtein       float64
	TotalCarbohydrates float64
	TotalFat           float64
}

type Meal struct {
	gorm.Model
	NutritionEntryID uint   `gorm:"index;not null"`
	Type             string `gorm:"size:16;not null"` // "breakfast"|"lunch"|"dinner"|"snack"
	Items            []MealFoodItem
	TotalCalories    float64
}

// MealFoodItem stores the nutrition snapshot taken at write time from the
// referenced Food's per-100g values; it is never re-derived afterwards.
type MealFoodItem struct {
	gorm.Model
	MealID   uint `gorm:"index;not null"`
	FoodID   uint `gorm:"index;not null"`
	FoodName string
	Quantity float64
	Unit     string `gorm:"size:8"` // "g"|"ml"|"oz"|"cup"|"piece"

	Calories      float64
	Protein       float64
	Carbohydrates float64
	Fat           float64
}
