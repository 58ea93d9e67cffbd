package models

import "gorm.io/gorm"

// MealPlan is a named plan of foods per day-of-week and meal slot.
type MealPlan struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	Name        string `gorm:"not null"`
	Description string `gorm:"type:text"`
	Items       []MealPlanItem
}

type MealPlanItem struct {
	gorm.Model
	MealPlanID uint   `gorm:"index;not null"`
	DayOfWeek  string `gorm:"size:16"` // "monday".."sunday"
	MealType   string `gorm:"size:16"` // "breakfast"|"lunch"|"dinner"|"snack"
	FoodID     uint   `gorm:"index;not null"`
	FoodName   string
	Quantity   float64
	Unit       string `gorm:"size:8"`
}
