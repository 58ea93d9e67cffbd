package models

import "gorm.io/gorm"

type Exercise struct {
	gorm.Model
	Name        string `gorm:"index;not null"`
	Category    string `gorm:"size:32"` // "strength"|"cardio"|"flexibility"|"balance"
	MuscleGroup string `gorm:"size:32"`
	Equipment   string `gorm:"size:64"`
	Difficulty  string `gorm:"size:16"` // "beginner"|"intermediate"|"advanced"
	Description string `gorm:"type:text"`
	IsPublic    bool   `gorm:"default:true"`
	CreatedBy   uint   `gorm:"index"`
}
