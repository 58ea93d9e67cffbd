package models

import "gorm.io/gorm"

// WorkoutTemplate is a curated, always-public routine users can copy.
type WorkoutTemplate struct {
	gorm.Model
	Name        string `gorm:"not null"`
	Description string `gorm:"type:text"`
	Level       string `gorm:"size:16"` // "beginner"|"intermediate"|"advanced"
	DurationMin int
	Exercises   []TemplateExercise
}

type TemplateExercise struct {
	gorm.Model
	WorkoutTemplateID uint `gorm:"index;not null"`
	ExerciseID        uint `gorm:"index;not null"`
	ExerciseName      string
	Position          int
	Sets              int
	Reps              int
}
