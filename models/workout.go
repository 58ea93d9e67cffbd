package models

import (
	"time"

	"gorm.io/gorm"
)

// WorkoutRoutine is a user-authored plan: an ordered list of exercises with
// target sets/reps.
type WorkoutRoutine struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	Name        string `gorm:"not null"`
	Description string `gorm:"type:text"`
	IsPublic    bool   `gorm:"default:false"`
	Exercises   []RoutineExercise
}

type RoutineExercise struct {
	gorm.Model
	WorkoutRoutineID uint `gorm:"index;not null"`
	ExerciseID       uint `gorm:"index;not null"`
	ExerciseName     string
	Position         int
	Sets             int
	Reps             int
	RestSeconds      int
}

// WorkoutSession is a performed workout.
type WorkoutSession struct {
	gorm.Model
	UserID         uint      `gorm:"index;not null"`
	RoutineID      *uint     `gorm:"index"` // nil for ad-hoc sessions
	Date           time.Time `gorm:"index;not null"`
	DurationMin    float64
	CaloriesBurned float64
	Notes          string `gorm:"type:text"`
	Exercises      []SessionExercise
}

type SessionExercise struct {
	gorm.Model
	WorkoutSessionID uint `gorm:"index;not null"`
	ExerciseID       uint `gorm:"index;not null"`
	ExerciseName     string
	Sets             int
	Reps             int
	WeightKg         float64
}
