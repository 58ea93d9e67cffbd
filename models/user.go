package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email          string `gorm:"uniqueIndex;not null"`
	Password       string `gorm:"not null"`
	FirstName      string
	LastName       string
	Birthday       time.Time
	Height         float64 // cm
	Weight         float64 // kg
	FitnessGoals   string  // comma-separated, e.g. "lose_weight,build_muscle"
	ProfilePicture string
	ResetToken     string
	ResetTokenExp  time.Time
	Disabled       bool `gorm:"default:false"`
}
