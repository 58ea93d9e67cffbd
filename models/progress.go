package models

import (
	"time"

	"gorm.io/gorm"
)

// Progress is a body-measurement snapshot, one per user per day.
type Progress struct {
	gorm.Model
	UserID     uint      `gorm:"index;not null"`
	Date       time.Time `gorm:"index;not null"` // truncated to local midnight
	WeightKg   float64
	BodyFatPct float64
	ChestCm    float64
	WaistCm    float64
	HipsCm     float64
	ArmsCm     float64
	ThighsCm   float64
	Notes      string `gorm:"type:text"`
}
