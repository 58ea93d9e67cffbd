package models

import (
	"time"

	"gorm.io/gorm"
)

type Report struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	Type        string `gorm:"size:32"` // "nutrition"|"workouts"|"progress"
	From        time.Time
	To          time.Time
	Status      string `gorm:"size:16;default:'pending'"` // "pending"|"completed"|"failed"
	ArtifactURL string
	CompletedAt *time.Time
}
