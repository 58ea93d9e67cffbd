package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	GoalStatusActive    = "active"
	GoalStatusPaused    = "paused"
	GoalStatusCompleted = "completed"
	GoalStatusCancelled = "cancelled"
)

type Goal struct {
	gorm.Model
	UserID       uint   `gorm:"index;not null"`
	Title        string `gorm:"size:255;not null"`
	Description  string `gorm:"type:text"`
	Category     string `gorm:"size:32"` // "weight"|"strength"|"endurance"|"nutrition"|"habit"
	TargetValue  float64
	CurrentValue float64 `gorm:"default:0"`
	Unit         string  `gorm:"size:16"`
	Deadline     *time.Time
	Status       string `gorm:"size:16;default:'active'"`
	CompletedAt  *time.Time
	Milestones   []Milestone
	History      []GoalProgress
}

type Milestone struct {
	gorm.Model
	GoalID       uint `gorm:"index;not null"`
	Title        string
	TargetValue  float64
	Achieved     bool `gorm:"default:false"` // monotonic: never reset by progress updates
	AchievedDate *time.Time
}

// GoalProgress is one observed value in a goal's append-only history.
type GoalProgress struct {
	gorm.Model
	GoalID        uint      `gorm:"index;not null"`
	Date          time.Time `gorm:"not null"`
	Value         float64
	PreviousValue float64
	Notes         string `gorm:"type:text"`
}
