package models

import "time"

// ActivityLog is one audit row per authenticated request.
type ActivityLog struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index"`
	Method    string `gorm:"size:8"`
	Path      string `gorm:"size:255"`
	Status    int
	CreatedAt time.Time
}
