package models

import "gorm.io/gorm"

type Reminder struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	Type     string `gorm:"size:32"` // "workout"|"meal"|"hydration"|"weigh_in"
	Message  string
	TimeOfDay string `gorm:"size:8"`  // "HH:MM"
	Weekdays  string `gorm:"size:64"` // comma-separated, e.g. "mon,wed,fri"
	Enabled   bool   `gorm:"default:true"`
}
