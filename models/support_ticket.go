package models

import "gorm.io/gorm"

type SupportTicket struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null"`
	Number  string `gorm:"uniqueIndex;size:32"`
	Subject string `gorm:"not null"`
	Message string `gorm:"type:text;not null"`
	Status  string `gorm:"size:16;default:'open'"` // "open"|"closed"
}
