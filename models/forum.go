package models

import "gorm.io/gorm"

type ForumPost struct {
	gorm.Model
	UserID     uint   `gorm:"index;not null"`
	AuthorName string
	Title      string `gorm:"not null"`
	Body       string `gorm:"type:text;not null"`
	Category   string `gorm:"size:32"` // "general"|"nutrition"|"training"|"motivation"
	Likes      int    `gorm:"default:0"`
	Comments   []ForumComment
}

type ForumComment struct {
	gorm.Model
	ForumPostID uint `gorm:"index;not null"`
	UserID      uint `gorm:"index;not null"`
	AuthorName  string
	Body        string `gorm:"type:text;not null"`
}
