package model

import "time"

// EditablePostInfo is part of a blog post that can be edited
type EditablePostInfo struct {
	Slug        string `gorm:"type:text;uniqueIndex;not null" json:"slug" binding:"required,min=5,lowercase"`
	Title       string `gorm:"type:text" json:"title" binding:"required,min=5"`
	Author      string `gorm:"type:text" json:"author" binding:"required"`
	Category    string `gorm:"type:text" json:"category" binding:"required"`
	Description string `gorm:"type:text" json:"description" binding:"required,min=10"`
	ImageURL    string `gorm:"type:text" json:"image_url" binding:"required"`
	ImageHint   string `gorm:"type:text" json:"image_hint" binding:"max=40"`
	Content     string `gorm:"type:text" json:"content" binding:"required,min=50"`
}

// BlogPost is gorm model for store blog post data in DB
type BlogPost struct {
	ID uint `gorm:"primaryKey;autoIncrement;->" json:"id"`
	EditablePostInfo
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
}
