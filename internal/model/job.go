package model

import "time"

var (
	// JobTypeFullTime is a permanent full-time position
	JobTypeFullTime = "full-time"
	// JobTypePartTime is a part-time position
	JobTypePartTime = "part-time"
	// JobTypeContract is a fixed-term contract position
	JobTypeContract = "contract"
)

// EditableJobInfo is part of a job listing that can be edited
type EditableJobInfo struct {
	Slug            string `gorm:"type:text;uniqueIndex;not null" json:"slug" binding:"required"`
	Title           string `gorm:"type:text" json:"title" binding:"required,min=5"`
	Company         string `gorm:"type:text" json:"company" binding:"required,min=2"`
	Location        string `gorm:"type:text" json:"location" binding:"required,min=2"`
	Type            string `gorm:"type:text" json:"type" binding:"required,oneof=full-time part-time contract"`
	Category        string `gorm:"type:text" json:"category" binding:"required,min=2"`
	Description     string `gorm:"type:text" json:"description" binding:"required,min=10"`
	CompanyLogoURL  string `gorm:"type:text" json:"company_logo_url" binding:"omitempty"`
	CompanyLogoHint string `gorm:"type:text" json:"company_logo_hint" binding:"max=40"`
}

// Job is gorm model for store job listing data in DB.
// UserID is the owning account and cannot change after creation.
type Job struct {
	ID     uint   `gorm:"primaryKey;autoIncrement;->" json:"id"`
	UserID string `gorm:"not null;index;<-:create" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID;references:ID" json:"-"`
	EditableJobInfo
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`

	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`

	// ApplicationCount is derived at query time, never stored.
	ApplicationCount int64 `gorm:"->;-:migration" json:"application_count"`
}
