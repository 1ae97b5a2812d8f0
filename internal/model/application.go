package model

import "time"

// Application represents one candidate applying to a job. Rows are immutable
// once created.
type Application struct {
	ID    uint `gorm:"primaryKey;autoIncrement;->" json:"id"`
	JobID uint `gorm:"not null;index" json:"job_id"`
	Job   Job  `gorm:"foreignKey:JobID;references:ID" json:"-"`

	Name      string    `gorm:"type:text" json:"name" binding:"required,min=2"`
	Email     string    `gorm:"type:text" json:"email" binding:"required,email"`
	Phone     *string   `gorm:"type:text" json:"phone"`
	CVURL     string    `gorm:"type:text" json:"cv_url" binding:"required"`
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
}
