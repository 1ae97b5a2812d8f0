package model

import "time"

var (
	// EmployerStatusPending indicates the application awaits an admin decision
	EmployerStatusPending = "pending"
	// EmployerStatusApproved is terminal; the user was granted the employer role
	EmployerStatusApproved = "approved"
	// EmployerStatusRejected is terminal
	EmployerStatusRejected = "rejected"
)

// EmployerApplication is a user's request to become an employer.
// UserID is intentionally a plain indexed column: the approve transaction
// owns the coupling between application status and user role.
type EmployerApplication struct {
	ID     uint   `gorm:"primaryKey;autoIncrement;->" json:"id"`
	UserID string `gorm:"not null;index;<-:create" json:"user_id"`

	CompanyName         string    `gorm:"type:text" json:"company_name" binding:"required,min=2"`
	Website             *string   `gorm:"type:text" json:"website" binding:"omitempty,url"`
	CompanyIntroduction string    `gorm:"type:text" json:"company_introduction" binding:"required,min=20"`
	ContactInfo         string    `gorm:"type:text" json:"contact_info" binding:"required,min=5"`
	Status              string    `gorm:"type:text;not null;default:pending" json:"status"`
	CreatedAt           time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
}

// EmployerApplicationRow is the admin review listing shape, joining the
// applicant's current name and email.
type EmployerApplicationRow struct {
	EmployerApplication
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}
