package model

import "time"

var (
	// RoleUser is the default role assigned at first sign-in
	RoleUser = "user"
	// RoleEmployer is granted when an employer application is approved
	RoleEmployer = "employer"
	// RoleAdmin can manage every resource
	RoleAdmin = "admin"
)

// User is gorm model for an account resolved from the identity provider.
// ID is the provider subject and never changes after the first sign-in.
type User struct {
	ID       string  `gorm:"primaryKey;<-:create" json:"id"`
	Email    *string `gorm:"uniqueIndex" json:"email"`
	Name     string  `json:"name"`
	PhotoURL string  `json:"photo_url"`
	Role     string  `gorm:"not null;default:user" json:"role"`

	// PasswordHash is only set for locally provisioned accounts (the seeded
	// admin); provider accounts never get one.
	PasswordHash *string `json:"-"`

	CreatedAt   time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
	LastLoginAt time.Time `gorm:"type:timestamp" json:"last_login_at"`
}
