package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/khanhnnhnvn/pythonvietnam/internal/model"
)

// ErrNotPending means the application was already decided (or never existed),
// so the requested transition did not happen.
var ErrNotPending = errors.New("employer application is not pending")

// ApproveEmployerApplication flips a pending application to approved and
// promotes the applicant to the employer role in one transaction. The status
// update is conditional on the current status, so a concurrent decision makes
// exactly one caller win; the loser gets ErrNotPending and no side effects.
func (d *DBinstanceStruct) ApproveEmployerApplication(id uint) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.EmployerApplication{}).
			Where("id = ? AND status = ?", id, model.EmployerStatusPending).
			Update("status", model.EmployerStatusApproved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotPending
		}

		var app model.EmployerApplication
		if err := tx.First(&app, id).Error; err != nil {
			return err
		}

		roleRes := tx.Model(&model.User{}).
			Where("id = ?", app.UserID).
			Update("role", model.RoleEmployer)
		if roleRes.Error != nil {
			return roleRes.Error
		}
		if roleRes.RowsAffected == 0 {
			return errors.New("applicant account not found")
		}
		return nil
	})
}

// RejectEmployerApplication flips a pending application to rejected. The
// applicant keeps their current role and may apply again later.
func (d *DBinstanceStruct) RejectEmployerApplication(id uint) error {
	res := d.DB.Model(&model.EmployerApplication{}).
		Where("id = ? AND status = ?", id, model.EmployerStatusPending).
		Update("status", model.EmployerStatusRejected)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotPending
	}
	return nil
}

// HasOpenEmployerApplication reports whether the user already has a pending
// or approved application. Rejected applications do not count, so a rejected
// applicant can try again.
func (d *DBinstanceStruct) HasOpenEmployerApplication(userID string) (bool, error) {
	var count int64
	err := d.DB.Model(&model.EmployerApplication{}).
		Where("user_id = ? AND status IN ?", userID, []string{model.EmployerStatusPending, model.EmployerStatusApproved}).
		Count(&count).Error
	return count > 0, err
}

// ListEmployerApplications returns every application joined with the
// applicant's name and email for the admin review screen, newest first.
func (d *DBinstanceStruct) ListEmployerApplications() ([]model.EmployerApplicationRow, error) {
	var rows []model.EmployerApplicationRow
	err := d.DB.Model(&model.EmployerApplication{}).
		Select("employer_applications.*, users.name AS user_name, users.email AS user_email").
		Joins("LEFT JOIN users ON users.id = employer_applications.user_id").
		Order("employer_applications.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
