// Package authz holds the pure role and ownership decision rules. Nothing in
// here performs I/O; every rule denies when the caller is absent.
package authz

import "github.com/khanhnnhnvn/pythonvietnam/internal/model"

// CanManageJob reports whether user may edit or delete job: admins always,
// otherwise only the owning account.
func CanManageJob(user *model.User, job *model.Job) bool {
	if user == nil || job == nil {
		return false
	}
	return user.Role == model.RoleAdmin || user.ID == job.UserID
}

// CanViewApplications reports whether user may read the applicant list of
// job. Viewing applicants is a management capability, so the rule is the
// same as CanManageJob.
func CanViewApplications(user *model.User, job *model.Job) bool {
	return CanManageJob(user, job)
}

// CanWriteBlogPost reports whether user may create, edit or delete blog posts.
func CanWriteBlogPost(user *model.User) bool {
	return user != nil && user.Role == model.RoleAdmin
}

// CanApproveEmployer reports whether user may decide employer applications.
func CanApproveEmployer(user *model.User) bool {
	return user != nil && user.Role == model.RoleAdmin
}
