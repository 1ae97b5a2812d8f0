package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/khanhnnhnvn/pythonvietnam/internal/authz"
	"github.com/khanhnnhnvn/pythonvietnam/internal/model"
	"github.com/khanhnnhnvn/pythonvietnam/internal/utilities"
	"github.com/khanhnnhnvn/pythonvietnam/internal/validation"
)

// applicationCountSelect derives application_count without a second query.
const applicationCountSelect = "jobs.*, " +
	"(SELECT COUNT(*) FROM applications WHERE applications.job_id = jobs.id) AS application_count"

// ListJobs returns job listings, newest first. With ?scoped=true the result
// is restricted to what the caller manages: admins see everything, employers
// their own listings, anonymous callers an empty list.
func (ct *Controller) ListJobs(c *gin.Context) {
	query := ct.DB.DB.Model(&model.Job{}).
		Select(applicationCountSelect).
		Order("jobs.created_at DESC")

	if c.Query("scoped") == "true" {
		user, err := utilities.ExtractUser(c)
		if err != nil {
			c.JSON(http.StatusOK, []model.Job{})
			return
		}
		if user.Role != model.RoleAdmin {
			query = query.Where("jobs.user_id = ?", user.ID)
		}
	}

	jobs := []model.Job{}
	if err := query.Find(&jobs).Error; err != nil {
		ct.Logger.WithError(err).Error("list jobs failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to list jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJobBySlug returns one job listing or 404.
func (ct *Controller) GetJobBySlug(c *gin.Context) {
	var job model.Job
	err := ct.DB.DB.Model(&model.Job{}).
		Select(applicationCountSelect).
		First(&job, "slug = ?", c.Param("slug")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "job not found"})
		return
	}
	if err != nil {
		ct.Logger.WithError(err).Error("get job failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to get job"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob creates a listing owned by the caller. The owner is always the
// signed-in account, regardless of anything in the payload.
func (ct *Controller) CreateJob(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "authentication required"})
		return
	}

	var info model.EditableJobInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: validation.Describe(err)})
		return
	}

	job := model.Job{UserID: user.ID, EditableJobInfo: info}
	if err := ct.DB.DB.Create(&job).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: "slug already in use"})
			return
		}
		ct.Logger.WithError(err).Error("create job failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to create job"})
		return
	}
	c.JSON(http.StatusCreated, job)
}

// UpdateJob replaces the editable fields of a listing the caller manages.
func (ct *Controller) UpdateJob(c *gin.Context) {
	job, ok := ct.loadManagedJob(c)
	if !ok {
		return
	}

	var info model.EditableJobInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: validation.Describe(err)})
		return
	}

	job.EditableJobInfo = info
	if err := ct.DB.DB.Save(job).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: "slug already in use"})
			return
		}
		ct.Logger.WithError(err).Error("update job failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to update job"})
		return
	}
	c.JSON(http.StatusOK, job)
}

// DeleteJob removes a listing the caller manages, applications included.
func (ct *Controller) DeleteJob(c *gin.Context) {
	job, ok := ct.loadManagedJob(c)
	if !ok {
		return
	}

	if err := ct.DB.DB.Select("Applications").Delete(job).Error; err != nil {
		ct.Logger.WithError(err).Error("delete job failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to delete job"})
		return
	}
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "job deleted"})
}

// loadManagedJob fetches the :id job and enforces the management rule. On
// failure the response has already been written.
func (ct *Controller) loadManagedJob(c *gin.Context) (*model.Job, bool) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "authentication required"})
		return nil, false
	}

	var job model.Job
	err = ct.DB.DB.First(&job, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "job not found"})
		return nil, false
	}
	if err != nil {
		ct.Logger.WithError(err).Error("load job failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to load job"})
		return nil, false
	}

	if !authz.CanManageJob(&user, &job) {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: "you do not manage this job"})
		return nil, false
	}
	return &job, true
}
