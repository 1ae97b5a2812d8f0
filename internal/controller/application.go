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

type applicationRequest struct {
	Name  string  `json:"name" binding:"required,min=2"`
	Email string  `json:"email" binding:"required,email"`
	Phone *string `json:"phone"`
	CVURL string  `json:"cv_url" binding:"required"`
}

// CreateApplication records an application for the :slug job. No account is
// needed; applicants only supply their contact details and CV.
func (ct *Controller) CreateApplication(c *gin.Context) {
	var job model.Job
	err := ct.DB.DB.First(&job, "slug = ?", c.Param("slug")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "job not found"})
		return
	}
	if err != nil {
		ct.Logger.WithError(err).Error("load job failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to apply"})
		return
	}

	var req applicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: validation.Describe(err)})
		return
	}

	application := model.Application{
		JobID: job.ID,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		CVURL: req.CVURL,
	}
	if err := ct.DB.DB.Create(&application).Error; err != nil {
		ct.Logger.WithError(err).Error("create application failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to apply"})
		return
	}
	c.JSON(http.StatusCreated, application)
}

// ListApplications returns the applicants of the :slug job to whoever
// manages that job.
func (ct *Controller) ListApplications(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "authentication required"})
		return
	}

	var job model.Job
	err = ct.DB.DB.First(&job, "slug = ?", c.Param("slug")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "job not found"})
		return
	}
	if err != nil {
		ct.Logger.WithError(err).Error("load job failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to list applications"})
		return
	}

	if !authz.CanViewApplications(&user, &job) {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{Error: "you do not manage this job"})
		return
	}

	applications := []model.Application{}
	if err := ct.DB.DB.Where("job_id = ?", job.ID).Order("created_at DESC").Find(&applications).Error; err != nil {
		ct.Logger.WithError(err).Error("list applications failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to list applications"})
		return
	}
	c.JSON(http.StatusOK, applications)
}
