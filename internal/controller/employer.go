package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/khanhnnhnvn/pythonvietnam/internal/database"
	"github.com/khanhnnhnvn/pythonvietnam/internal/model"
	"github.com/khanhnnhnvn/pythonvietnam/internal/utilities"
	"github.com/khanhnnhnvn/pythonvietnam/internal/validation"
)

type employerApplicationRequest struct {
	CompanyName         string  `json:"company_name" binding:"required,min=2"`
	Website             *string `json:"website" binding:"omitempty,url"`
	CompanyIntroduction string  `json:"company_introduction" binding:"required,min=20"`
	ContactInfo         string  `json:"contact_info" binding:"required,min=5"`
}

// ApplyAsEmployer files an employer application for the signed-in user. A
// user can hold at most one application that is not rejected; a rejected
// applicant may try again.
func (ct *Controller) ApplyAsEmployer(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "authentication required"})
		return
	}

	var req employerApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: validation.Describe(err)})
		return
	}

	open, err := ct.DB.HasOpenEmployerApplication(user.ID)
	if err != nil {
		ct.Logger.WithError(err).Error("check employer application failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to apply"})
		return
	}
	if open {
		c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: "you already have an employer application"})
		return
	}

	application := model.EmployerApplication{
		UserID:              user.ID,
		CompanyName:         req.CompanyName,
		Website:             req.Website,
		CompanyIntroduction: req.CompanyIntroduction,
		ContactInfo:         req.ContactInfo,
		Status:              model.EmployerStatusPending,
	}
	if err := ct.DB.DB.Create(&application).Error; err != nil {
		ct.Logger.WithError(err).Error("create employer application failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to apply"})
		return
	}
	c.JSON(http.StatusCreated, application)
}

// ListEmployerApplications shows every application with applicant details.
// Admin only, enforced by routing.
func (ct *Controller) ListEmployerApplications(c *gin.Context) {
	rows, err := ct.DB.ListEmployerApplications()
	if err != nil {
		ct.Logger.WithError(err).Error("list employer applications failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to list applications"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ApproveEmployerApplication approves a pending application and promotes the
// applicant in one transaction.
func (ct *Controller) ApproveEmployerApplication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := ct.DB.ApproveEmployerApplication(id)
	if errors.Is(err, database.ErrNotPending) {
		c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: "application is not pending"})
		return
	}
	if err != nil {
		ct.Logger.WithError(err).Error("approve employer application failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to approve application"})
		return
	}
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "application approved"})
}

// RejectEmployerApplication rejects a pending application.
func (ct *Controller) RejectEmployerApplication(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := ct.DB.RejectEmployerApplication(id)
	if errors.Is(err, database.ErrNotPending) {
		c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: "application is not pending"})
		return
	}
	if err != nil {
		ct.Logger.WithError(err).Error("reject employer application failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to reject application"})
		return
	}
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "application rejected"})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return uint(id), true
}
