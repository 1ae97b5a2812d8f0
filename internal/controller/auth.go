package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"github.com/khanhnnhnvn/pythonvietnam/internal/auth"
	"github.com/khanhnnhnvn/pythonvietnam/internal/model"
	"github.com/khanhnnhnvn/pythonvietnam/internal/utilities"
	"github.com/khanhnnhnvn/pythonvietnam/internal/validation"
)

type googleLoginRequest struct {
	Code string `json:"code" binding:"required"`
}

// GoogleLogin exchanges an authorization code for a Google profile, upserts
// the account and starts a session.
func (ct *Controller) GoogleLogin(c *gin.Context) {
	var req googleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: validation.Describe(err)})
		return
	}

	profile, err := auth.ExchangeGoogleCode(c.Request.Context(), auth.GoogleOauthConfig(), req.Code)
	if err != nil {
		ct.Logger.WithError(err).Warn("google code exchange failed")
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "google sign-in failed"})
		return
	}

	user := model.User{
		ID:          "google-oauth2|" + profile.Subject,
		Name:        profile.Name,
		PhotoURL:    profile.Picture,
		Role:        model.RoleUser,
		LastLoginAt: time.Now(),
	}
	if profile.Email != "" {
		user.Email = &profile.Email
	}

	// Returning users keep their role; only profile fields refresh.
	err = ct.DB.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "photo_url", "email", "last_login_at"}),
	}).Create(&user).Error
	if err != nil {
		ct.Logger.WithError(err).Error("upsert user failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to sign in"})
		return
	}

	var stored model.User
	if err := ct.DB.DB.First(&stored, "id = ?", user.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to sign in"})
		return
	}

	ct.startSession(c, stored)
}

type localLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LocalLogin signs in password accounts, which in practice is the seeded
// admin. The error message never reveals whether the email exists.
func (ct *Controller) LocalLogin(c *gin.Context) {
	var req localLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: validation.Describe(err)})
		return
	}

	var user model.User
	err := ct.DB.DB.First(&user, "email = ?", req.Email).Error
	if err != nil || user.PasswordHash == nil || !utilities.CheckPassword(*user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "invalid email or password"})
		return
	}

	ct.DB.DB.Model(&user).Update("last_login_at", time.Now())
	ct.startSession(c, user)
}

// Logout clears the session cookie. The token itself stays valid until it
// expires; the cookie is the only place it lives.
func (ct *Controller) Logout(c *gin.Context) {
	auth.ClearSessionCookie(c)
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "signed out"})
}

// Me returns the signed-in account.
func (ct *Controller) Me(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "authentication required"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ct *Controller) startSession(c *gin.Context, user model.User) {
	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		ct.Logger.WithError(err).Error("sign session token failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to sign in"})
		return
	}
	auth.SetSessionCookie(c, token)
	c.JSON(http.StatusOK, user)
}
