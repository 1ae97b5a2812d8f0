package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/khanhnnhnvn/pythonvietnam/internal/model"
	"github.com/khanhnnhnvn/pythonvietnam/internal/utilities"
	"github.com/khanhnnhnvn/pythonvietnam/internal/validation"
)

// ListPosts returns every blog post, newest first.
func (ct *Controller) ListPosts(c *gin.Context) {
	var posts []model.BlogPost
	if err := ct.DB.DB.Order("created_at DESC").Find(&posts).Error; err != nil {
		ct.Logger.WithError(err).Error("list posts failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to list posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPostBySlug returns one post or 404.
func (ct *Controller) GetPostBySlug(c *gin.Context) {
	var post model.BlogPost
	err := ct.DB.DB.First(&post, "slug = ?", c.Param("slug")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "post not found"})
		return
	}
	if err != nil {
		ct.Logger.WithError(err).Error("get post failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to get post"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePost creates a blog post. Admin only, enforced by routing.
func (ct *Controller) CreatePost(c *gin.Context) {
	var info model.EditablePostInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: validation.Describe(err)})
		return
	}

	post := model.BlogPost{EditablePostInfo: info}
	if err := ct.DB.DB.Create(&post).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: "slug already in use"})
			return
		}
		ct.Logger.WithError(err).Error("create post failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to create post"})
		return
	}
	c.JSON(http.StatusCreated, post)
}

// UpdatePost replaces the editable fields of a post.
func (ct *Controller) UpdatePost(c *gin.Context) {
	var post model.BlogPost
	err := ct.DB.DB.First(&post, "id = ?", c.Param("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "post not found"})
		return
	}
	if err != nil {
		ct.Logger.WithError(err).Error("load post failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to update post"})
		return
	}

	var info model.EditablePostInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: validation.Describe(err)})
		return
	}

	post.EditablePostInfo = info
	if err := ct.DB.DB.Save(&post).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: "slug already in use"})
			return
		}
		ct.Logger.WithError(err).Error("update post failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to update post"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost removes a post.
func (ct *Controller) DeletePost(c *gin.Context) {
	res := ct.DB.DB.Delete(&model.BlogPost{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		ct.Logger.WithError(res.Error).Error("delete post failed")
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "failed to delete post"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "post not found"})
		return
	}
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "post deleted"})
}
