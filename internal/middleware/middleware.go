// Package middleware holds the gin middleware for session resolution, role
// gating and request size limits.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khanhnnhnvn/pythonvietnam/internal/auth"
	"github.com/khanhnnhnvn/pythonvietnam/internal/database"
	"github.com/khanhnnhnvn/pythonvietnam/internal/model"
	"github.com/khanhnnhnvn/pythonvietnam/internal/utilities"
)

// RequireAuth resolves the session cookie to a user row and aborts with 401
// when that fails at any step.
func RequireAuth(db *database.DBinstanceStruct) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveUser(c, db)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "authentication required"})
			return
		}
		c.Set("user", user)
		c.Next()
	}
}

// OptionalAuth resolves the session cookie when present but never rejects the
// request; anonymous callers simply carry no user.
func OptionalAuth(db *database.DBinstanceStruct) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := resolveUser(c, db); ok {
			c.Set("user", user)
		}
		c.Next()
	}
}

func resolveUser(c *gin.Context, db *database.DBinstanceStruct) (model.User, bool) {
	cookie, err := c.Cookie(auth.SessionCookieName)
	if err != nil || cookie == "" {
		return model.User{}, false
	}
	userID, err := auth.ValidateToken(cookie)
	if err != nil {
		return model.User{}, false
	}
	var user model.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		return model.User{}, false
	}
	return user, true
}

// CheckRole gates a route group to the listed roles. It must run after
// RequireAuth.
func CheckRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := utilities.ExtractUser(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: "authentication required"})
			return
		}
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, utilities.ErrorResponse{Error: "insufficient permissions"})
	}
}

// SizeLimit caps the request body at maxBytes.
func SizeLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
