// Package utilities contain utility code that use across the package
package utilities

import (
	"errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/khanhnnhnvn/pythonvietnam/internal/model"
)

// ErrorResponse is the uniform failure shape every handler returns
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the uniform success-without-data shape
type MessageResponse struct {
	Message string `json:"message"`
}

// ExtractUser extracts the user model from Gin context. It returns an error
// when the request carries no resolved user; callers must treat that as an
// anonymous caller.
func ExtractUser(c *gin.Context) (model.User, error) {
	u, _ := c.Get("user")
	if u == nil {
		return model.User{}, errors.New("user information not provided")
	}

	user, ok := u.(model.User)
	if !ok {
		return model.User{}, errors.New("failed to assert user type")
	}
	return user, nil
}

// HashPassword hashes given password with bcrypt default cost
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash with a candidate password
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
