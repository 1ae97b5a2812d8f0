// Package auth implements the session token, cookie handling and the Google
// sign-in exchange.
package auth

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session"

// SessionDuration is how long an issued session stays valid.
const SessionDuration = 5 * 24 * time.Hour

const tokenIssuer = "python-vietnam"

// ErrInvalidToken covers every way a presented token can fail verification.
var ErrInvalidToken = errors.New("invalid session token")

func secretKey() []byte {
	return []byte(os.Getenv("SECRET_KEY"))
}

// GenerateToken signs a session token for the given user id.
func GenerateToken(userID string) (string, error) {
	if len(secretKey()) == 0 {
		return "", errors.New("SECRET_KEY is not configured")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(SessionDuration)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken verifies signature, issuer and expiry and returns the user
// id. Without a configured secret every token is invalid.
func ValidateToken(tokenString string) (string, error) {
	if len(secretKey()) == 0 {
		return "", ErrInvalidToken
	}
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secretKey(), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Issuer != tokenIssuer || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// SetSessionCookie attaches the session token to the response. The cookie is
// http-only always and secure outside debug mode.
func SetSessionCookie(c *gin.Context, token string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   !gin.IsDebugging(),
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   !gin.IsDebugging(),
		SameSite: http.SameSiteLaxMode,
	})
}
