// Package server assembles the gin engine and its routes.
package server

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/khanhnnhnvn/pythonvietnam/internal/controller"
	"github.com/khanhnnhnvn/pythonvietnam/internal/database"
	"github.com/khanhnnhnvn/pythonvietnam/internal/validation"
)

// New builds the router with middleware, static file serving and all routes.
// uploadDir may be empty when uploads go to object storage.
func New(ct *controller.Controller, db *database.DBinstanceStruct, logger *logrus.Logger, uploadDir string) *gin.Engine {
	validation.Init()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))
	r.Use(cors.New(corsConfig()))

	if uploadDir != "" {
		r.Static("/uploads", uploadDir)
	}

	registerRoutes(r, ct, db)
	return r
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowCredentials = true
	if origins := os.Getenv("ALLOW_ORIGIN"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowOrigins = []string{"http://localhost:3000"}
	}
	return cfg
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
		})
		if c.Writer.Status() >= 500 {
			entry.Error("request failed")
		} else {
			entry.Debug("request handled")
		}
	}
}
