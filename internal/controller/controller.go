// Package controller implements the HTTP handlers.
package controller

import (
	"github.com/sirupsen/logrus"

	"github.com/khanhnnhnvn/pythonvietnam/internal/aiassist"
	"github.com/khanhnnhnvn/pythonvietnam/internal/database"
	"github.com/khanhnnhnvn/pythonvietnam/internal/storage"
)

// Controller carries the shared dependencies of every handler.
type Controller struct {
	DB      *database.DBinstanceStruct
	Logger  *logrus.Logger
	Storage storage.Saver
	AI      *aiassist.Client
}

// New bundles the dependencies into a controller.
func New(db *database.DBinstanceStruct, logger *logrus.Logger, saver storage.Saver, ai *aiassist.Client) *Controller {
	return &Controller{DB: db, Logger: logger, Storage: saver, AI: ai}
}
