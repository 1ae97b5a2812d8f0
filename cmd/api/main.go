package main

import (
	"context"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/khanhnnhnvn/pythonvietnam/internal/aiassist"
	"github.com/khanhnnhnvn/pythonvietnam/internal/controller"
	"github.com/khanhnnhnvn/pythonvietnam/internal/database"
	"github.com/khanhnnhnvn/pythonvietnam/internal/logging"
	"github.com/khanhnnhnvn/pythonvietnam/internal/server"
	"github.com/khanhnnhnvn/pythonvietnam/internal/storage"
)

func main() {
	logger := logging.NewLogger()

	db, err := database.GetMainDB(logger)
	if err != nil {
		logger.WithError(err).Fatal("database setup failed")
	}
	defer db.Close()

	saver, err := storage.FromEnv(context.Background())
	if err != nil {
		logger.WithError(err).Fatal("storage setup failed")
	}

	uploadDir := ""
	if local, ok := saver.(*storage.LocalSaver); ok {
		uploadDir = local.Dir()
	}

	ai := aiassist.NewClientFromEnv()
	if !ai.Configured() {
		logger.Warn("OPENAI_API_KEY not set, ai features disabled")
	}

	ct := controller.New(db, logger, saver, ai)
	r := server.New(ct, db, logger, uploadDir)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.WithField("port", port).Info("starting server")
	if err := r.Run(":" + port); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
