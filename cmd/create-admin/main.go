// Command create-admin provisions an admin account from the command line,
// for environments where ADMIN_EMAIL/ADMIN_PASSWORD are not set at boot.
package main

import (
	"flag"

	_ "github.com/joho/godotenv/autoload"

	"github.com/khanhnnhnvn/pythonvietnam/internal/database"
	"github.com/khanhnnhnvn/pythonvietnam/internal/logging"
)

func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	logger := logging.NewLogger()
	if *email == "" || *password == "" {
		logger.Fatal("both -email and -password are required")
	}

	db, err := database.GetMainDB(logger)
	if err != nil {
		logger.WithError(err).Fatal("database setup failed")
	}
	defer db.Close()

	if err := db.EnsureAdmin(*email, *password, logger); err != nil {
		logger.WithError(err).Fatal("create admin failed")
	}
	logger.Info("admin account ready")
}
