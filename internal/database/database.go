// Package database owns the gorm connection, schema migration and the
// multi-step domain transactions that must not be split across handlers.
package database

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/khanhnnhnvn/pythonvietnam/internal/model"
	"github.com/khanhnnhnvn/pythonvietnam/internal/utilities"
)

// DBinstanceStruct wraps the gorm handle so controllers depend on this
// package instead of gorm directly.
type DBinstanceStruct struct {
	DB *gorm.DB
}

// DBConfig carries everything needed to open a postgres connection.
type DBConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string

	// ConnectionStr, when non-empty, wins over the individual fields.
	ConnectionStr string
}

// LoadDBConfig reads the connection settings from the environment.
func LoadDBConfig() DBConfig {
	cfg := DBConfig{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		Username: os.Getenv("DB_USERNAME"),
		Password: os.Getenv("DB_PASSWORD"),
		Database: os.Getenv("DB_DATABASE"),
	}
	if os.Getenv("USE_CONNECTION_STR") == "true" {
		cfg.ConnectionStr = os.Getenv("DB_CONNECTION_STR")
	}
	return cfg
}

func (cfg DBConfig) dsn() string {
	if cfg.ConnectionStr != "" {
		return cfg.ConnectionStr
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Host, cfg.Username, cfg.Password, cfg.Database, cfg.Port,
	)
}

// NewDBInstance opens a connection, runs migrations and seeds the admin
// account when the environment provides one.
func NewDBInstance(cfg DBConfig, logger *logrus.Logger) (*DBinstanceStruct, error) {
	db, err := gorm.Open(postgres.Open(cfg.dsn()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	instance := &DBinstanceStruct{DB: db}
	if err := instance.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	if err := instance.seedAdmin(logger); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}
	return instance, nil
}

// GetMainDB builds the production instance from the environment.
func GetMainDB(logger *logrus.Logger) (*DBinstanceStruct, error) {
	return NewDBInstance(LoadDBConfig(), logger)
}

// Migrate applies auto migration for every registered model.
func (d *DBinstanceStruct) Migrate() error {
	return d.DB.AutoMigrate(model.MigrateAble...)
}

// Health pings the underlying connection.
func (d *DBinstanceStruct) Health() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close releases the underlying connection pool.
func (d *DBinstanceStruct) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// seedAdmin creates the password-login admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Existing accounts are left untouched so a changed env
// password never silently rewrites credentials.
func (d *DBinstanceStruct) seedAdmin(logger *logrus.Logger) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}
	return d.EnsureAdmin(email, password, logger)
}

// EnsureAdmin creates an admin user with a bcrypt password hash unless an
// account with that email already exists.
func (d *DBinstanceStruct) EnsureAdmin(email, password string, logger *logrus.Logger) error {
	var count int64
	if err := d.DB.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utilities.HashPassword(password)
	if err != nil {
		return err
	}
	admin := model.User{
		ID:           "local|" + email,
		Email:        &email,
		Name:         "Administrator",
		Role:         model.RoleAdmin,
		PasswordHash: &hash,
	}
	if err := d.DB.Create(&admin).Error; err != nil {
		return err
	}
	if logger != nil {
		logger.WithField("email", email).Info("admin account created")
	}
	return nil
}
