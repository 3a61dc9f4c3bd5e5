package config

import (
	"os"

	"quickdeliver-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret []byte

// Load reads an optional .env file and initializes settings from the
// environment.
func Load() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using process environment")
	}
	JWTSecret = []byte(getEnv("JWT_SECRET", "quickdeliver_super_secret_2025"))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the database and migrates the schema. The default DSN is an
// in-memory sqlite database: all marketplace state is process-lifetime only
// and resets on restart.
func InitDB() *gorm.DB {
	dsn := getEnv("QUICKDELIVER_DSN", ":memory:")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to open database")
	}

	// One connection: an in-memory sqlite database exists per connection,
	// and the marketplace has a single logical thread of control anyway.
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Fatal("failed to access database pool")
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to migrate database")
	}

	logrus.WithField("dsn", dsn).Info("database ready")
	return db
}
