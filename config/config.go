package config

import (
	"os"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config stores all runtime configuration, loaded once at startup.
type Config struct {
	Port      string
	GinMode   string
	DBPath    string
	JWTSecret []byte
	UploadDir string
}

// Load reads configuration from the environment, with .env support for
// local development.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "5001"),
		GinMode:   os.Getenv("GIN_MODE"),
		DBPath:    getEnv("DB_PATH", "rnjlogistic.db"),
		JWTSecret: []byte(getEnv("JWT_SECRET", "rnj_logistic_super_secret_2024")),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// OpenDB opens the sqlite database behind the configured path.
func OpenDB(c *Config) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(c.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}
