package config

import (
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database configured by DB_DRIVER/DB_DSN. The sqlite
// driver is the local-development default; mysql is what production
// deployments set.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	dsn := os.Getenv("DB_DSN")

	switch driver {
	case "mysql":
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		if dsn == "" {
			dsn = "eats.db"
		}
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}
}
