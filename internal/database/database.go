package database

import (
	"fmt"
	"log"
	"time"

	"github.com/carlosryandeveloper/AgroTrilha/internal/config"
	"github.com/carlosryandeveloper/AgroTrilha/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Connect opens the database and creates the schema. The whole
// open+migrate step is retried with a fixed delay so a database
// container that is still starting does not kill us on the way up; the
// last error is surfaced when the retries run out.
func Connect(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= cfg.ConnectRetries; attempt++ {
		db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
		if err == nil {
			if err = Migrate(db); err == nil {
				return db, nil
			}
		}
		lastErr = err
		log.Printf("database not ready (attempt %d/%d): %v", attempt, cfg.ConnectRetries, err)
		time.Sleep(cfg.RetryDelay())
	}
	return nil, fmt.Errorf("database not ready after %d attempts: %w", cfg.ConnectRetries, lastErr)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Template{},
		&model.Phase{},
		&model.Activity{},
		&model.Requirement{},
		&model.Decision{},
		&model.ActivityRequirement{},
		&model.ActivityDecision{},
		&model.Project{},
		&model.ChecklistItem{},
		&model.ProjectMember{},
		&model.AuditLog{},
	)
}
