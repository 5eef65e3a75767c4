package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yukikurage/assignment-api/internal/models"
	"gorm.io/gorm"
)

// Tables lists every model owned by the service
func Tables() []interface{} {
	return []interface{}{
		&models.TaskStatus{},
		&models.Assignment{},
	}
}

// Migrate creates user_tasks and task_statuses when they do not exist yet
func Migrate() error {
	return MigrateDatabase(DB)
}

// MigrateDatabase runs the schema bootstrap against db
func MigrateDatabase(db *gorm.DB) error {
	logrus.Info("Running schema bootstrap...")
	if err := db.AutoMigrate(Tables()...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Schema bootstrap completed")
	return nil
}
