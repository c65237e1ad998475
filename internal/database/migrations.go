package database

import (
	"fmt"
	"log/slog"

	"control-system/internal/models"

	"gorm.io/gorm"
)

// RunMigrations выполняет миграции базы данных
func RunMigrations(db *gorm.DB) error {
	slog.Info("Starting database migration")

	if err := db.AutoMigrate(&models.Submission{}); err != nil {
		return fmt.Errorf("ошибка миграции: %w", err)
	}

	createIndexes(db)

	slog.Info("Database migration completed successfully")
	return nil
}

// createIndexes создает дополнительные индексы. Ошибки только логируются.
func createIndexes(db *gorm.DB) {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_control_submissions_created_desc ON control_submissions(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_control_submissions_failed ON control_submissions(created_at) WHERE status <> 'ok'",
	}

	for _, indexSQL := range indexes {
		if err := db.Exec(indexSQL).Error; err != nil {
			slog.Warn("Failed to create index", "sql", indexSQL, "error", err)
		}
	}
}
