package db

import (
	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/pkg/logger"
	"gorm.io/gorm"
)

// Migrate creates or updates every table, including the composite unique
// indexes that back cart and wishlist merge semantics.
func Migrate(conn *gorm.DB) error {
	logger.Info("Running database migrations...")

	models := model.All()
	if err := conn.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}
