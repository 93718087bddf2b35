package migration

import (
	"fmt"

	"gorm.io/gorm"

	"extinsia/internal/infrastructure/persistence/models"
	"extinsia/internal/shared/logger"
)

// GormAutoMigrateStrategy lets GORM derive the schema from the model
// structs. Suitable for development and the sqlite driver.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	s.logger.Infow("starting GORM auto migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	s.logger.Infow("auto migration completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// AutoMigrateModels lists every persisted model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CustomerModel{},
		&models.ProductModel{},
		&models.ExtinguisherModel{},
		&models.TicketModel{},
		&models.UserModel{},
	}
}
