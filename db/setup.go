package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/centavo-dev/centavo/internal/logger"
	"github.com/centavo-dev/centavo/internal/models"
)

func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func Migrate(database *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Transaction{},
		&models.Goal{},
	}

	migrator := database.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := database.AutoMigrate(table); err != nil {
				return err
			}
			logger.Sugar().Infof("created table for %T", table)
		}
	}

	return nil
}
