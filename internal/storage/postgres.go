// Package storage provides the Postgres-backed store implementations behind
// the service interfaces, plus the on-disk attachment store.
package storage

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Elliot-87/YOUTHCENTRE/internal/config"
	"github.com/Elliot-87/YOUTHCENTRE/internal/logging"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
)

// Connect opens the database and migrates the schema.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.EmployerProfile{},
		&models.JobseekerProfile{},
		&models.Vacancy{},
		&models.Application{},
		&models.AdvisoryCategory{},
		&models.AdvisoryArticle{},
		&models.ReferralPartner{},
		&models.ReferralRequest{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logging.GetGlobalLogger().Info("Database connected and migrated", map[string]interface{}{
		"host": cfg.Database.Host,
		"name": cfg.Database.Name,
	})
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping verifies the connection is still alive. Used by readiness checks.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
