package config

import (
	"fmt"

	"homecare-tracker/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// ConnectDB membuka koneksi gorm sesuai DB_DRIVER. Handle-nya dikembalikan,
// tidak disimpan di variabel global.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dialector = mysql.Open(cfg.DatabaseURL)
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseURL)
	case "sqlite":
		dialector = sqlite.Open(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	level := logger.Warn
	if cfg.IsDev() {
		level = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}
	return db, nil
}

// AllModels adalah daftar tabel yang di-migrate.
var AllModels = []interface{}{
	&models.Account{},
	&models.ClientProfile{},
	&models.HealthWorkerProfile{},
	&models.Bench{},
	&models.AppointmentStatus{},
	&models.Appointment{},
	&models.Questionnaire{},
	&models.Question{},
	&models.Answer{},
}

// Migrate membuat/menyesuaikan tabel lalu seed lookup appointment status.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	statuses := append([]models.AppointmentStatus(nil), models.DefaultAppointmentStatuses...)
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&statuses).Error; err != nil {
		return fmt.Errorf("seed appointment statuses: %w", err)
	}
	return nil
}
