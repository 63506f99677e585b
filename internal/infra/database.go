package infra

import (
	"fmt"
	"time"

	"vetsoft/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens a GORM connection to PostgreSQL. logLevel is one of
// silent, error, warn or info and controls GORM's own SQL logging.
func NewDatabase(dsn, logLevel string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(logLevel)),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	default:
		return logger.Silent
	}
}

// RunMigrations creates or updates every table, then applies the constraints
// AutoMigrate cannot express.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches adds CHECK constraints mirroring the validators. Each
// statement is guarded so re-running on an already-patched DB is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ table, name, check string }{
		{"mascotas", "chk_mascotas_peso_positivo", "peso > 0"},
		{"medicamentos", "chk_medicamentos_dosis_rango", "dosis BETWEEN 1 AND 10"},
		{"productos", "chk_productos_precio_positivo", "precio > 0"},
	}

	for _, p := range patches {
		sql := fmt.Sprintf(`DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN
    ALTER TABLE %s ADD CONSTRAINT %s CHECK (%s);
  END IF;
END $$`, p.name, p.table, p.name, p.check)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.name, err)
		}
	}
	return nil
}
