package configsdatabase

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/josemeldlrs1103/graduacionjosemelendez/configs"
	"github.com/josemeldlrs1103/graduacionjosemelendez/configs/configslog"
)

// gormConfig is shared by Connect and its tests. TranslateError makes the
// postgres driver map unique violations to gorm.ErrDuplicatedKey, which the
// admin handler relies on to answer 409 on a concurrent slug collision.
func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}
}

// Connect opens the Postgres connection described by the configuration and
// returns the handle. The handle is owned by the caller and injected into
// repositories; this package keeps no singleton.
func Connect(cfg *configs.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("configsdatabase: open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("configsdatabase: pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("configsdatabase: ping: %w", err)
	}

	configslog.SLog.Info("database connection established")
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.SLog.Warnw("database close failed", "error", err)
	}
}
