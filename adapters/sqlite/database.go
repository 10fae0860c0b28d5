// Package sqlite holds the gorm/SQLite backed user and session stores for single-node deployments.
package sqlite

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type userModel struct {
	Role     string `gorm:"primaryKey;size:16"`
	ID       int64  `gorm:"primaryKey;autoIncrement:false"`
	Username string `gorm:"not null"`
	Password string `gorm:"not null"`
}

func (userModel) TableName() string { return "users" }

type sessionModel struct {
	UserID    int64     `gorm:"primaryKey;autoIncrement:false"`
	Key       string    `gorm:"column:session_key;not null;uniqueIndex:idx_sessions_session_key"`
	CreatedAt time.Time `gorm:"not null"`
}

func (sessionModel) TableName() string { return "sessions" }

// Open creates a SQLite database connection with basic tuning and migrates the schema.
func Open(path string, logSQL bool) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	gormLogger := logger.Default
	if !logSQL {
		gormLogger = gormLogger.LogMode(logger.Silent)
	}

	db, err := gorm.Open(sqlite.Open(path+"?_busy_timeout=5000"), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	_, _ = sqlDB.Exec("PRAGMA journal_mode = WAL;")
	_, _ = sqlDB.Exec("PRAGMA synchronous = NORMAL;")

	if err := db.AutoMigrate(&userModel{}, &sessionModel{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
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
