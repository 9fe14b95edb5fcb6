package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// slotRecord is one persisted store slot: the whole state of a store,
// JSON-encoded, under its named key.
type slotRecord struct {
	Key       string `gorm:"primaryKey"`
	Version   int
	Data      []byte
	UpdatedAt time.Time
}

func (slotRecord) TableName() string { return "store_slots" }

// SQLiteEngine is the default Engine: a single local sqlite file holding
// one row per store slot. Pure-Go driver, no server, no network.
type SQLiteEngine struct {
	db *gorm.DB
}

// OpenSQLite opens (creating if needed) the local database file and
// migrates the slot table.
func OpenSQLite(path string) (*SQLiteEngine, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_busy_timeout=5000", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.AutoMigrate(&slotRecord{}); err != nil {
		return nil, fmt.Errorf("migrate slot table: %w", err)
	}

	log.WithField("path", path).Info("local storage opened")
	return &SQLiteEngine{db: db}, nil
}

// Close releases the underlying database handle.
func (e *SQLiteEngine) Close() error {
	sqlDB, err := e.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Load implements Engine.
func (e *SQLiteEngine) Load(ctx context.Context, slot string, version int, v any) (bool, error) {
	var rec slotRecord
	err := e.db.WithContext(ctx).First(&rec, "key = ?", slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, &PersistenceError{Op: "load", Slot: slot, Err: err}
	}
	if rec.Version != version {
		return false, &PersistenceError{
			Op:   "load",
			Slot: slot,
			Err:  fmt.Errorf("%w: have %d, want %d", ErrSchemaVersion, rec.Version, version),
		}
	}
	if err := json.Unmarshal(rec.Data, v); err != nil {
		return false, &PersistenceError{Op: "load", Slot: slot, Err: err}
	}
	return true, nil
}

// Save implements Engine.
func (e *SQLiteEngine) Save(ctx context.Context, slot string, version int, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &PersistenceError{Op: "save", Slot: slot, Err: err}
	}
	rec := slotRecord{Key: slot, Version: version, Data: data, UpdatedAt: time.Now().UTC()}
	if err := e.db.WithContext(ctx).Save(&rec).Error; err != nil {
		return &PersistenceError{Op: "save", Slot: slot, Err: err}
	}
	return nil
}
