package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Document is one persisted collection: a whole JSON document stored
// under a fixed string key. Writes always replace the full value, so a
// partial write can never leave a corrupted collection behind.
type Document struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}

// Store is the persistent key-value store backing the tracker. It is
// constructed once at startup and passed to the services that own the
// individual collections.
type Store struct {
	db *gorm.DB
}

// Open opens (and creates if needed) the store at the given file path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, fmt.Errorf("failed to migrate store: %w", err)
	}

	return &Store{db: db}, nil
}

// Get returns the document stored under key. The second return value
// reports whether the key exists.
func (s *Store) Get(key string) (string, bool, error) {
	var doc Document
	err := s.db.First(&doc, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return doc.Value, true, nil
}

// Put replaces the document stored under key.
func (s *Store) Put(key, value string) error {
	doc := Document{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&doc).Error
}

// Delete removes the document stored under key. Deleting a missing key
// is not an error.
func (s *Store) Delete(key string) error {
	return s.db.Delete(&Document{}, "key = ?", key).Error
}

// Close closes the underlying database.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
