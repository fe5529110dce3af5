package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

type Config struct {
	Path string // SQLite database file path
}

func NewConnection(config Config) (*DB, error) {
	// busy_timeout lets concurrent writers queue instead of failing with
	// SQLITE_BUSY; foreign_keys enforces the cart_items/fridge_items FKs.
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on&_journal_mode=WAL", config.Path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer; keeping one connection serializes
	// write transactions in-process instead of bouncing on the driver.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}

// RunMigrations runs all pending database migrations
func (db *DB) RunMigrations() error {
	m := &migrator{db: db.DB}
	return m.run()
}

// GetMigrationStatus shows the current migration status
func (db *DB) GetMigrationStatus() error {
	m := &migrator{db: db.DB}
	return m.status()
}
