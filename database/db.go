package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidContext   = fmt.Errorf("%w: application context is nil or has no storage directory", ErrInvalidArgument)
	ErrSchemaMismatch   = errors.New("schema version mismatch")
	ErrMigrationMissing = errors.New("no migration path between schema versions")
)

// Config declares a database the way it should look on disk.
type Config struct {
	Name       string
	Version    int
	Entities   []Entity
	Policy     MigrationPolicy
	Migrations []Migration
}

func (c Config) validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: database name is empty", ErrInvalidArgument)
	}
	if c.Version < 1 {
		return fmt.Errorf("%w: schema version must be >= 1, got %d", ErrInvalidArgument, c.Version)
	}
	if len(c.Entities) == 0 {
		return fmt.Errorf("%w: no entities declared", ErrInvalidArgument)
	}
	if !c.Policy.valid() {
		return fmt.Errorf("%w: unknown migration policy %d", ErrInvalidArgument, int(c.Policy))
	}
	return nil
}

// DB is an open SQLite database whose schema matches the Config it was built from.
type DB struct {
	*sql.DB
	path    string
	version int
}

// Build opens the database named by cfg inside the storage area of appCtx and
// brings its schema to cfg.Version according to cfg.Policy.
func Build(appCtx AppContext, cfg Config) (*DB, error) {
	path, err := resolvePath(appCtx, cfg.Name)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	db, err := open(path)
	if err != nil {
		return nil, err
	}

	if err := db.reconcile(cfg); err != nil {
		db.Close()
		return nil, err
	}
	db.version = cfg.Version

	slog.Info("database ready", "path", path, "version", cfg.Version, "policy", cfg.Policy.String())
	return db, nil
}

func open(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	return &DB{DB: db, path: dbPath}, nil
}

// dsn escapes dbPath into a file: URI so characters such as '?' or '#' stay
// part of the path. Pragmas go in the DSN so every pooled connection gets them.
func dsn(dbPath string) string {
	return "file:" + (&url.URL{Path: dbPath}).String() +
		"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"
}

// Path returns the database file path
func (db *DB) Path() string {
	return db.path
}

// Version returns the schema version the database was built for
func (db *DB) Version() int {
	return db.version
}

// Transaction wraps fn in a database transaction
func (db *DB) Transaction(fn func(*sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			slog.Error("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
