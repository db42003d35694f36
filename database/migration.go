package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
)

// MigrationPolicy decides what happens when the schema version stored in the
// file differs from the declared one.
type MigrationPolicy int

const (
	// MigrationDestructive drops every table and recreates the declared schema.
	MigrationDestructive MigrationPolicy = iota
	// MigrationIncremental applies registered Migration steps in order.
	MigrationIncremental
	// MigrationNone refuses to open a mismatched file.
	MigrationNone
)

func (p MigrationPolicy) String() string {
	switch p {
	case MigrationDestructive:
		return "destructive"
	case MigrationIncremental:
		return "incremental"
	case MigrationNone:
		return "none"
	default:
		return fmt.Sprintf("MigrationPolicy(%d)", int(p))
	}
}

func (p MigrationPolicy) valid() bool {
	return p >= MigrationDestructive && p <= MigrationNone
}

// Migration upgrades a schema from one version to the next
type Migration struct {
	From int
	To   int
	SQL  string
}

type schemaObject struct {
	kind string
	name string
}

// reconcile brings the on-disk schema to cfg.Version
func (db *DB) reconcile(cfg Config) error {
	current, err := db.userVersion()
	if err != nil {
		return err
	}

	if current == cfg.Version {
		return db.Transaction(func(tx *sql.Tx) error {
			return createEntities(tx, cfg.Entities)
		})
	}

	objects, err := db.schemaObjects()
	if err != nil {
		return err
	}

	// Fresh file
	if current == 0 && len(objects) == 0 {
		slog.Debug("creating schema", "path", db.path, "version", cfg.Version)
		return db.Transaction(func(tx *sql.Tx) error {
			if err := createEntities(tx, cfg.Entities); err != nil {
				return err
			}
			return setUserVersion(tx, cfg.Version)
		})
	}

	switch cfg.Policy {
	case MigrationDestructive:
		slog.Warn("schema version mismatch, rebuilding database",
			"path", db.path, "found", current, "expected", cfg.Version)
		return db.rebuild(objects, cfg)
	case MigrationIncremental:
		return db.migrate(current, cfg)
	default:
		return fmt.Errorf("%w: found %d, expected %d", ErrSchemaMismatch, current, cfg.Version)
	}
}

func (db *DB) rebuild(objects []schemaObject, cfg Config) error {
	return db.Transaction(func(tx *sql.Tx) error {
		// Foreign keys between dropped tables are only checked at commit
		if _, err := tx.Exec("PRAGMA defer_foreign_keys = ON"); err != nil {
			return fmt.Errorf("failed to defer foreign keys: %w", err)
		}

		for _, obj := range objects {
			if obj.kind != "view" {
				continue
			}
			if _, err := tx.Exec("DROP VIEW IF EXISTS "+quoteIdent(obj.name)); err != nil {
				return fmt.Errorf("failed to drop view %s: %w", obj.name, err)
			}
		}
		for _, obj := range objects {
			if obj.kind != "table" {
				continue
			}
			if _, err := tx.Exec("DROP TABLE IF EXISTS "+quoteIdent(obj.name)); err != nil {
				return fmt.Errorf("failed to drop table %s: %w", obj.name, err)
			}
		}

		if err := createEntities(tx, cfg.Entities); err != nil {
			return err
		}
		return setUserVersion(tx, cfg.Version)
	})
}

func (db *DB) migrate(current int, cfg Config) error {
	if current > cfg.Version {
		return fmt.Errorf("%w: cannot downgrade from %d to %d", ErrMigrationMissing, current, cfg.Version)
	}

	steps := make(map[int]Migration, len(cfg.Migrations))
	for _, m := range cfg.Migrations {
		steps[m.From] = m
	}

	var path []Migration
	for v := current; v < cfg.Version; {
		m, ok := steps[v]
		if !ok || m.To <= v || m.To > cfg.Version {
			return fmt.Errorf("%w: from %d to %d", ErrMigrationMissing, v, cfg.Version)
		}
		path = append(path, m)
		v = m.To
	}

	return db.Transaction(func(tx *sql.Tx) error {
		for _, m := range path {
			slog.Info("applying migration", "path", db.path, "from", m.From, "to", m.To)
			if _, err := tx.Exec(m.SQL); err != nil {
				return fmt.Errorf("migration %d->%d failed: %w", m.From, m.To, err)
			}
		}
		return setUserVersion(tx, cfg.Version)
	})
}

// quoteIdent quotes an SQL identifier, doubling embedded quotes
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func createEntities(tx *sql.Tx, entities []Entity) error {
	for _, e := range entities {
		for _, stmt := range e.Schema {
			if _, err := tx.Exec(stmt); err != nil {
				return fmt.Errorf("failed to create %s: %w", e.Name, err)
			}
		}
	}
	return nil
}

func (db *DB) userVersion() (int, error) {
	var v int
	if err := db.QueryRow("PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return v, nil
}

func setUserVersion(tx *sql.Tx, version int) error {
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", version)); err != nil {
		return fmt.Errorf("failed to write schema version: %w", err)
	}
	return nil
}

// schemaObjects lists user tables and views, skipping sqlite internals
func (db *DB) schemaObjects() ([]schemaObject, error) {
	rows, err := db.Query(`
		SELECT type, name FROM sqlite_master
		WHERE type IN ('table', 'view') AND name NOT LIKE 'sqlite\_%' ESCAPE '\'
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list schema objects: %w", err)
	}
	defer rows.Close()

	var objects []schemaObject
	for rows.Next() {
		var obj schemaObject
		if err := rows.Scan(&obj.kind, &obj.name); err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}
	return objects, rows.Err()
}
