package database

import (
	"fmt"
	"sync"
	"sync/atomic"
)

const (
	// DatabaseName is the file the sleep history lives in
	DatabaseName = "sleep_history_database"
	// SchemaVersion is bumped whenever an entity changes shape
	SchemaVersion = 1
)

// SleepDatabase is the process-wide handle to the sleep history.
type SleepDatabase struct {
	db  *DB
	dao *SleepNightDao
}

// SleepDatabaseDao returns the data-access object for tracked nights
func (s *SleepDatabase) SleepDatabaseDao() *SleepNightDao {
	return s.dao
}

// Path returns the file backing the handle
func (s *SleepDatabase) Path() string {
	return s.db.Path()
}

var (
	instance   atomic.Pointer[SleepDatabase]
	instanceMu sync.Mutex

	// replaced in tests to observe construction
	buildSleepDatabase = newSleepDatabase
)

func sleepDatabaseConfig() Config {
	return Config{
		Name:     DatabaseName,
		Version:  SchemaVersion,
		Entities: []Entity{SleepNightEntity},
		Policy:   MigrationDestructive,
	}
}

func newSleepDatabase(appCtx AppContext) (*SleepDatabase, error) {
	db, err := Build(appCtx, sleepDatabaseConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to build sleep database: %w", err)
	}
	return &SleepDatabase{db: db, dao: NewSleepNightDao(db)}, nil
}

// GetInstance returns the shared SleepDatabase, building it on first use.
// The handle lives for the rest of the process; appCtx only matters for the
// call that builds it, but it is validated on every call. A failed build is
// not remembered, so the next call tries again.
func GetInstance(appCtx AppContext) (*SleepDatabase, error) {
	if _, err := resolvePath(appCtx, DatabaseName); err != nil {
		return nil, err
	}

	if db := instance.Load(); db != nil {
		return db, nil
	}

	instanceMu.Lock()
	defer instanceMu.Unlock()

	if db := instance.Load(); db != nil {
		return db, nil
	}

	db, err := buildSleepDatabase(appCtx)
	if err != nil {
		return nil, err
	}
	instance.Store(db)
	return db, nil
}
