// Package database owns the on-device SQLite store for the sleep tracker.
//
// The store is reached through a single process-wide handle:
//
//	sleepDB, err := database.GetInstance(database.NewDirContext(dataDir))
//	if err != nil {
//		return err
//	}
//	nights, err := sleepDB.SleepDatabaseDao().GetAllNights()
//
// The first successful GetInstance call opens the "sleep_history_database"
// file and later calls return the same *SleepDatabase. The handle is never
// closed while the process runs.
//
// # Schema versions
//
// The schema version is kept in SQLite's user_version header. When the file
// carries a different version than the code declares, the MigrationPolicy in
// the Config decides what happens. The sleep database uses
// MigrationDestructive: existing tables are dropped and recreated empty.
// Build can be used directly for other databases that want
// MigrationIncremental or MigrationNone.
package database
