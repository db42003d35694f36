package database

// Entity is a table declaration. Schema statements must be idempotent
// (CREATE ... IF NOT EXISTS) since they also run against an up-to-date file.
type Entity struct {
	Name   string
	Schema []string
}

const sleepNightTable = "daily_sleep_quality_table"

// SleepNightEntity backs models.SleepNight
var SleepNightEntity = Entity{
	Name: sleepNightTable,
	Schema: []string{
		`CREATE TABLE IF NOT EXISTS daily_sleep_quality_table (
			nightId INTEGER PRIMARY KEY AUTOINCREMENT,
			start_time_milli INTEGER NOT NULL,
			end_time_milli INTEGER NOT NULL,
			quality_rating INTEGER NOT NULL DEFAULT -1
		)`,
	},
}
