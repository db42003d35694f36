package setup

import (
	"log/slog"

	"sleep-tracker/app"
	"sleep-tracker/database"
	"sleep-tracker/services"
)

// InitDatabase acquires the shared sleep database stored under dataDir
func InitDatabase(dataDir string, logger *slog.Logger) (*database.SleepDatabase, error) {
	sleepDB, err := database.GetInstance(database.NewDirContext(dataDir))
	if err != nil {
		return nil, err
	}

	logger.Info("database initialized", "path", sleepDB.Path())
	return sleepDB, nil
}

// InitApp initializes the application with all dependencies
func InitApp(sleepDB *database.SleepDatabase, logger *slog.Logger) *app.App {
	tracker := services.NewSleepTrackerService(sleepDB.SleepDatabaseDao())
	return app.New(tracker, logger)
}
