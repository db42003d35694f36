package database

import (
	"database/sql"
	"fmt"

	"sleep-tracker/models"
)

// SleepNightDao is the data-access object for tracked nights
type SleepNightDao struct {
	db *DB
}

func NewSleepNightDao(db *DB) *SleepNightDao {
	return &SleepNightDao{db: db}
}

// Insert stores a new night and sets its NightID
func (d *SleepNightDao) Insert(night *models.SleepNight) error {
	res, err := d.db.Exec(`
		INSERT INTO daily_sleep_quality_table (start_time_milli, end_time_milli, quality_rating)
		VALUES (?, ?, ?)
	`, night.StartTimeMilli, night.EndTimeMilli, night.SleepQuality)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted night id: %w", err)
	}
	night.NightID = id
	return nil
}

// Update overwrites the row with night.NightID
func (d *SleepNightDao) Update(night *models.SleepNight) error {
	_, err := d.db.Exec(`
		UPDATE daily_sleep_quality_table SET
			start_time_milli = ?,
			end_time_milli = ?,
			quality_rating = ?
		WHERE nightId = ?
	`, night.StartTimeMilli, night.EndTimeMilli, night.SleepQuality, night.NightID)
	return err
}

// Get returns nil when no night has the given key
func (d *SleepNightDao) Get(key int64) (*models.SleepNight, error) {
	var night models.SleepNight
	err := d.db.QueryRow(`
		SELECT nightId, start_time_milli, end_time_milli, quality_rating
		FROM daily_sleep_quality_table
		WHERE nightId = ?
	`, key).Scan(&night.NightID, &night.StartTimeMilli, &night.EndTimeMilli, &night.SleepQuality)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &night, nil
}

// Clear deletes every night
func (d *SleepNightDao) Clear() error {
	_, err := d.db.Exec("DELETE FROM daily_sleep_quality_table")
	return err
}

// GetAllNights returns all nights, newest first
func (d *SleepNightDao) GetAllNights() ([]models.SleepNight, error) {
	rows, err := d.db.Query(`
		SELECT nightId, start_time_milli, end_time_milli, quality_rating
		FROM daily_sleep_quality_table
		ORDER BY nightId DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	nights := make([]models.SleepNight, 0)
	for rows.Next() {
		var night models.SleepNight
		if err := rows.Scan(&night.NightID, &night.StartTimeMilli, &night.EndTimeMilli, &night.SleepQuality); err != nil {
			return nil, err
		}
		nights = append(nights, night)
	}

	return nights, rows.Err()
}

// GetTonight returns the most recently inserted night, or nil if there is none
func (d *SleepNightDao) GetTonight() (*models.SleepNight, error) {
	var night models.SleepNight
	err := d.db.QueryRow(`
		SELECT nightId, start_time_milli, end_time_milli, quality_rating
		FROM daily_sleep_quality_table
		ORDER BY nightId DESC
		LIMIT 1
	`).Scan(&night.NightID, &night.StartTimeMilli, &night.EndTimeMilli, &night.SleepQuality)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &night, nil
}
