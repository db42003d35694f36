package services

import "sleep-tracker/models"

// SleepNightRepository defines the interface for sleep night data access
type SleepNightRepository interface {
	Insert(night *models.SleepNight) error
	Update(night *models.SleepNight) error
	Get(key int64) (*models.SleepNight, error)
	Clear() error
	GetAllNights() ([]models.SleepNight, error)
	GetTonight() (*models.SleepNight, error)
}
