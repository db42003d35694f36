package services

import (
	"fmt"
	"sync"
	"time"

	"sleep-tracker/models"
)

// SleepTrackerService handles starting, stopping and rating nights
type SleepTrackerService struct {
	repo SleepNightRepository
	now  func() time.Time

	// serializes read-then-write sequences on the newest night
	mu sync.Mutex
}

// NewSleepTrackerService creates a new sleep tracker service
func NewSleepTrackerService(repo SleepNightRepository) *SleepTrackerService {
	return &SleepTrackerService{
		repo: repo,
		now:  time.Now,
	}
}

// StartTracking opens a new night starting now
func (s *SleepTrackerService) StartTracking() (*models.SleepNight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tonight, err := s.repo.GetTonight()
	if err != nil {
		return nil, err
	}
	if tonight != nil && tonight.InProgress() {
		return nil, ErrNightInProgress
	}

	night := models.NewSleepNight(s.now())
	if err := s.repo.Insert(night); err != nil {
		return nil, err
	}

	return night, nil
}

// StopTracking closes the night that is currently being tracked
func (s *SleepTrackerService) StopTracking() (*models.SleepNight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tonight, err := s.repo.GetTonight()
	if err != nil {
		return nil, err
	}
	if tonight == nil || !tonight.InProgress() {
		return nil, ErrNoNightInProgress
	}

	end := s.now().UnixMilli()
	// An end equal to the start would read as still in progress
	if end <= tonight.StartTimeMilli {
		end = tonight.StartTimeMilli + 1
	}
	tonight.EndTimeMilli = end

	if err := s.repo.Update(tonight); err != nil {
		return nil, err
	}

	return tonight, nil
}

// SetQuality rates a night from 0 to models.MaxQuality
func (s *SleepTrackerService) SetQuality(nightID int64, quality int) (*models.SleepNight, error) {
	if quality < 0 || quality > models.MaxQuality {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuality, quality)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	night, err := s.Night(nightID)
	if err != nil {
		return nil, err
	}

	night.SleepQuality = quality
	if err := s.repo.Update(night); err != nil {
		return nil, err
	}

	return night, nil
}

// Tonight returns the newest night, or nil when nothing was ever tracked
func (s *SleepTrackerService) Tonight() (*models.SleepNight, error) {
	return s.repo.GetTonight()
}

// Night retrieves a single night
func (s *SleepTrackerService) Night(nightID int64) (*models.SleepNight, error) {
	night, err := s.repo.Get(nightID)
	if err != nil {
		return nil, err
	}
	if night == nil {
		return nil, ErrNightNotFound
	}
	return night, nil
}

// Nights lists every night, newest first
func (s *SleepTrackerService) Nights() ([]models.SleepNight, error) {
	return s.repo.GetAllNights()
}

// Clear deletes the whole sleep history
func (s *SleepTrackerService) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.Clear()
}
