package models

import "time"

// QualityUnrated marks a night that has not been rated yet
const QualityUnrated = -1

// MaxQuality is the best rating a night can receive
const MaxQuality = 5

var qualityLabels = [...]string{
	"Very bad",
	"Poor",
	"So-so",
	"OK",
	"Pretty good",
	"Excellent",
}

// SleepNight is a single tracked night. Times are epoch milliseconds.
type SleepNight struct {
	NightID        int64 `json:"night_id"`
	StartTimeMilli int64 `json:"start_time_milli"`
	EndTimeMilli   int64 `json:"end_time_milli"`
	SleepQuality   int   `json:"sleep_quality"`
}

// NewSleepNight returns an open night starting at t
func NewSleepNight(t time.Time) *SleepNight {
	ms := t.UnixMilli()
	return &SleepNight{
		StartTimeMilli: ms,
		EndTimeMilli:   ms,
		SleepQuality:   QualityUnrated,
	}
}

// InProgress reports whether tracking for this night hasn't been stopped
func (n *SleepNight) InProgress() bool {
	return n.EndTimeMilli == n.StartTimeMilli
}

func (n *SleepNight) StartTime() time.Time {
	return time.UnixMilli(n.StartTimeMilli)
}

func (n *SleepNight) EndTime() time.Time {
	return time.UnixMilli(n.EndTimeMilli)
}

// Duration is zero while the night is still in progress
func (n *SleepNight) Duration() time.Duration {
	return time.Duration(n.EndTimeMilli-n.StartTimeMilli) * time.Millisecond
}

// QualityLabel returns a human readable rating, "--" when unrated
func (n *SleepNight) QualityLabel() string {
	return QualityLabel(n.SleepQuality)
}

func QualityLabel(quality int) string {
	if quality < 0 || quality >= len(qualityLabels) {
		return "--"
	}
	return qualityLabels[quality]
}

type SetQualityRequest struct {
	Quality *int `json:"quality" validate:"required,sleepquality"`
}

// NightResponse is the API view of a night
type NightResponse struct {
	SleepNight
	InProgress      bool   `json:"in_progress"`
	DurationSeconds int64  `json:"duration_seconds"`
	QualityLabel    string `json:"quality_label"`
}

func NewNightResponse(n SleepNight) NightResponse {
	return NightResponse{
		SleepNight:      n,
		InProgress:      n.InProgress(),
		DurationSeconds: int64(n.Duration() / time.Second),
		QualityLabel:    n.QualityLabel(),
	}
}

type TimeQuery struct {
	Timezone string `query:"timezone" json:"timezone" validate:"omitempty,timezone"`
}
