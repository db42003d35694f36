package database

import (
	"testing"
	"time"

	"sleep-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDao(t *testing.T) *SleepNightDao {
	t.Helper()

	db, err := GetInstance(setupTestContext(t))
	require.NoError(t, err)
	return db.SleepDatabaseDao()
}

func TestSleepNightDao(t *testing.T) {
	dao := setupTestDao(t)

	t.Run("Empty database has no tonight", func(t *testing.T) {
		tonight, err := dao.GetTonight()
		require.NoError(t, err)
		assert.Nil(t, tonight)

		nights, err := dao.GetAllNights()
		require.NoError(t, err)
		assert.NotNil(t, nights)
		assert.Empty(t, nights)
	})

	t.Run("Insert assigns ids and defaults", func(t *testing.T) {
		night := models.NewSleepNight(time.UnixMilli(1_700_000_000_000))
		require.NoError(t, dao.Insert(night))
		assert.NotZero(t, night.NightID)

		stored, err := dao.Get(night.NightID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, *night, *stored)
		assert.Equal(t, models.QualityUnrated, stored.SleepQuality)
		assert.True(t, stored.InProgress())
	})

	t.Run("Get unknown key", func(t *testing.T) {
		stored, err := dao.Get(999999)
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("Update overwrites the row", func(t *testing.T) {
		night := models.NewSleepNight(time.UnixMilli(1_700_000_100_000))
		require.NoError(t, dao.Insert(night))

		night.EndTimeMilli = night.StartTimeMilli + int64(8*time.Hour/time.Millisecond)
		night.SleepQuality = 4
		require.NoError(t, dao.Update(night))

		stored, err := dao.Get(night.NightID)
		require.NoError(t, err)
		assert.Equal(t, 4, stored.SleepQuality)
		assert.Equal(t, 8*time.Hour, stored.Duration())
		assert.False(t, stored.InProgress())
	})

	t.Run("Tonight is the newest night and listing is newest first", func(t *testing.T) {
		newest := models.NewSleepNight(time.UnixMilli(1_700_000_200_000))
		require.NoError(t, dao.Insert(newest))

		tonight, err := dao.GetTonight()
		require.NoError(t, err)
		require.NotNil(t, tonight)
		assert.Equal(t, newest.NightID, tonight.NightID)

		nights, err := dao.GetAllNights()
		require.NoError(t, err)
		require.Len(t, nights, 3)
		for i := 1; i < len(nights); i++ {
			assert.Greater(t, nights[i-1].NightID, nights[i].NightID)
		}
	})

	t.Run("Clear removes everything", func(t *testing.T) {
		require.NoError(t, dao.Clear())

		nights, err := dao.GetAllNights()
		require.NoError(t, err)
		assert.Empty(t, nights)

		tonight, err := dao.GetTonight()
		require.NoError(t, err)
		assert.Nil(t, tonight)
	})
}
