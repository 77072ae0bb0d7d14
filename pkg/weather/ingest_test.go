package weather

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/falahh6/weather-api/pkg/common"
	"github.com/falahh6/weather-api/pkg/models"
	_ "github.com/falahh6/weather-api/pkg/testing"
)

func testConditions(city string, at time.Time) *models.CurrentConditions {
	return &models.CurrentConditions{
		City:       city,
		Temp:       33.5,
		FeelsLike:  36.0,
		MinTemp:    28.0,
		MaxTemp:    41.0,
		Condition:  "Clear",
		UpdateTime: at,
	}
}

func TestIngestCity(t *testing.T) {
	common.SetTestLoggerNop()

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	city := uuid.NewString()

	source := &fakeSource{
		fetchFn: func(_ context.Context, c string) (*models.CurrentConditions, error) {
			assert.Equal(t, city, c)
			return testConditions(city, now), nil
		},
	}
	weatherObj := GetTestWeatherWithMemorySqliteDialector(t, source)
	weatherObj.Clock = clockwork.NewFakeClockAt(now)

	report, err := weatherObj.Ingest.IngestCity(context.Background(), city)
	require.NoError(t, err)

	assert.Equal(t, 1, source.callCount())
	assert.Equal(t, city, report.City)
	assert.InDelta(t, 33.5, report.Temp, 1e-6)
	// midpoint of provider min/max
	assert.InDelta(t, (28.0+41.0)/2, report.AvgTemp, 1e-6)
	assert.Equal(t, "Clear", report.WeatherCondition)

	var daily models.DailyWeather
	err = weatherObj.Db.Conn.Where("city = ?", city).First(&daily).Error
	require.NoError(t, err)
	assert.InDelta(t, 33.5, daily.Temp, 1e-6)
	assert.InDelta(t, 28.0, daily.MinTemp, 1e-6)
	assert.InDelta(t, 41.0, daily.MaxTemp, 1e-6)
	assert.Equal(t, "Clear", daily.Condition)

	var summary models.WeatherSummary
	err = weatherObj.Db.Conn.Where("city = ?", city).First(&summary).Error
	require.NoError(t, err)
	// the summary avg_temp column carries the current reading
	assert.InDelta(t, 33.5, summary.AvgTemp, 1e-6)
	assert.Equal(t, "Clear", summary.DominantCondition)
}

func TestIngestCity_UpsertIdempotence(t *testing.T) {
	common.SetTestLoggerNop()

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	city := uuid.NewString()

	first := testConditions(city, now)
	second := testConditions(city, now.Add(5*time.Minute))
	second.Temp = 34.2
	second.Condition = "Cloudy"

	responses := []*models.CurrentConditions{first, second}
	call := 0
	source := &fakeSource{
		fetchFn: func(_ context.Context, _ string) (*models.CurrentConditions, error) {
			resp := responses[call]
			call++
			return resp, nil
		},
	}
	weatherObj := GetTestWeatherWithMemorySqliteDialector(t, source)
	weatherObj.Clock = clockwork.NewFakeClockAt(now)

	_, err := weatherObj.Ingest.IngestCity(context.Background(), city)
	require.NoError(t, err)
	_, err = weatherObj.Ingest.IngestCity(context.Background(), city)
	require.NoError(t, err)

	var dailyCount, summaryCount int64
	require.NoError(t, weatherObj.Db.Conn.Model(&models.DailyWeather{}).
		Where("city = ?", city).Count(&dailyCount).Error)
	require.NoError(t, weatherObj.Db.Conn.Model(&models.WeatherSummary{}).
		Where("city = ?", city).Count(&summaryCount).Error)

	assert.Equal(t, int64(1), dailyCount)
	assert.Equal(t, int64(1), summaryCount)

	// fields reflect the latest write
	var daily models.DailyWeather
	require.NoError(t, weatherObj.Db.Conn.Where("city = ?", city).First(&daily).Error)
	assert.InDelta(t, 34.2, daily.Temp, 1e-6)
	assert.Equal(t, "Cloudy", daily.Condition)

	var summary models.WeatherSummary
	require.NoError(t, weatherObj.Db.Conn.Where("city = ?", city).First(&summary).Error)
	assert.InDelta(t, 34.2, summary.AvgTemp, 1e-6)
	assert.Equal(t, "Cloudy", summary.DominantCondition)
}

func TestIngestAll_PartialFailure(t *testing.T) {
	common.SetTestLoggerNop()

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	goodCity := uuid.NewString()
	badCity := uuid.NewString()

	source := &fakeSource{
		fetchFn: func(_ context.Context, c string) (*models.CurrentConditions, error) {
			if c == badCity {
				return nil, fmt.Errorf("%w: boom", ErrSourceUnavailable)
			}
			return testConditions(c, now), nil
		},
	}
	weatherObj := GetTestWeatherWithMemorySqliteDialector(t, source)
	weatherObj.Clock = clockwork.NewFakeClockAt(now)

	policy := DefaultPolicy()
	policy.Cities = []string{goodCity, badCity}

	report, err := weatherObj.Ingest.IngestAll(context.Background(), policy)
	require.NoError(t, err)

	require.Len(t, report.Data, 1)
	assert.Equal(t, goodCity, report.Data[0].City)

	require.Len(t, report.Failed, 1)
	assert.Contains(t, report.Failed[badCity], "boom")
}

func TestIngestAll_AllCitiesFail(t *testing.T) {
	common.SetTestLoggerNop()

	source := &fakeSource{
		fetchFn: func(_ context.Context, _ string) (*models.CurrentConditions, error) {
			return nil, ErrSourceUnavailable
		},
	}
	weatherObj := GetTestWeatherWithMemorySqliteDialector(t, source)

	policy := DefaultPolicy()
	policy.Cities = []string{uuid.NewString(), uuid.NewString()}

	report, err := weatherObj.Ingest.IngestAll(context.Background(), policy)
	require.NoError(t, err)

	assert.Empty(t, report.Data)
	assert.Len(t, report.Failed, 2)
	assert.Equal(t, 2, source.callCount())
}

func TestUniqueDayTemps(t *testing.T) {
	day := func(offset int) time.Time {
		return time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC).AddDate(0, 0, -offset)
	}

	// 10 rows over 7 distinct dates, newest first, duplicates on 3 dates. The
	// first-encountered row per date must win.
	rows := []models.DailyWeather{
		{Date: day(0), Temp: 36},
		{Date: day(0).Add(-time.Hour), Temp: 99},
		{Date: day(1), Temp: 35},
		{Date: day(2), Temp: 34},
		{Date: day(2).Add(-2 * time.Hour), Temp: 99},
		{Date: day(3), Temp: 33},
		{Date: day(4), Temp: 32},
		{Date: day(4).Add(-30 * time.Minute), Temp: 99},
		{Date: day(5), Temp: 31},
		{Date: day(6), Temp: 30},
	}

	window := uniqueDayTemps(rows)

	require.Len(t, window, 7)

	// chronologically ascending, one entry per date, first-seen temp retained
	for i, entry := range window {
		assert.Equal(t, day(6-i).Format(time.DateOnly), entry.Date.Format(time.DateOnly))
		assert.InDelta(t, float64(30+i), entry.Temp, 1e-6)
	}
}

func TestUniqueDayTemps_CapsAtSeven(t *testing.T) {
	var rows []models.DailyWeather
	for i := 0; i < 9; i++ {
		rows = append(rows, models.DailyWeather{
			Date: time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC).AddDate(0, 0, -i),
			Temp: float64(20 + i),
		})
	}

	window := uniqueDayTemps(rows)
	require.Len(t, window, 7)
	// the newest seven days survive the cap
	assert.Equal(t, "2026-08-24", window[0].Date.Format(time.DateOnly))
	assert.Equal(t, "2026-08-30", window[6].Date.Format(time.DateOnly))
}

func TestLastSevenUniqueDays_CutoffAndOrder(t *testing.T) {
	common.SetTestLoggerNop()

	weatherObj := GetTestWeatherWithMemorySqliteDialector(t, nil)

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	weatherObj.Clock = clockwork.NewFakeClockAt(now)

	city := uuid.NewString()

	for i := 0; i < 5; i++ {
		date := now.AddDate(0, 0, -i)
		require.NoError(t, weatherObj.Db.Conn.Create(&models.DailyWeather{
			City: city,
			Day:  dayOf(date),
			Date: date,
			Temp: float64(30 + i),
		}).Error)
	}
	// outside the 7-day lookback; must not appear
	old := now.AddDate(0, 0, -9)
	require.NoError(t, weatherObj.Db.Conn.Create(&models.DailyWeather{
		City: city,
		Day:  dayOf(old),
		Date: old,
		Temp: 99,
	}).Error)

	window, err := weatherObj.lastSevenUniqueDays(city)
	require.NoError(t, err)

	require.Len(t, window, 5)
	for i := 1; i < len(window); i++ {
		assert.True(t, window[i].Date.After(window[i-1].Date),
			"expected ascending dates, got %v before %v", window[i-1].Date, window[i].Date)
	}
	assert.InDelta(t, 34, window[0].Temp, 1e-6) // oldest in-window day
	assert.InDelta(t, 30, window[4].Temp, 1e-6) // today
}
