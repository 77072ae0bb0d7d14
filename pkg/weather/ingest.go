package weather

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm/clause"
	"github.com/falahh6/weather-api/pkg/common"
	"github.com/falahh6/weather-api/pkg/models"
)

type DayTemp struct {
	Date time.Time `json:"date"`
	Temp float64   `json:"temp"`
}

type CityReport struct {
	City             string    `json:"city"`
	Temp             float64   `json:"temp"`
	FeelsLike        float64   `json:"feelsLike"`
	WeatherCondition string    `json:"weatherCondition"`
	UpdateTime       time.Time `json:"updateTime"`
	MinTemp          float64   `json:"minTemp"`
	MaxTemp          float64   `json:"maxTemp"`
	AvgTemp          float64   `json:"avgTemp"`
	LastSevenDays    []DayTemp `json:"lastSevenDays"`
}

// IngestReport is the aggregate outcome of one ingestion cycle. Cities that
// failed do not abort the batch; they are listed in Failed with the reason.
type IngestReport struct {
	Data   []CityReport      `json:"data"`
	Failed map[string]string `json:"failed,omitempty"`
}

// dayOf zeroes the time-of-day in the timestamp's own location. The (city, day)
// pair is the upsert key for both tables.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func (w *Weather) ingestCity(ctx context.Context, city string) (*CityReport, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameWeatherCore,
		zap.String(common.LoggerFieldWeatherCategory, common.LoggerCategoryWeatherIngest),
	)

	fetchStart := w.clock().Now()
	conditions, err := w.Source.FetchCurrent(ctx, city)
	if err != nil {
		return nil, err
	}
	if w.Metrics != nil {
		w.Metrics.SourceFetchDuration.Observe(w.clock().Now().Sub(fetchStart).Seconds())
	}

	// Midpoint of provider min/max, not a sampled time-average.
	avgTemp := (conditions.MinTemp + conditions.MaxTemp) / 2

	lastSevenDays, err := w.lastSevenUniqueDays(city)
	if err != nil {
		return nil, err
	}

	if err := w.upsertDailyWeather(conditions); err != nil {
		return nil, err
	}

	if err := w.upsertWeatherSummary(conditions); err != nil {
		return nil, err
	}

	report := &CityReport{
		City:             city,
		Temp:             conditions.Temp,
		FeelsLike:        conditions.FeelsLike,
		WeatherCondition: conditions.Condition,
		UpdateTime:       conditions.UpdateTime,
		MinTemp:          conditions.MinTemp,
		MaxTemp:          conditions.MaxTemp,
		AvgTemp:          avgTemp,
		LastSevenDays:    lastSevenDays,
	}

	logger.Info("Ingested city weather", zap.Reflect("report", report))

	if w.Metrics != nil {
		w.Metrics.CitiesIngested.Inc()
	}

	return report, nil
}

// ingestAll runs the per-city pipelines concurrently with no ordering guarantee
// between cities, then joins. The response preserves the configured city order.
func (w *Weather) ingestAll(ctx context.Context, policy *Policy) (*IngestReport, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameWeatherCore,
		zap.String(common.LoggerFieldWeatherCategory, common.LoggerCategoryWeatherIngest),
	)

	results := make([]*CityReport, len(policy.Cities))
	errs := make([]error, len(policy.Cities))

	var wg sync.WaitGroup
	for i, city := range policy.Cities {
		i, city := i, city
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = w.ingestCity(ctx, city)
		}()
	}
	wg.Wait()

	report := &IngestReport{Data: make([]CityReport, 0, len(policy.Cities))}
	for i, city := range policy.Cities {
		if errs[i] != nil {
			logger.Warn("City ingestion failed",
				zap.String("city", city), zap.Error(errs[i]))
			if w.Metrics != nil {
				w.Metrics.IngestFailures.Inc()
			}
			if report.Failed == nil {
				report.Failed = make(map[string]string)
			}
			report.Failed[city] = errs[i].Error()
			continue
		}
		report.Data = append(report.Data, *results[i])
	}

	return report, nil
}

func (w *Weather) lastSevenUniqueDays(city string) ([]DayTemp, error) {
	cutoff := w.clock().Now().AddDate(0, 0, -7)

	var rows []models.DailyWeather
	if err := w.Db.Conn.
		Where("city = ? AND date >= ?", city, cutoff).
		Order("date desc").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	return uniqueDayTemps(rows), nil
}

// uniqueDayTemps keeps the first row seen per calendar day (rows arrive newest
// first), caps the window at seven entries, and returns them oldest first.
func uniqueDayTemps(rows []models.DailyWeather) []DayTemp {
	seen := make(map[string]bool, len(rows))
	picked := make([]DayTemp, 0, 7)

	for _, row := range rows {
		key := row.Date.Format(time.DateOnly)
		if seen[key] {
			continue
		}
		seen[key] = true
		picked = append(picked, DayTemp{Date: row.Date, Temp: row.Temp})
		if len(picked) == 7 {
			break
		}
	}

	slices.Reverse(picked)
	return picked
}

func (w *Weather) upsertDailyWeather(conditions *models.CurrentConditions) error {
	row := models.DailyWeather{
		City:      conditions.City,
		Day:       dayOf(conditions.UpdateTime),
		Date:      conditions.UpdateTime,
		Temp:      conditions.Temp,
		FeelsLike: conditions.FeelsLike,
		MinTemp:   conditions.MinTemp,
		MaxTemp:   conditions.MaxTemp,
		Condition: conditions.Condition,
	}

	err := w.Db.Conn.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "city"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"date", "temp", "feels_like", "min_temp", "max_temp", "condition",
		}),
	}).Create(&row).Error

	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return nil
}

func (w *Weather) upsertWeatherSummary(conditions *models.CurrentConditions) error {
	row := models.WeatherSummary{
		City:              conditions.City,
		Day:               dayOf(conditions.UpdateTime),
		Date:              conditions.UpdateTime,
		AvgTemp:           conditions.Temp,
		MinTemp:           conditions.MinTemp,
		MaxTemp:           conditions.MaxTemp,
		FeelsLike:         conditions.FeelsLike,
		DominantCondition: conditions.Condition,
	}

	err := w.Db.Conn.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "city"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"date", "avg_temp", "min_temp", "max_temp", "feels_like", "dominant_condition",
		}),
	}).Create(&row).Error

	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return nil
}

type IIngestImpl struct {
	weather *Weather
}

func (ii *IIngestImpl) IngestAll(ctx context.Context, policy *Policy) (*IngestReport, error) {
	return ii.weather.ingestAll(ctx, policy)
}

func (ii *IIngestImpl) IngestCity(ctx context.Context, city string) (*CityReport, error) {
	return ii.weather.ingestCity(ctx, city)
}

func (w *Weather) GetIIngest() IIngest {
	return &IIngestImpl{weather: w}
}
