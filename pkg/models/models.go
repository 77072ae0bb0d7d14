package models

import "time"

type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
)

const AlertTypeWeather = "Weather Alert"

// DailyWeather keeps one historical row per city per calendar day. Day is the
// observation timestamp with time-of-day zeroed; the composite unique index
// backs the insert-or-update upsert in the ingest path.
type DailyWeather struct {
	ID        uint      `gorm:"primaryKey"`
	City      string    `gorm:"index:idx_daily_city_day,unique"`
	Day       time.Time `gorm:"index:idx_daily_city_day,unique"`
	Date      time.Time
	Temp      float64
	FeelsLike float64
	MinTemp   float64
	MaxTemp   float64
	Condition string
	CreatedAt time.Time
}

// WeatherSummary is the per-city "today" aggregate the alert evaluator reads.
// AvgTemp holds the provider's current temperature reading for the day.
type WeatherSummary struct {
	ID                uint      `gorm:"primaryKey"`
	City              string    `gorm:"index:idx_summary_city_day,unique"`
	Day               time.Time `gorm:"index:idx_summary_city_day,unique"`
	Date              time.Time
	AvgTemp           float64
	MinTemp           float64
	MaxTemp           float64
	FeelsLike         float64
	DominantCondition string
	CreatedAt         time.Time
}

// Alert rows are append-only; nothing in the service updates or deletes them.
type Alert struct {
	ID        uint   `gorm:"primaryKey"`
	City      string `gorm:"index"`
	Timestamp time.Time
	Type      string
	Severity  Severity `gorm:"type:varchar(10);check:severity IN ('High','Medium','Low')"`
	Message   string
}

// CurrentConditions is a normalized provider snapshot, already converted to
// Celsius with the observation epoch expanded to a time.Time.
type CurrentConditions struct {
	City       string
	Temp       float64
	FeelsLike  float64
	MinTemp    float64
	MaxTemp    float64
	Condition  string
	UpdateTime time.Time
}
