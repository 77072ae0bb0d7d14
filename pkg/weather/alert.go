package weather

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
	"github.com/falahh6/weather-api/pkg/common"
	"github.com/falahh6/weather-api/pkg/models"
)

// consecutiveBreach reports whether every one of the last N summaries for the
// city exceeds the base threshold. With fewer than N stored summaries the check
// runs over what exists, so a city with a single hot summary already breaches.
func (w *Weather) consecutiveBreach(city string, policy *Policy) (bool, error) {
	var summaries []models.WeatherSummary
	if err := w.Db.Conn.
		Where("city = ?", city).
		Order("created_at desc").
		Limit(policy.ConsecutiveCount).
		Find(&summaries).Error; err != nil {
		return false, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	for _, summary := range summaries {
		if summary.AvgTemp <= policy.TempThreshold {
			return false, nil
		}
	}
	return true, nil
}

// determineSeverity applies the fixed ladder; first matching rule wins. The
// final "Low" rung never produces a stored alert on its own since alerts are
// only persisted when a breach or a watch condition holds.
func determineSeverity(breached bool, avgTemp float64, watch bool, policy *Policy) models.Severity {
	if breached && avgTemp > policy.HighTempThreshold {
		return models.SeverityHigh
	}
	if breached || watch {
		return models.SeverityMedium
	}
	return models.SeverityLow
}

func alertMessage(city string, breached bool, watch bool, condition string, policy *Policy) string {
	var clauses []string
	if breached {
		clauses = append(clauses, fmt.Sprintf(" Temperature exceeded %v°C!", policy.TempThreshold))
	}
	if watch {
		clauses = append(clauses, fmt.Sprintf(" Current weather condition is %s.", condition))
	}

	return common.Reducer(clauses, func(acc string, clause string) string {
		return acc + clause
	}, fmt.Sprintf("Alert: %s has triggered a warning.", city))
}

// evaluateAndStoreAlerts scans every summary row, derives alerts, and appends
// the qualifying ones in a single bulk insert at the end of the scan.
func (w *Weather) evaluateAndStoreAlerts(policy *Policy) ([]models.Alert, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameWeatherCore,
		zap.String(common.LoggerFieldWeatherCategory, common.LoggerCategoryWeatherAlert),
	)

	var summaries []models.WeatherSummary
	if err := w.Db.Conn.Find(&summaries).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}

	now := w.clock().Now()

	var alerts []models.Alert
	for _, summary := range summaries {
		breached, err := w.consecutiveBreach(summary.City, policy)
		if err != nil {
			return nil, err
		}

		watch := slices.Contains(policy.WatchConditions, summary.DominantCondition)

		severity := determineSeverity(breached, summary.AvgTemp, watch, policy)

		if !breached && !watch {
			continue
		}

		alert := models.Alert{
			City:      summary.City,
			Timestamp: now,
			Type:      models.AlertTypeWeather,
			Severity:  severity,
			Message:   alertMessage(summary.City, breached, watch, summary.DominantCondition, policy),
		}

		logger.Info("Alert found", zap.Reflect("alert", alert))

		alerts = append(alerts, alert)
	}

	if len(alerts) > 0 {
		if err := w.Db.Conn.Create(&alerts).Error; err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
		}
		logger.Info("Alerts saved", zap.Int("count", len(alerts)))
	}

	if w.Metrics != nil {
		w.Metrics.EvaluationRuns.Inc()
		w.Metrics.AlertsGenerated.Add(float64(len(alerts)))
	}

	return alerts, nil
}

func (w *Weather) getCityAlerts(city string) ([]models.Alert, error) {
	var alerts []models.Alert
	err := w.Db.Conn.
		Where("city = ?", city).
		Order("timestamp desc").
		Find(&alerts).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreFailure, err)
	}
	return alerts, nil
}

type IAlertImpl struct {
	weather *Weather
}

func (ia *IAlertImpl) EvaluateAndStoreAlerts(policy *Policy) ([]models.Alert, error) {
	return ia.weather.evaluateAndStoreAlerts(policy)
}

func (ia *IAlertImpl) GetCityAlerts(city string) ([]models.Alert, error) {
	return ia.weather.getCityAlerts(city)
}

func (w *Weather) GetIAlert() IAlert {
	return &IAlertImpl{weather: w}
}
