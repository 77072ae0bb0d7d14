package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
	"github.com/falahh6/weather-api/pkg/common"
	"github.com/falahh6/weather-api/pkg/weather"
)

// Scheduler replays the dashboard's polling loop inside the process: on each
// tick it runs an ingestion cycle and then an alert evaluation sweep.
type Scheduler struct {
	scheduler *gocron.Scheduler
	weather   *weather.Weather
	policy    *weather.Policy
	interval  time.Duration
}

func New(w *weather.Weather, policy *weather.Policy, interval time.Duration) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		weather:   w,
		policy:    policy,
		interval:  interval,
	}
}

func (s *Scheduler) Start() error {
	logger := common.GetLoggerWith(common.LoggerNameScheduler)

	interval := s.interval
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	_, err := s.scheduler.Every(interval).Do(func() {
		logger.Info("Running scheduled weather poll")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		report, err := s.weather.Ingest.IngestAll(ctx, s.policy)
		if err != nil {
			logger.Warn("Scheduled ingestion failed", zap.Error(err))
			return
		}
		if len(report.Failed) > 0 {
			logger.Warn("Scheduled ingestion had per-city failures",
				zap.Reflect("failed", report.Failed))
		}

		alerts, err := s.weather.Alert.EvaluateAndStoreAlerts(s.policy)
		if err != nil {
			logger.Warn("Scheduled alert evaluation failed", zap.Error(err))
			return
		}

		logger.Info("Scheduled weather poll completed",
			zap.Int("cities", len(report.Data)), zap.Int("alerts", len(alerts)))
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
