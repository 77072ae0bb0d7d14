package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"github.com/falahh6/weather-api/pkg/common"
	"github.com/falahh6/weather-api/pkg/db"
	weatherHttp "github.com/falahh6/weather-api/pkg/http"
	"github.com/falahh6/weather-api/pkg/observability"
	"github.com/falahh6/weather-api/pkg/scheduler"
	"github.com/falahh6/weather-api/pkg/weather"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	weatherDbType := os.Getenv(common.EnvKeyWeatherDBType)
	switch weatherDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown WEATHER_DB_TYPE: " + weatherDbType)
	}

	apiKey := strings.TrimSpace(os.Getenv(common.EnvKeyOpenWeatherApiKey))
	if apiKey == "" {
		log.Fatal("OPENWEATHER_API_KEY not set in .env")
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyWeatherHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyWeatherDefaultRate), 64); err != nil {
		log.Fatal("Invalid WEATHER_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyWeatherDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid WEATHER_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	policy, err := weather.PolicyFromEnv()
	if err != nil {
		log.Fatalf("Invalid weather policy: %v", err)
	}

	logger := common.GetLogger()

	source := weather.NewOpenWeatherSource(apiKey)
	if baseURL := strings.TrimSpace(os.Getenv(common.EnvKeyOpenWeatherBaseUrl)); baseURL != "" {
		source.BaseURL = baseURL
	}

	weatherCore := weather.Weather{
		Db:      *dbInstance,
		Metrics: observability.NewMetrics(),
	}
	weatherCore.WithServices(weather.ServiceOpts{
		Source: source,
		Ingest: weatherCore.GetIIngest(),
		Alert:  weatherCore.GetIAlert(),
	})

	if pollIntervalStr := strings.TrimSpace(os.Getenv(common.EnvKeyWeatherPollInterval)); pollIntervalStr != "" {
		pollInterval, err := time.ParseDuration(pollIntervalStr)
		if err != nil {
			log.Fatal("Invalid WEATHER_POLL_INTERVAL, should be a duration like 5m")
		}

		poller := scheduler.New(&weatherCore, policy, pollInterval)
		if err := poller.Start(); err != nil {
			log.Fatalf("Failed to start poll scheduler: %v", err)
		}
		defer poller.Stop()

		logger.Info("Started weather poll scheduler",
			zap.Duration("interval", pollInterval))
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &weatherHttp.RestfulServer{
		Server:           gin.Default(),
		Weather:          &weatherCore,
		Policy:           policy,
		RateLimiterStore: weather.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
