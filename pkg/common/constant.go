package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyWeatherDBType string = "WEATHER_DB_TYPE"
	EnvKeyWeatherDbPath string = "WEATHER_DB_PATH"

	EnvKeyWeatherHttpHostPort string = "WEATHER_HTTP_HOST_PORT"

	EnvKeyOpenWeatherApiKey  string = "OPENWEATHER_API_KEY"
	EnvKeyOpenWeatherBaseUrl string = "OPENWEATHER_BASE_URL"

	EnvKeyWeatherCities            string = "WEATHER_CITIES"
	EnvKeyWeatherTempThreshold     string = "WEATHER_TEMP_THRESHOLD"
	EnvKeyWeatherHighTempThreshold string = "WEATHER_HIGH_TEMP_THRESHOLD"
	EnvKeyWeatherConsecutiveCount  string = "WEATHER_CONSECUTIVE_COUNT"
	EnvKeyWeatherWatchConditions   string = "WEATHER_WATCH_CONDITIONS"

	EnvKeyWeatherPollInterval string = "WEATHER_POLL_INTERVAL"

	EnvKeyWeatherDefaultRate  string = "WEATHER_DEFAULT_RATE"
	EnvKeyWeatherDefaultBurst string = "WEATHER_DEFAULT_BURST"

	LoggerNameWeatherCore       string = "weather_core"
	LoggerNameRestfulServer     string = "restful_server"
	LoggerNameScheduler         string = "scheduler"
	LoggerFieldWeatherCategory  string = "category"
	LoggerCategoryWeatherSource string = "source"
	LoggerCategoryWeatherIngest string = "ingest"
	LoggerCategoryWeatherAlert  string = "alert"
	LoggerCategoryWeatherPolicy string = "policy"
)
