package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
	"github.com/falahh6/weather-api/pkg/common"
	"github.com/falahh6/weather-api/pkg/models"
)

const defaultOpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// OpenWeatherSource fetches current conditions from OpenWeatherMap and
// normalizes them: Kelvin to Celsius, unix epoch to time.Time. Min/max are the
// provider-reported extrema, not locally computed.
type OpenWeatherSource struct {
	ApiKey  string
	BaseURL string
	Client  *http.Client
}

func NewOpenWeatherSource(apiKey string) *OpenWeatherSource {
	return &OpenWeatherSource{
		ApiKey:  apiKey,
		BaseURL: defaultOpenWeatherBaseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func kelvinToCelsius(k float64) float64 {
	return k - 273.15
}

func (s *OpenWeatherSource) FetchCurrent(ctx context.Context, city string) (*models.CurrentConditions, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameWeatherCore,
		zap.String(common.LoggerFieldWeatherCategory, common.LoggerCategoryWeatherSource),
	)

	if s.ApiKey == "" {
		return nil, fmt.Errorf("%w: api key is not configured", ErrSourceUnavailable)
	}

	values := url.Values{}
	values.Set("q", city)
	values.Set("appid", s.ApiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s?%s", s.BaseURL, values.Encode()), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d for city %s",
			ErrSourceUnavailable, resp.StatusCode, city)
	}

	var payload struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			TempMin   float64 `json:"temp_min"`
			TempMax   float64 `json:"temp_max"`
		} `json:"main"`
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	if len(payload.Weather) == 0 {
		return nil, fmt.Errorf("%w: payload missing weather condition for city %s",
			ErrSourceUnavailable, city)
	}

	conditions := &models.CurrentConditions{
		City:       city,
		Temp:       kelvinToCelsius(payload.Main.Temp),
		FeelsLike:  kelvinToCelsius(payload.Main.FeelsLike),
		MinTemp:    kelvinToCelsius(payload.Main.TempMin),
		MaxTemp:    kelvinToCelsius(payload.Main.TempMax),
		Condition:  payload.Weather[0].Main,
		UpdateTime: time.Unix(payload.Dt, 0),
	}

	logger.Info("Fetched current conditions", zap.Reflect("conditions", conditions))

	return conditions, nil
}
