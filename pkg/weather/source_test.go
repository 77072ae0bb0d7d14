package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/falahh6/weather-api/pkg/common"
	_ "github.com/falahh6/weather-api/pkg/testing"
)

func newTestSource(handler http.HandlerFunc) (*OpenWeatherSource, *httptest.Server) {
	server := httptest.NewServer(handler)
	source := NewOpenWeatherSource("test-key")
	source.BaseURL = server.URL
	source.Client = server.Client()
	return source, server
}

func TestFetchCurrent(t *testing.T) {
	common.SetTestLoggerNop()

	observedAt := time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC)

	source, server := newTestSource(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Delhi", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))

		fmt.Fprintf(w, `{
			"dt": %d,
			"main": {"temp": 310.15, "feels_like": 312.15, "temp_min": 305.15, "temp_max": 315.15},
			"weather": [{"main": "Clear"}]
		}`, observedAt.Unix())
	})
	defer server.Close()

	conditions, err := source.FetchCurrent(context.Background(), "Delhi")
	require.NoError(t, err)

	assert.Equal(t, "Delhi", conditions.City)
	assert.InDelta(t, 37.0, conditions.Temp, 1e-6)
	assert.InDelta(t, 39.0, conditions.FeelsLike, 1e-6)
	assert.InDelta(t, 32.0, conditions.MinTemp, 1e-6)
	assert.InDelta(t, 42.0, conditions.MaxTemp, 1e-6)
	assert.Equal(t, "Clear", conditions.Condition)
	assert.Equal(t, observedAt.Unix(), conditions.UpdateTime.Unix())
}

func TestFetchCurrent_KelvinRoundTrip(t *testing.T) {
	common.SetTestLoggerNop()

	// arbitrary non-round Kelvin readings
	source, server := newTestSource(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"dt": 1767100000,
			"main": {"temp": 301.374, "feels_like": 303.991, "temp_min": 298.502, "temp_max": 309.777},
			"weather": [{"main": "Haze"}]
		}`)
	})
	defer server.Close()

	conditions, err := source.FetchCurrent(context.Background(), "Mumbai")
	require.NoError(t, err)

	assert.InDelta(t, 301.374-273.15, conditions.Temp, 1e-6)
	assert.InDelta(t, 298.502-273.15, conditions.MinTemp, 1e-6)
	assert.InDelta(t, 309.777-273.15, conditions.MaxTemp, 1e-6)
}

func TestFetchCurrent_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	{
		// upstream 5xx
		source, server := newTestSource(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		defer server.Close()

		_, err := source.FetchCurrent(context.Background(), "Delhi")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrSourceUnavailable))
	}

	{
		// malformed payload
		source, server := newTestSource(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"dt": "not-a-number"`)
		})
		defer server.Close()

		_, err := source.FetchCurrent(context.Background(), "Delhi")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrSourceUnavailable))
	}

	{
		// payload without a weather condition
		source, server := newTestSource(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"dt": 1767100000, "main": {"temp": 300}, "weather": []}`)
		})
		defer server.Close()

		_, err := source.FetchCurrent(context.Background(), "Delhi")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrSourceUnavailable))
	}

	{
		// missing api key fails before any request
		source := NewOpenWeatherSource("")
		_, err := source.FetchCurrent(context.Background(), "Delhi")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrSourceUnavailable))
	}
}
