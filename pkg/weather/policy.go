package weather

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"github.com/falahh6/weather-api/pkg/common"
)

// Policy carries the configurable ingestion and alerting knobs. The defaults
// reproduce the values the dashboard originally shipped with.
type Policy struct {
	Cities            []string
	ConsecutiveCount  int
	TempThreshold     float64
	HighTempThreshold float64
	WatchConditions   []string
}

var policySchema = z.Struct(z.Shape{
	"Cities":            z.Slice(z.String().Min(1)).Min(1),
	"ConsecutiveCount":  z.Int().GTE(1),
	"TempThreshold":     z.Float64(),
	"HighTempThreshold": z.Float64(),
	"WatchConditions":   z.Slice(z.String().Min(1)),
})

func DefaultPolicy() *Policy {
	return &Policy{
		Cities: []string{
			"Delhi",
			"Mumbai",
			"Chennai",
			"Bangalore",
			"Kolkata",
			"Hyderabad",
		},
		ConsecutiveCount:  2,
		TempThreshold:     35,
		HighTempThreshold: 40,
		WatchConditions:   []string{"Stormy", "Extreme Heat"},
	}
}

func (p *Policy) Validate() error {
	if errs := policySchema.Validate(p); errs != nil {
		return fmt.Errorf("invalid policy: %v", errs)
	}
	if p.HighTempThreshold < p.TempThreshold {
		return fmt.Errorf("invalid policy: high threshold %v below base threshold %v",
			p.HighTempThreshold, p.TempThreshold)
	}
	return nil
}

// PolicyFromEnv starts from the defaults and overrides any knob that has an
// environment variable set.
func PolicyFromEnv() (*Policy, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameWeatherCore,
		zap.String(common.LoggerFieldWeatherCategory, common.LoggerCategoryWeatherPolicy),
	)

	p := DefaultPolicy()

	if v := os.Getenv(common.EnvKeyWeatherCities); v != "" {
		p.Cities = splitList(v)
	}
	if v := os.Getenv(common.EnvKeyWeatherWatchConditions); v != "" {
		p.WatchConditions = splitList(v)
	}
	if v := os.Getenv(common.EnvKeyWeatherTempThreshold); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", common.EnvKeyWeatherTempThreshold, err)
		}
		p.TempThreshold = f
	}
	if v := os.Getenv(common.EnvKeyWeatherHighTempThreshold); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", common.EnvKeyWeatherHighTempThreshold, err)
		}
		p.HighTempThreshold = f
	}
	if v := os.Getenv(common.EnvKeyWeatherConsecutiveCount); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", common.EnvKeyWeatherConsecutiveCount, err)
		}
		p.ConsecutiveCount = n
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	logger.Info("Loaded weather policy from environment")

	return p, nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
