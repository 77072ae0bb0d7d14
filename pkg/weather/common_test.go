package weather

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"

	"github.com/falahh6/weather-api/pkg/db"
	"github.com/falahh6/weather-api/pkg/models"
	"github.com/falahh6/weather-api/pkg/observability"
)

// fakeSource is an in-package ISource stub. The gomock mocks under
// pkg/weather/mocks depend on this package's types, so they can only be used
// from other packages' tests.
type fakeSource struct {
	mu      sync.Mutex
	calls   int
	fetchFn func(ctx context.Context, city string) (*models.CurrentConditions, error)
}

func (f *fakeSource) FetchCurrent(ctx context.Context, city string) (*models.CurrentConditions, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.fetchFn(ctx, city)
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func GetTestWeatherWithMemorySqliteDialector(t *testing.T, source ISource) *Weather {
	t.Helper()

	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	weatherInstance := &Weather{
		Db:      *dbInstance,
		Metrics: observability.NewMetricsForTesting(),
	}

	if source == nil {
		source = NewOpenWeatherSource("test-key")
	}

	weatherInstance.WithServices(ServiceOpts{
		Source: source,
		Ingest: weatherInstance.GetIIngest(),
		Alert:  weatherInstance.GetIAlert(),
	})

	return weatherInstance
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
