package weather

import (
	"context"
	"errors"

	"github.com/jonboulle/clockwork"
	"github.com/falahh6/weather-api/pkg/db"
	"github.com/falahh6/weather-api/pkg/models"
	"github.com/falahh6/weather-api/pkg/observability"
)

// The two failure kinds surfaced by the core; everything underneath wraps one
// of these so the HTTP layer can answer with a single generic 500 message.
var (
	ErrSourceUnavailable = errors.New("weather source unavailable")
	ErrStoreFailure      = errors.New("weather store failure")
)

type ISource interface {
	FetchCurrent(ctx context.Context, city string) (*models.CurrentConditions, error)
}

type IIngest interface {
	IngestAll(ctx context.Context, policy *Policy) (*IngestReport, error)
	IngestCity(ctx context.Context, city string) (*CityReport, error)
}

type IAlert interface {
	EvaluateAndStoreAlerts(policy *Policy) ([]models.Alert, error)
	GetCityAlerts(city string) ([]models.Alert, error)
}

type Weather struct {
	Db      db.DB
	Clock   clockwork.Clock
	Metrics *observability.Metrics

	Source ISource
	Ingest IIngest
	Alert  IAlert
}

type ServiceOpts struct {
	Source ISource
	Ingest IIngest
	Alert  IAlert
}

func (w *Weather) WithServices(opts ServiceOpts) *Weather {
	if opts.Source != nil {
		w.Source = opts.Source
	}
	if opts.Ingest != nil {
		w.Ingest = opts.Ingest
	}
	if opts.Alert != nil {
		w.Alert = opts.Alert
	}
	return w
}

func (w *Weather) clock() clockwork.Clock {
	if w.Clock == nil {
		w.Clock = clockwork.NewRealClock()
	}
	return w.Clock
}
