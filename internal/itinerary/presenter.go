package itinerary

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tripatlas/itinerary-viewer/internal/trip"
	"github.com/tripatlas/itinerary-viewer/internal/weather"
)

// Fetcher abstracts the forecast lookup so tests can stub it.
type Fetcher interface {
	Fetch(ctx context.Context, lat, lon float64, date time.Time) weather.Result
}

// DayBlock is one day's displayable content: the static plan, the resolved
// calendar date and the day's weather result.
type DayBlock struct {
	Plan    trip.DayPlan
	Date    time.Time
	Weather weather.Result
}

// Presenter assembles day blocks for a view. It is stateless: each call is a
// pure function of the start date and selector plus one forecast lookup per day.
type Presenter struct {
	registry *trip.Registry
	plans    []trip.DayPlan
	fetcher  Fetcher
	timeout  time.Duration
	log      zerolog.Logger
}

// New creates a Presenter. plans must already have passed trip.ValidatePlans.
func New(registry *trip.Registry, plans []trip.DayPlan, fetcher Fetcher, timeout time.Duration, log zerolog.Logger) *Presenter {
	return &Presenter{
		registry: registry,
		plans:    plans,
		fetcher:  fetcher,
		timeout:  timeout,
		log:      log,
	}
}

// Present returns the day blocks for the selector in day order. Day n's date
// is startDate plus n-1 days, plain calendar arithmetic. Weather lookups run
// concurrently and are failure-isolated: one degraded day never affects the
// others.
func (p *Presenter) Present(ctx context.Context, startDate time.Time, view trip.ViewSelector) []DayBlock {
	days := view.Days()
	blocks := make([]DayBlock, len(days))

	var wg sync.WaitGroup
	for i, day := range days {
		plan := p.plans[day-1]
		date := startDate.AddDate(0, 0, day-1)
		blocks[i] = DayBlock{Plan: plan, Date: date}

		// Validated at startup, cannot fail here.
		probe, _ := p.registry.Resolve(plan.ProbeLocation)

		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			fetchCtx, cancel := context.WithTimeout(ctx, p.timeout)
			defer cancel()

			blocks[i].Weather = p.fetcher.Fetch(fetchCtx, probe.Latitude, probe.Longitude, date)
		}(i)
	}
	wg.Wait()

	for _, b := range blocks {
		if b.Weather.Status != weather.StatusOK {
			p.log.Debug().Int("day", b.Plan.Index).Str("status", string(b.Weather.Status)).
				Msg("degraded weather for day")
		}
	}

	return blocks
}
