package itinerary

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tripatlas/itinerary-viewer/internal/trip"
	"github.com/tripatlas/itinerary-viewer/internal/weather"
)

type stubFetcher struct {
	fn func(lat, lon float64, date time.Time) weather.Result
}

func (s stubFetcher) Fetch(_ context.Context, lat, lon float64, date time.Time) weather.Result {
	return s.fn(lat, lon, date)
}

func newTestPresenter(t *testing.T, fetcher Fetcher) *Presenter {
	t.Helper()
	registry := trip.NewRegistry(trip.Locations())
	plans := trip.Plans()
	if err := trip.ValidatePlans(registry, plans); err != nil {
		t.Fatalf("invalid plans: %v", err)
	}
	return New(registry, plans, fetcher, time.Second, zerolog.Nop())
}

func alwaysOk(code int, high, low float64) Fetcher {
	return stubFetcher{fn: func(_, _ float64, _ time.Time) weather.Result {
		return weather.Ok(code, high, low)
	}}
}

func TestPresentOverview(t *testing.T) {
	p := newTestPresenter(t, alwaysOk(3, 100, 75))

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	blocks := p.Present(context.Background(), start, trip.Overview)

	if len(blocks) != trip.DayCount {
		t.Fatalf("expected %d blocks, got %d", trip.DayCount, len(blocks))
	}
	for i, b := range blocks {
		if b.Plan.Index != i+1 {
			t.Errorf("block %d has day index %d", i, b.Plan.Index)
		}
		wantDate := start.AddDate(0, 0, i)
		if !b.Date.Equal(wantDate) {
			t.Errorf("day %d date = %v, want %v", i+1, b.Date, wantDate)
		}
		if got := b.Weather.Display(); got != "⛅ Partly Cloudy | H: 100°F L: 75°F" {
			t.Errorf("day %d weather = %q", i+1, got)
		}
	}
	if blocks[3].Date.Format("2006-01-02") != "2024-06-04" {
		t.Fatalf("day 4 date = %v", blocks[3].Date)
	}
}

func TestPresentSingleDay(t *testing.T) {
	var gotLat, gotLon float64
	fetcher := stubFetcher{fn: func(lat, lon float64, _ time.Time) weather.Result {
		gotLat, gotLon = lat, lon
		return weather.Ok(0, 90, 60)
	}}
	p := newTestPresenter(t, fetcher)

	day2, err := trip.Day(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	blocks := p.Present(context.Background(), start, day2)

	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Plan.Index != 2 {
		t.Fatalf("day index = %d", blocks[0].Plan.Index)
	}
	if blocks[0].Date.Format("2006-01-02") != "2024-06-02" {
		t.Fatalf("date = %v", blocks[0].Date)
	}
	// Day 2 probes Grand Canyon South.
	if gotLat != 36.0544 || gotLon != -112.1401 {
		t.Fatalf("probe coordinates = %f, %f", gotLat, gotLon)
	}
}

func TestPresentDateArithmeticAcrossMonthBoundary(t *testing.T) {
	p := newTestPresenter(t, alwaysOk(0, 70, 50))

	// Non-leap year: Feb 28 + 2 days is Mar 2.
	start := time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC)
	blocks := p.Present(context.Background(), start, trip.Overview)

	want := []string{"2023-02-28", "2023-03-01", "2023-03-02", "2023-03-03"}
	for i, b := range blocks {
		if got := b.Date.Format("2006-01-02"); got != want[i] {
			t.Errorf("day %d date = %q, want %q", i+1, got, want[i])
		}
	}
}

func TestPresentIsolatesWeatherFailures(t *testing.T) {
	// Day 3 probes Sedona; that lookup fails while the others succeed.
	fetcher := stubFetcher{fn: func(lat, _ float64, _ time.Time) weather.Result {
		if lat == 34.8697 {
			return weather.Offline()
		}
		return weather.Ok(0, 95, 70)
	}}
	p := newTestPresenter(t, fetcher)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	blocks := p.Present(context.Background(), start, trip.Overview)

	if len(blocks) != trip.DayCount {
		t.Fatalf("expected %d blocks, got %d", trip.DayCount, len(blocks))
	}
	for i, b := range blocks {
		wantStatus := weather.StatusOK
		if b.Plan.Index == 3 {
			wantStatus = weather.StatusOffline
		}
		if b.Weather.Status != wantStatus {
			t.Errorf("day %d status = %q, want %q", i+1, b.Weather.Status, wantStatus)
		}
	}
	if got := blocks[2].Weather.Display(); got != "Weather service offline" {
		t.Fatalf("day 3 display = %q", got)
	}
}
