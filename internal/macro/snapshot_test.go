package macro

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/edgefinder/internal/external/calendar"
	"github.com/wonny/edgefinder/pkg/logger"
)

// stubFetcher serves canned rows per region and counts calls
type stubFetcher struct {
	rows  map[string][]calendar.RawEvent
	calls int
}

func (f *stubFetcher) Events(ctx context.Context, region calendar.Region) []calendar.RawEvent {
	f.calls++
	return f.rows[region.Key]
}

func bullishRows() []calendar.RawEvent {
	return []calendar.RawEvent{
		{Name: "Retail Sales (MoM)", ActualRaw: "0.7%", ForecastRaw: "0.2%", PreviousRaw: "0.3%"},
		{Name: "Manufacturing PMI", ActualRaw: "55.0", PreviousRaw: "52.0"},
		{Name: "CPI (YoY)", ActualRaw: "3.5%", ForecastRaw: "3.0%"},
	}
}

func TestServiceGetBuildsAndCaches(t *testing.T) {
	fetcher := &stubFetcher{rows: map[string][]calendar.RawEvent{
		"us": bullishRows(),
	}}
	regions := []calendar.Region{
		{Key: "us", Path: "/united-states"},
		{Key: "uk", Path: "/united-kingdom"},
	}

	now := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	svc := NewService(fetcher, regions, 12*time.Hour, logger.NewNop()).
		WithClock(func() time.Time { return now })

	snap := svc.Get(context.Background())

	require.Len(t, snap.Regions, 2)
	assert.Equal(t, "2025-03-01 09:30 UTC", snap.LastUpdated)

	us := snap.Regions["us"]
	assert.Equal(t, 3, us.Score)
	assert.Equal(t, BiasStrong, us.Bias)

	// Configured region with zero matched indicators scores 0, not the
	// neutral default
	uk := snap.Regions["uk"]
	assert.Equal(t, 0, uk.Score)
	assert.Equal(t, BiasWeak, uk.Bias)
	assert.Nil(t, uk.Retail)
	assert.Nil(t, uk.PMI)
	assert.Nil(t, uk.CPI)

	fetchesAfterBuild := fetcher.calls
	assert.Equal(t, 2, fetchesAfterBuild)

	// Within the TTL window: cache hit, stale timestamp, no refetch
	now = now.Add(11 * time.Hour)
	again := svc.Get(context.Background())
	assert.Equal(t, "2025-03-01 09:30 UTC", again.LastUpdated)
	assert.Equal(t, fetchesAfterBuild, fetcher.calls)

	// Past the TTL window: rebuild with a fresh timestamp
	now = now.Add(2 * time.Hour)
	rebuilt := svc.Get(context.Background())
	assert.Equal(t, "2025-03-01 22:30 UTC", rebuilt.LastUpdated)
	assert.Equal(t, fetchesAfterBuild*2, fetcher.calls)
}

func TestServiceUnconfiguredRegionDefaultsNeutral(t *testing.T) {
	fetcher := &stubFetcher{}
	regions := []calendar.Region{{Key: "mars"}} // no path, no currency

	svc := NewService(fetcher, regions, time.Hour, logger.NewNop())
	snap := svc.Get(context.Background())

	mars := snap.Regions["mars"]
	assert.Equal(t, 1, mars.Score)
	assert.Equal(t, BiasNeutral, mars.Bias)
	assert.Nil(t, mars.Retail)
	assert.Nil(t, mars.PMI)
	assert.Nil(t, mars.CPI)

	// The fetcher must not even be consulted
	assert.Equal(t, 0, fetcher.calls)
}

func TestServiceRegionFailureIsolated(t *testing.T) {
	// "us" yields rows, "uk" yields nothing (total source failure):
	// uk must not poison the us scoring
	fetcher := &stubFetcher{rows: map[string][]calendar.RawEvent{
		"us": bullishRows(),
	}}
	regions := []calendar.Region{
		{Key: "us", Path: "/united-states"},
		{Key: "uk", Path: "/united-kingdom"},
	}

	svc := NewService(fetcher, regions, time.Hour, logger.NewNop())
	snap := svc.Get(context.Background())

	assert.Equal(t, 3, snap.Regions["us"].Score)
	assert.Equal(t, 0, snap.Regions["uk"].Score)
}

func TestServiceRefreshBypassesTTL(t *testing.T) {
	fetcher := &stubFetcher{rows: map[string][]calendar.RawEvent{
		"us": bullishRows(),
	}}
	regions := []calendar.Region{{Key: "us", Path: "/united-states"}}

	svc := NewService(fetcher, regions, 12*time.Hour, logger.NewNop())

	svc.Get(context.Background())
	svc.Refresh(context.Background())

	assert.Equal(t, 2, fetcher.calls)
}

func TestServiceConcurrentReaders(t *testing.T) {
	fetcher := &stubFetcher{rows: map[string][]calendar.RawEvent{
		"us": bullishRows(),
	}}
	regions := []calendar.Region{{Key: "us", Path: "/united-states"}}

	svc := NewService(fetcher, regions, 12*time.Hour, logger.NewNop())

	done := make(chan Snapshot, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- svc.Get(context.Background())
		}()
	}

	for i := 0; i < 8; i++ {
		snap := <-done
		// Every reader sees a complete snapshot, never a partial one
		require.Len(t, snap.Regions, 1)
		assert.Equal(t, 3, snap.Regions["us"].Score)
	}

	// Racing a cold cache still builds exactly once
	assert.Equal(t, 1, fetcher.calls)
}
