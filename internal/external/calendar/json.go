package calendar

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/wonny/edgefinder/pkg/httputil"
	"github.com/wonny/edgefinder/pkg/logger"
)

// jsonEvent mirrors the upstream JSON contract. Field names are fixed
// by the source and must not be renamed.
type jsonEvent struct {
	Currency  string `json:"currency"`
	Event     string `json:"event"`
	Actual    string `json:"actual"`
	Forecast  string `json:"forecast"`
	Previous  string `json:"previous"`
	Timestamp string `json:"timestamp"`
}

// jsonMemoTTL keeps the decoded endpoint response around long enough
// for one sequential snapshot build to reuse it across regions, so the
// endpoint is hit once per rebuild rather than once per region.
const jsonMemoTTL = time.Minute

// JSONFetcher reads the whole calendar from a single JSON endpoint and
// filters per region by currency code.
// ⭐ SSOT: calendar JSON API access happens only here
type JSONFetcher struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	url        string

	mu        sync.Mutex
	events    []jsonEvent
	fetchedAt time.Time
}

// NewJSONFetcher creates a single-endpoint JSON fetcher
func NewJSONFetcher(httpClient *httputil.Client, log *logger.Logger, url string) *JSONFetcher {
	return &JSONFetcher{
		httpClient: httpClient,
		logger:     log,
		url:        url,
	}
}

// Events returns the calendar rows whose currency matches the region.
// Fetch or decode failures degrade to nil, never an error.
func (f *JSONFetcher) Events(ctx context.Context, region Region) []RawEvent {
	if region.Currency == "" {
		return nil
	}

	events := f.allEvents(ctx)

	var rows []RawEvent
	for _, ev := range events {
		if ev.Currency != region.Currency {
			continue
		}
		rows = append(rows, RawEvent{
			Region:      region.Key,
			Currency:    ev.Currency,
			Name:        ev.Event,
			ActualRaw:   ev.Actual,
			ForecastRaw: ev.Forecast,
			PreviousRaw: ev.Previous,
			Timestamp:   ev.Timestamp,
		})
	}

	f.logger.WithFields(map[string]interface{}{
		"region": region.Key,
		"rows":   len(rows),
	}).Debug("Filtered calendar events")

	return rows
}

// allEvents fetches and memoizes the full event list
func (f *JSONFetcher) allEvents(ctx context.Context) []jsonEvent {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.events != nil && time.Since(f.fetchedAt) < jsonMemoTTL {
		return f.events
	}

	events := f.fetch(ctx)

	f.events = events
	f.fetchedAt = time.Now()

	return events
}

// fetch downloads and decodes the endpoint, normalizing all failures
// to an empty list
func (f *JSONFetcher) fetch(ctx context.Context) []jsonEvent {
	resp, err := f.httpClient.Get(ctx, f.url)
	if err != nil {
		f.logger.WithError(err).Warn("Calendar JSON fetch failed")
		return []jsonEvent{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.logger.WithField("status_code", resp.StatusCode).Warn("Calendar JSON returned non-OK status")
		return []jsonEvent{}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		f.logger.WithError(err).Warn("Calendar JSON body read failed")
		return []jsonEvent{}
	}

	var events []jsonEvent
	if err := json.Unmarshal(body, &events); err != nil {
		f.logger.WithError(err).Warn("Calendar JSON decode failed")
		return []jsonEvent{}
	}

	return events
}
