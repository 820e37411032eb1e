package calendar

import (
	"context"
	"io"
	"net/http"

	"github.com/wonny/edgefinder/pkg/httputil"
	"github.com/wonny/edgefinder/pkg/logger"
)

// mobileHeaders spoofs a mobile device to get the lighter page variant
// and dodge the heavier desktop anti-bot checks
var mobileHeaders = map[string]string{
	"User-Agent": "Mozilla/5.0 (Linux; Android 10; Pixel 4 XL) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/124.0 Mobile Safari/537.36",
	"Accept-Language": "en-US,en;q=0.9",
}

// HTMLFetcher scrapes one calendar page per region.
// ⭐ SSOT: calendar HTML scraping happens only here
type HTMLFetcher struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
}

// NewHTMLFetcher creates a per-region HTML fetcher.
// The source blocks aggressive clients, so the caller is expected to
// hand in a client with retries disabled and a short timeout.
func NewHTMLFetcher(httpClient *httputil.Client, log *logger.Logger, baseURL string) *HTMLFetcher {
	return &HTMLFetcher{
		httpClient: httpClient,
		logger:     log,
		baseURL:    baseURL,
	}
}

// Events fetches and extracts calendar rows for one region.
// A failed fetch yields nil; the region scores all-absent this cycle.
func (f *HTMLFetcher) Events(ctx context.Context, region Region) []RawEvent {
	if region.Path == "" {
		return nil
	}

	html := f.fetchHTML(ctx, f.baseURL+region.Path)
	if html == "" {
		return nil
	}

	rows := parseCalendarTable(html, region.Key)

	f.logger.WithFields(map[string]interface{}{
		"region": region.Key,
		"rows":   len(rows),
	}).Debug("Extracted calendar rows")

	return rows
}

// fetchHTML downloads the page body, normalizing every failure mode
// (network error, non-200, unreadable body) to an empty string
func (f *HTMLFetcher) fetchHTML(ctx context.Context, url string) string {
	resp, err := f.httpClient.GetWithHeaders(ctx, url, mobileHeaders)
	if err != nil {
		f.logger.WithError(err).WithField("url", url).Warn("Calendar fetch failed")
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.logger.WithFields(map[string]interface{}{
			"url":         url,
			"status_code": resp.StatusCode,
		}).Warn("Calendar fetch returned non-OK status")
		return ""
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		f.logger.WithError(err).WithField("url", url).Warn("Calendar body read failed")
		return ""
	}

	return string(body)
}
