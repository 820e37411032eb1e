package yahoo

import (
	"context"
	"sync"
	"time"

	"github.com/wonny/edgefinder/pkg/logger"
)

// CachedClient memoizes chart responses per ticker+range so redrawing
// the dashboard doesn't re-hit the API for every instrument
type CachedClient struct {
	client *Client
	ttl    time.Duration
	logger *logger.Logger

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	candles   []Candle
	fetchedAt time.Time
}

// NewCachedClient wraps a chart client with an in-memory TTL cache
func NewCachedClient(client *Client, ttl time.Duration, log *logger.Logger) *CachedClient {
	return &CachedClient{
		client:  client,
		ttl:     ttl,
		logger:  log,
		entries: make(map[string]cacheEntry),
	}
}

// FetchDaily returns cached candles when fresh, otherwise fetches.
// Fetch errors are not cached so the next call retries the source.
func (c *CachedClient) FetchDaily(ctx context.Context, ticker, rng string) ([]Candle, error) {
	key := ticker + "|" + rng

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if ok && time.Since(entry.fetchedAt) < c.ttl {
		return entry.candles, nil
	}

	candles, err := c.client.FetchDaily(ctx, ticker, rng)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{candles: candles, fetchedAt: time.Now()}
	c.mu.Unlock()

	return candles, nil
}

// Len returns the number of cached series
func (c *CachedClient) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
