package macro

import (
	"context"
	"sync"
	"time"

	"github.com/wonny/edgefinder/internal/external/calendar"
	"github.com/wonny/edgefinder/pkg/logger"
)

// lastUpdatedLayout formats the snapshot build time; "UTC" is appended
// literally after converting
const lastUpdatedLayout = "2006-01-02 15:04"

// Service builds and caches the multi-region macro snapshot.
// ⭐ SSOT: the process-wide snapshot cache lives only here.
//
// One slot, 12h TTL by default. The mutex is held across a rebuild so
// at most one rebuild is in flight per expiry; concurrent callers block
// and then all read the freshly swapped snapshot. Callers on a cache
// hit get the stored snapshot unchanged, stale timestamp included.
type Service struct {
	fetcher calendar.Fetcher
	regions []calendar.Region
	ttl     time.Duration
	logger  *logger.Logger
	now     func() time.Time

	mu      sync.Mutex
	cached  *Snapshot
	builtAt time.Time
}

// NewService creates a snapshot service over the given fetcher and
// region table
func NewService(fetcher calendar.Fetcher, regions []calendar.Region, ttl time.Duration, log *logger.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		regions: regions,
		ttl:     ttl,
		logger:  log,
		now:     time.Now,
	}
}

// WithClock injects the time source, for tests
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Get returns the cached snapshot, rebuilding it first when the TTL
// window has lapsed. Never fails: worst case is a snapshot where every
// configured region scored from zero readings.
func (s *Service) Get(ctx context.Context) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.now().Sub(s.builtAt) < s.ttl {
		return *s.cached
	}

	snap := s.build(ctx)
	s.cached = &snap
	s.builtAt = s.now()

	return snap
}

// Refresh rebuilds the snapshot unconditionally and swaps it in.
// Used by the scheduler to warm the cache before callers hit expiry.
func (s *Service) Refresh(ctx context.Context) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.build(ctx)
	s.cached = &snap
	s.builtAt = s.now()

	return snap
}

// build runs fetch → extract → normalize → score for every region,
// sequentially. Regions are independent; one region's total failure
// leaves the others untouched.
func (s *Service) build(ctx context.Context) Snapshot {
	start := s.now()

	snap := Snapshot{
		Regions:     make(map[string]RegionMacro, len(s.regions)),
		LastUpdated: start.UTC().Format(lastUpdatedLayout) + " UTC",
	}

	for _, region := range s.regions {
		snap.Regions[region.Key] = s.buildRegion(ctx, region)
	}

	s.logger.WithFields(map[string]interface{}{
		"regions":  len(snap.Regions),
		"duration": time.Since(start),
	}).Info("Built macro snapshot")

	return snap
}

// buildRegion scores one region. A region with no source locator is a
// defined default (neutral, all readings absent), not a failure.
func (s *Service) buildRegion(ctx context.Context, region calendar.Region) RegionMacro {
	if !region.Configured() {
		return RegionMacro{Score: 1, Bias: BiasNeutral}
	}

	rows := s.fetcher.Events(ctx, region)

	retail := ParseRetailSales(rows)
	pmi := ParsePMI(rows)
	cpi := ParseCPI(rows)

	score := Score(retail, pmi, cpi)

	s.logger.WithFields(map[string]interface{}{
		"region": region.Key,
		"rows":   len(rows),
		"score":  score,
	}).Debug("Scored region macro")

	return RegionMacro{
		Retail: retail,
		PMI:    pmi,
		CPI:    cpi,
		Score:  score,
		Bias:   Bias(score),
	}
}
