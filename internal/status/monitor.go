package status

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/Umaima-s-pathan/VR-final/sdk/log"
	"github.com/Umaima-s-pathan/VR-final/sdk/net"
)

const (
	// defaultTTL is how long an online/offline answer is reused before
	// the backend is probed again. A cold backend takes tens of seconds
	// to wake; hammering it with health checks helps nobody.
	defaultTTL = 30 * time.Second

	probeTimeout = 10 * time.Second

	cacheKey = "backend_online"
)

// Monitor answers "is the backend online?" with a short-lived cache in
// front of the health probe.
type Monitor struct {
	backend net.Backend
	cache   *gocache.Cache
	logger  log.Logger
}

// NewMonitor creates a Monitor with the given TTL; ttl <= 0 uses the
// default.
func NewMonitor(backend net.Backend, ttl time.Duration, logger log.Logger) *Monitor {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Monitor{
		backend: backend,
		cache:   gocache.New(ttl, 2*ttl),
		logger:  logger,
	}
}

// Online reports backend reachability, serving a cached answer when one
// is fresh.
func (m *Monitor) Online(ctx context.Context) bool {
	if cached, found := m.cache.Get(cacheKey); found {
		online := cached.(bool)
		m.logger.Debug(ctx, "backend status served from cache", "online", online)
		return online
	}

	online := m.probe(ctx)
	m.cache.SetDefault(cacheKey, online)
	return online
}

// Refresh forces a probe, bypassing and repopulating the cache.
func (m *Monitor) Refresh(ctx context.Context) bool {
	online := m.probe(ctx)
	m.cache.SetDefault(cacheKey, online)
	return online
}

func (m *Monitor) probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	health, err := m.backend.Health(ctx)
	if err != nil {
		m.logger.Warn(ctx, "backend health probe failed", "backend", m.backend.BaseURL(), "error", err.Error())
		return false
	}

	m.logger.Debug(ctx, "backend health probe answered",
		"backend", m.backend.BaseURL(),
		"online", health.OK,
		"status", health.StatusCode,
		"viaFallback", health.ViaFallback)
	return health.OK
}
