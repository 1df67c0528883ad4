// Package connectivity answers whether the remote service is reachable.
//
// Reachability is decided by an HTTP probe of the remote, never by local
// network interface state. Results are cached for a short TTL so bursts of
// callers share one probe.
package connectivity

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/go-academy-offline/internal/logger"
	"github.com/MKhiriev/go-academy-offline/internal/metrics"
)

const probeKey = "remote"

// Prober checks the remote once. A nil error means reachable.
type Prober interface {
	Health(ctx context.Context) error
}

// Monitor caches probe results of a [Prober].
type Monitor struct {
	prober  Prober
	timeout time.Duration
	cache   *expirable.LRU[string, bool]
	group   singleflight.Group
	logger  *logger.Logger
}

// NewMonitor returns a Monitor that caches results for ttl and bounds each
// probe by timeout. A zero timeout leaves the deadline to the caller.
func NewMonitor(prober Prober, ttl, timeout time.Duration, logger *logger.Logger) *Monitor {
	return &Monitor{
		prober:  prober,
		timeout: timeout,
		cache:   expirable.NewLRU[string, bool](1, nil, ttl),
		logger:  logger,
	}
}

// IsOnline returns the cached reachability, probing when the cache is
// empty or expired.
func (m *Monitor) IsOnline(ctx context.Context) bool {
	if online, ok := m.cache.Get(probeKey); ok {
		return online
	}
	return m.probe(ctx, false)
}

// Probe forces a fresh probe and caches its result.
func (m *Monitor) Probe(ctx context.Context) bool {
	return m.probe(ctx, true)
}

// probe runs at most one prober call at a time; concurrent callers share
// its result.
func (m *Monitor) probe(ctx context.Context, force bool) bool {
	v, _, _ := m.group.Do(probeKey, func() (any, error) {
		if !force {
			if online, ok := m.cache.Get(probeKey); ok {
				return online, nil
			}
		}

		probeCtx := context.WithoutCancel(ctx)
		if m.timeout > 0 {
			var cancel context.CancelFunc
			probeCtx, cancel = context.WithTimeout(probeCtx, m.timeout)
			defer cancel()
		}

		err := m.prober.Health(probeCtx)
		online := err == nil
		if err != nil {
			m.logger.Debug().Err(err).Str("func", "Monitor.probe").Msg("remote unreachable")
			metrics.ConnectivityProbes.WithLabelValues("offline").Inc()
		} else {
			metrics.ConnectivityProbes.WithLabelValues("online").Inc()
		}

		m.cache.Add(probeKey, online)
		return online, nil
	})

	return v.(bool)
}

// Invalidate drops the cached result, e.g. after a transport error proved
// the remote unreachable.
func (m *Monitor) Invalidate() {
	m.cache.Remove(probeKey)
}

// MarkOffline records an observed transport failure without probing.
func (m *Monitor) MarkOffline() {
	m.cache.Add(probeKey, false)
}
