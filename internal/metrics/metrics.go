// Package metrics holds the prometheus collectors of the offline core.
// All collectors register with the default registry on import.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SyncPasses counts finished sync passes by result: synced, offline,
	// error.
	SyncPasses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "academy_sync_passes_total",
			Help: "Sync passes by result.",
		},
		[]string{"result"},
	)

	// SyncPassDuration observes the wall time of a sync pass.
	SyncPassDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "academy_sync_pass_duration_seconds",
		Help:    "Duration of sync passes.",
		Buckets: prometheus.DefBuckets,
	})

	// PushedEntries counts pushed queue entries by outcome: applied,
	// conflict, rejected, retry, terminal.
	PushedEntries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "academy_sync_pushed_entries_total",
			Help: "Pushed sync queue entries by outcome.",
		},
		[]string{"outcome"},
	)

	// PulledChanges counts remote changes applied locally.
	PulledChanges = promauto.NewCounter(prometheus.CounterOpts{
		Name: "academy_sync_pulled_changes_total",
		Help: "Remote changes applied to the local store.",
	})

	// Conflicts counts last-writer-wins decisions by winner.
	Conflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "academy_sync_conflicts_total",
			Help: "Sync conflicts by resolution.",
		},
		[]string{"resolution"},
	)

	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "academy_content_cache_hits_total",
		Help: "Content fetches served from the local cache.",
	})
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "academy_content_cache_misses_total",
		Help: "Content fetches that needed a download.",
	})

	// Downloads counts content downloads by result: complete, network,
	// checksum_mismatch, io.
	Downloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "academy_content_downloads_total",
			Help: "Content downloads by result.",
		},
		[]string{"result"},
	)

	DownloadedBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "academy_content_downloaded_bytes_total",
		Help: "Bytes committed to the content cache.",
	})

	// ConnectivityProbes counts remote probes by result: online, offline.
	ConnectivityProbes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "academy_connectivity_probes_total",
			Help: "Connectivity probes by result.",
		},
		[]string{"result"},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "academy_bridge_requests_total",
			Help: "Bridge HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "academy_bridge_request_duration_seconds",
			Help:    "Bridge HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// ObserveRequest records one bridge request. route must be a pattern,
// never a raw path, to keep label cardinality bounded.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// StatusRecorder captures the status code written by a handler.
type StatusRecorder struct {
	http.ResponseWriter
	Status int
}

func NewStatusRecorder(w http.ResponseWriter) *StatusRecorder {
	return &StatusRecorder{ResponseWriter: w, Status: http.StatusOK}
}

func (r *StatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}
