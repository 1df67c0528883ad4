package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-academy-offline/internal/logger"
	"github.com/MKhiriev/go-academy-offline/internal/service"
)

const defaultReconnectInterval = 15 * time.Second

// reconnectWorker watches connectivity and starts a sync pass as soon as
// the remote becomes reachable again, so changes queued while offline do
// not wait for the next scheduled pass.
type reconnectWorker struct {
	monitor  service.ConnectivityMonitor
	sync     service.ClientSyncService
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewReconnectWorker(
	monitor service.ConnectivityMonitor,
	syncService service.ClientSyncService,
	interval time.Duration,
	logger *logger.Logger,
) Worker {
	if interval <= 0 {
		interval = defaultReconnectInterval
	}
	return &reconnectWorker{
		monitor:  monitor,
		sync:     syncService,
		interval: interval,
		logger:   logger,
	}
}

func (w *reconnectWorker) Run(ctx context.Context) {
	w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	w.mu.Lock()
	w.cancel, w.done = cancel, done
	w.mu.Unlock()

	go func() {
		defer close(done)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		online := w.monitor.IsOnline(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			now := w.monitor.IsOnline(ctx)
			if now && !online {
				w.logger.Info().Str("func", "reconnectWorker.Run").Msg("remote reachable again, syncing")
				if _, err := w.sync.Sync(ctx); err != nil {
					w.logger.Err(err).Str("func", "reconnectWorker.Run").Msg("sync after reconnect failed")
				}
			}
			online = now
		}
	}()
}

func (w *reconnectWorker) Stop() {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
