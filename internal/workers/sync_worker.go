package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-academy-offline/internal/service"
)

type syncWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
}

// NewSyncWorker runs job every interval.
func NewSyncWorker(job service.ClientSyncJob, interval time.Duration) Worker {
	return &syncWorker{job: job, interval: interval}
}

func (w *syncWorker) Run(ctx context.Context) {
	w.job.Start(ctx, w.interval)
}

func (w *syncWorker) Stop() {
	w.job.Stop()
}
