package pipeline

import (
	"context"
	"log/slog"
	"time"
)

// Janitor bounds resource retention: it fails stalled jobs and drops finished
// jobs, their archives and stale uploads once the retention period is over.
type Janitor struct {
	log          *slog.Logger
	interval     time.Duration
	stallTimeout time.Duration
	retention    time.Duration
	coordinator  *Coordinator
	archives     ArchiveStore
	uploads      UploadStore
}

func NewJanitor(
	log *slog.Logger,
	interval time.Duration,
	stallTimeout time.Duration,
	retention time.Duration,
	coordinator *Coordinator,
	archives ArchiveStore,
	uploads UploadStore,
) *Janitor {
	return &Janitor{
		log:          log,
		interval:     interval,
		stallTimeout: stallTimeout,
		retention:    retention,
		coordinator:  coordinator,
		archives:     archives,
		uploads:      uploads,
	}
}

func (j *Janitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.log.DebugContext(ctx, "cleanup cycle started")
			j.sweep(ctx)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (j *Janitor) sweep(ctx context.Context) {
	if j.stallTimeout > 0 {
		if n := j.coordinator.FailStalled(j.stallTimeout); n > 0 {
			j.log.WarnContext(ctx, "failed stalled jobs", slog.Int("count", n))
		}
	}

	for _, key := range j.coordinator.Evict(j.retention) {
		if err := j.archives.Delete(ctx, key); err != nil {
			j.log.ErrorContext(ctx, "failed to delete archive",
				slog.String("key", key),
				slog.String("err", err.Error()),
			)
			continue
		}

		j.log.DebugContext(ctx, "deleted expired archive", slog.String("key", key))
	}

	removed, err := j.uploads.RemoveOlderThan(j.retention)
	if err != nil {
		j.log.ErrorContext(ctx, "failed to remove stale uploads", slog.String("err", err.Error()))
		return
	}

	if removed > 0 {
		j.log.DebugContext(ctx, "removed stale uploads", slog.Int("count", removed))
	}
}
