package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/kurochkinivan/promo_cards/internal/domain"
	"github.com/kurochkinivan/promo_cards/internal/infrastructure/archive"
	"github.com/kurochkinivan/promo_cards/internal/progress"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultWorkers = 4

	recordTimeout = 10 * time.Second
	maxSlugLength = 40
)

// Recorder persists finished jobs. Any field may be left nil to skip persistence.
type Recorder struct {
	Jobs       JobSaver
	Artifacts  ArtifactsSaver
	Transactor Transactor
}

type jobState struct {
	mu           sync.Mutex
	job          domain.Job
	rows         []*domain.RowRecord
	lastProgress time.Time
	packaging    bool
	cancel       context.CancelCauseFunc
	log          *slog.Logger
}

func (s *jobState) snapshot() *domain.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	job := s.job
	job.Percentage = domain.Percentage(job.Total, job.Processed)

	return &job
}

// Coordinator owns generation jobs. Rows of one job are rendered by a bounded
// pool of workers; the first failing row aborts the whole job.
type Coordinator struct {
	log        *slog.Logger
	stagingDir string
	workers    int
	renderer   CardRenderer
	logos      LogoResolver
	publisher  Publisher
	archives   ArchiveStore
	recorder   *Recorder
	now        func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	jobs     map[string]*jobState
	sessions map[string]*jobState
}

func NewCoordinator(
	log *slog.Logger,
	stagingDir string,
	workers int,
	renderer CardRenderer,
	logos LogoResolver,
	publisher Publisher,
	archives ArchiveStore,
	recorder *Recorder,
) *Coordinator {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Coordinator{
		log:        log,
		stagingDir: stagingDir,
		workers:    workers,
		renderer:   renderer,
		logos:      logos,
		publisher:  publisher,
		archives:   archives,
		recorder:   recorder,
		now:        time.Now,
		ctx:        ctx,
		cancel:     cancel,
		jobs:       make(map[string]*jobState),
		sessions:   make(map[string]*jobState),
	}
}

// Run blocks until ctx is done, then cancels running jobs and waits for them.
func (c *Coordinator) Run(ctx context.Context) error {
	<-ctx.Done()

	c.log.InfoContext(ctx, "stopping coordinator, cancelling running jobs")

	c.mu.Lock()
	c.cancel()
	c.mu.Unlock()

	c.wg.Wait()

	return ctx.Err()
}

// StartJob binds rows to sessionID and starts rendering in the background.
// It fails with domain.ErrDuplicateSession while another job of the session is running.
func (c *Coordinator) StartJob(rows []*domain.RowRecord, sessionID string) (*domain.Job, error) {
	if err := progress.ValidateSession(sessionID); err != nil {
		return nil, err
	}

	now := c.now()
	st := &jobState{
		job: domain.Job{
			ID:        uuid.NewString(),
			SessionID: sessionID,
			Status:    domain.StatusPending,
			Total:     len(rows),
			CreatedAt: now,
		},
		rows:         rows,
		lastProgress: now,
	}
	st.log = c.log.With(slog.String("job_id", st.job.ID), slog.String("session_id", sessionID))

	ctx, cancel := context.WithCancelCause(c.ctx)
	st.cancel = cancel

	c.mu.Lock()
	if err := c.ctx.Err(); err != nil {
		c.mu.Unlock()
		cancel(nil)
		return nil, fmt.Errorf("coordinator is stopped: %w", err)
	}
	if active, ok := c.sessions[sessionID]; ok && active != nil {
		c.mu.Unlock()
		cancel(nil)
		return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateSession, sessionID)
	}
	c.sessions[sessionID] = st
	c.jobs[st.job.ID] = st
	c.wg.Add(1)
	c.mu.Unlock()

	st.mu.Lock()
	st.job.Status = domain.StatusRunning
	st.mu.Unlock()

	started := st.snapshot()

	st.log.Info("job started", slog.Int("rows", len(rows)))

	go c.run(ctx, st)

	return started, nil
}

func (c *Coordinator) Job(jobID string) (*domain.Job, error) {
	st, err := c.state(jobID)
	if err != nil {
		return nil, err
	}

	return st.snapshot(), nil
}

// Result returns the archive key of a succeeded job.
func (c *Coordinator) Result(jobID string) (string, error) {
	job, err := c.Job(jobID)
	if err != nil {
		return "", err
	}

	return ResultOf(job)
}

// LastSucceeded returns the most recently finished successful job still held in memory.
func (c *Coordinator) LastSucceeded() (*domain.Job, bool) {
	c.mu.Lock()
	states := make([]*jobState, 0, len(c.jobs))
	for _, st := range c.jobs {
		states = append(states, st)
	}
	c.mu.Unlock()

	var last *domain.Job
	for _, st := range states {
		job := st.snapshot()
		if job.Status != domain.StatusSucceeded {
			continue
		}

		if last == nil || job.FinishedAt.After(*last.FinishedAt) {
			last = job
		}
	}

	return last, last != nil
}

// FailStalled fails running jobs that made no progress for longer than timeout.
// The job turns failed at once, even if a render never returns. Jobs storing
// their archive are not considered stalled.
func (c *Coordinator) FailStalled(timeout time.Duration) int {
	deadline := c.now().Add(-timeout)

	c.mu.Lock()
	active := make([]*jobState, 0, len(c.sessions))
	for _, st := range c.sessions {
		active = append(active, st)
	}
	c.mu.Unlock()

	var stalled int
	for _, st := range active {
		st.mu.Lock()
		isStalled := st.job.Status == domain.StatusRunning && !st.packaging && st.lastProgress.Before(deadline)
		var event domain.Event
		if isStalled {
			st.log.Warn("job stalled, cancelling", slog.Duration("timeout", timeout))
			event = c.finishLocked(st, domain.ErrStalledJob)
		}
		st.mu.Unlock()

		if !isStalled {
			continue
		}

		st.cancel(domain.ErrStalledJob)
		c.announce(st, event)
		c.record(c.ctx, st, nil)
		stalled++
	}

	return stalled
}

// Evict forgets terminal jobs finished before now-retention and returns their archive keys.
func (c *Coordinator) Evict(retention time.Duration) []string {
	deadline := c.now().Add(-retention)

	c.mu.Lock()
	states := make(map[string]*jobState, len(c.jobs))
	for id, st := range c.jobs {
		states[id] = st
	}
	c.mu.Unlock()

	var keys []string
	for id, st := range states {
		job := st.snapshot()
		if !job.Status.Terminal() || job.FinishedAt == nil || !job.FinishedAt.Before(deadline) {
			continue
		}

		c.mu.Lock()
		delete(c.jobs, id)
		c.mu.Unlock()

		if job.ArchiveKey != "" {
			keys = append(keys, job.ArchiveKey)
		}
	}

	return keys
}

func (c *Coordinator) state(jobID string) (*jobState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.jobs[jobID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrJobNotFound, jobID)
	}

	return st, nil
}

func (c *Coordinator) run(ctx context.Context, st *jobState) {
	defer c.wg.Done()
	defer st.cancel(nil)

	records, err := c.execute(ctx, st)
	if err != nil {
		if cause := context.Cause(ctx); cause != nil {
			err = cause
		}

		if c.fail(st, err) {
			c.record(ctx, st, nil)
		}

		return
	}

	if c.succeed(st) {
		c.record(ctx, st, records)
	}
}

func (c *Coordinator) execute(ctx context.Context, st *jobState) (_ []domain.ArtifactRecord, err error) {
	dir, err := os.MkdirTemp(c.stagingDir, "job-"+st.job.ID+"-")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging dir: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			st.log.Error("failed to remove staging dir", slog.String("dir", dir), slog.String("err", rmErr.Error()))
		}
	}()

	records := make([]domain.ArtifactRecord, len(st.rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, row := range st.rows {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			record, err := c.renderRow(st.job.ID, dir, row)
			if err != nil {
				return err
			}

			records[i] = record
			c.advance(st, row.Label())

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	st.mu.Lock()
	if st.job.Status != domain.StatusRunning {
		st.mu.Unlock()
		return nil, domain.ErrStalledJob
	}
	st.packaging = true
	st.lastProgress = c.now()
	st.mu.Unlock()

	key, err := c.store(ctx, st, dir, records)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	st.job.ArchiveKey = key
	st.mu.Unlock()

	return records, nil
}

func (c *Coordinator) renderRow(jobID, dir string, row *domain.RowRecord) (domain.ArtifactRecord, error) {
	logo, err := c.logos.Resolve(row.Get(domain.ColumnSupplier))
	if err != nil {
		return domain.ArtifactRecord{}, fmt.Errorf("failed to resolve logo for row %d: %w", row.Index+1, err)
	}

	artifact, err := c.renderer.Render(row, logo)
	if err != nil {
		return domain.ArtifactRecord{}, err
	}

	name := fmt.Sprintf("%04d_%s%s", row.Index+1, slug(artifact.Label), artifact.Format.Extension())
	if err := os.WriteFile(filepath.Join(dir, name), artifact.Content, 0o644); err != nil {
		return domain.ArtifactRecord{}, fmt.Errorf("failed to write card %q: %w", name, err)
	}

	return domain.ArtifactRecord{
		JobID:    jobID,
		RowIndex: row.Index,
		File:     name,
		Label:    artifact.Label,
	}, nil
}

func (c *Coordinator) store(ctx context.Context, st *jobState, dir string, records []domain.ArtifactRecord) (_ string, err error) {
	f, err := os.CreateTemp(dir, "archive-*.zip")
	if err != nil {
		return "", fmt.Errorf("failed to create archive file: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	if err := archive.Write(f, dir, records); err != nil {
		return "", fmt.Errorf("failed to write archive: %w", err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind archive: %w", err)
	}

	key := st.job.ID + ".zip"
	if err := c.archives.Put(ctx, key, f); err != nil {
		return "", fmt.Errorf("failed to store archive: %w", err)
	}

	st.log.Debug("archive stored", slog.String("key", key), slog.Int("artifacts", len(records)))

	return key, nil
}

// advance publishes under the job lock so events of one session leave in counter order.
func (c *Coordinator) advance(st *jobState, label string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.job.Status != domain.StatusRunning {
		return
	}

	st.job.Processed++
	st.job.CurrentLabel = label
	st.lastProgress = c.now()

	event := domain.NewProgressEvent(st.job.Total, st.job.Processed, label)
	c.publisher.Publish(st.job.SessionID, domain.Event{
		Type:          domain.EventProgress,
		ProgressEvent: &event,
	})
}

// succeed and fail run after every worker has returned, so no progress event can
// follow the terminal one. Both report false when the job already was terminal.
func (c *Coordinator) succeed(st *jobState) bool {
	st.mu.Lock()
	event := c.finishLocked(st, nil)
	st.mu.Unlock()

	return c.announce(st, event)
}

func (c *Coordinator) fail(st *jobState, err error) bool {
	st.mu.Lock()
	event := c.finishLocked(st, err)
	st.mu.Unlock()

	return c.announce(st, event)
}

// finishLocked moves the job to its terminal status and returns the event to
// announce, or a zero event when the job already was terminal. st.mu must be held.
func (c *Coordinator) finishLocked(st *jobState, err error) domain.Event {
	if st.job.Status.Terminal() {
		return domain.Event{}
	}

	now := c.now()
	st.job.FinishedAt = &now

	if err == nil {
		st.job.Status = domain.StatusSucceeded
		st.log.Info("job succeeded", slog.Int("processed", st.job.Processed))

		return domain.Event{Type: domain.EventCompleted, JobID: st.job.ID}
	}

	st.job.Status = domain.StatusFailed
	st.job.ErrorMessage = PublicMessage(err)
	st.log.Error("job failed", slog.Int("processed", st.job.Processed), slog.String("err", err.Error()))

	return domain.Event{Type: domain.EventError, JobID: st.job.ID, Message: st.job.ErrorMessage}
}

// announce frees the session before publishing so the client may start its next job
// as soon as it sees the terminal event.
func (c *Coordinator) announce(st *jobState, event domain.Event) bool {
	if event.Type == "" {
		return false
	}

	c.release(st)
	c.publisher.Publish(st.job.SessionID, event)

	return true
}

func (c *Coordinator) release(st *jobState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessions[st.job.SessionID] == st {
		delete(c.sessions, st.job.SessionID)
	}
}

func (c *Coordinator) record(ctx context.Context, st *jobState, records []domain.ArtifactRecord) {
	if c.recorder == nil || c.recorder.Jobs == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	job := st.snapshot()

	save := func(ctx context.Context) error {
		if err := c.recorder.Jobs.SaveJob(ctx, job); err != nil {
			return fmt.Errorf("failed to save job: %w", err)
		}

		if len(records) > 0 && c.recorder.Artifacts != nil {
			if err := c.recorder.Artifacts.SaveArtifacts(ctx, records...); err != nil {
				return fmt.Errorf("failed to save artifacts: %w", err)
			}
		}

		return nil
	}

	var err error
	if c.recorder.Transactor != nil {
		err = c.recorder.Transactor.WithTransaction(ctx, save)
	} else {
		err = save(ctx)
	}

	if err != nil {
		st.log.ErrorContext(ctx, "failed to record job", slog.String("err", err.Error()))
		return
	}

	st.log.DebugContext(ctx, "job recorded")
}

// PublicMessage is the client facing description of a job failure.
func PublicMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrStalledJob):
		return "generation stalled"
	case errors.Is(err, domain.ErrRender):
		return "failed to render a card"
	case errors.Is(err, context.Canceled):
		return "generation cancelled"
	default:
		return "internal error"
	}
}

// ResultOf maps a job snapshot to its archive key or the reason none is available.
func ResultOf(job *domain.Job) (string, error) {
	switch job.Status {
	case domain.StatusSucceeded:
		return job.ArchiveKey, nil
	case domain.StatusFailed:
		return "", fmt.Errorf("%w: %s", domain.ErrJobFailed, job.ErrorMessage)
	default:
		return "", domain.ErrNotReady
	}
}

func slug(label string) string {
	var b strings.Builder

	dash := false
	for _, r := range strings.ToLower(label) {
		if b.Len() >= maxSlugLength {
			break
		}

		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}

		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	s := strings.TrimRight(b.String(), "-")
	if s == "" {
		return "card"
	}

	return s
}
