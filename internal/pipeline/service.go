package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/kurochkinivan/promo_cards/internal/domain"
	"github.com/kurochkinivan/promo_cards/internal/infrastructure/archive"
	"github.com/kurochkinivan/promo_cards/internal/progress"
)

const (
	DefaultSpreadsheetLimit = 10 << 20
	DefaultLogoLimit        = 5 << 20
)

type Limits struct {
	Spreadsheet int64
	Logo        int64
}

// Service is the boundary used by transports: uploads, job control, results,
// journals and logo assets.
type Service struct {
	log         *slog.Logger
	limits      Limits
	parser      *Parser
	uploads     UploadStore
	coordinator *Coordinator
	archives    ArchiveStore
	composer    JournalComposer
	logos       LogoStore
	history     JobsProvider
}

func NewService(
	log *slog.Logger,
	limits Limits,
	parser *Parser,
	uploads UploadStore,
	coordinator *Coordinator,
	archives ArchiveStore,
	composer JournalComposer,
	logos LogoStore,
	history JobsProvider,
) *Service {
	if limits.Spreadsheet <= 0 {
		limits.Spreadsheet = DefaultSpreadsheetLimit
	}

	if limits.Logo <= 0 {
		limits.Logo = DefaultLogoLimit
	}

	return &Service{
		log:         log,
		limits:      limits,
		parser:      parser,
		uploads:     uploads,
		coordinator: coordinator,
		archives:    archives,
		composer:    composer,
		logos:       logos,
		history:     history,
	}
}

func (s *Service) Limits() Limits {
	return s.limits
}

// UploadSpreadsheet validates and stores an upload, returning its reference.
func (s *Service) UploadSpreadsheet(ctx context.Context, name string, r io.Reader) (string, error) {
	data, err := ReadSpreadsheet(name, r, s.limits.Spreadsheet)
	if err != nil {
		return "", err
	}

	ref, err := s.uploads.Save(data)
	if err != nil {
		return "", fmt.Errorf("failed to save upload: %w", err)
	}

	s.log.InfoContext(ctx, "spreadsheet uploaded", slog.String("name", name), slog.String("upload_id", ref))

	return ref, nil
}

// StartGeneration parses a stored upload and starts a job for sessionID.
// Parse errors are returned here and never reach the progress stream.
func (s *Service) StartGeneration(ctx context.Context, ref, sessionID string) (*domain.Job, error) {
	if err := progress.ValidateSession(sessionID); err != nil {
		return nil, err
	}

	data, err := s.uploads.Read(ref)
	if err != nil {
		return nil, err
	}

	rows, err := s.parser.Parse(data)
	if err != nil {
		s.discardUpload(ctx, ref)
		return nil, err
	}

	job, err := s.coordinator.StartJob(rows, sessionID)
	if err != nil {
		return nil, err
	}

	s.discardUpload(ctx, ref)

	return job, nil
}

func (s *Service) discardUpload(ctx context.Context, ref string) {
	if err := s.uploads.Delete(ref); err != nil {
		s.log.WarnContext(ctx, "failed to delete upload", slog.String("upload_id", ref), slog.String("err", err.Error()))
	}
}

// JobStatus looks up live jobs first and falls back to recorded history.
func (s *Service) JobStatus(ctx context.Context, jobID string) (*domain.Job, error) {
	job, err := s.coordinator.Job(jobID)
	if err == nil {
		return job, nil
	}

	if !errors.Is(err, domain.ErrJobNotFound) || s.history == nil {
		return nil, err
	}

	job, err = s.history.JobByID(ctx, jobID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: %q", domain.ErrJobNotFound, jobID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	job.Percentage = domain.Percentage(job.Total, job.Processed)

	return job, nil
}

func (s *Service) OpenArchive(ctx context.Context, jobID string) (io.ReadCloser, error) {
	job, err := s.JobStatus(ctx, jobID)
	if err != nil {
		return nil, err
	}

	key, err := ResultOf(job)
	if err != nil {
		return nil, err
	}

	rc, err := s.archives.Open(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: archive of job %q expired", domain.ErrJobNotFound, jobID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	return rc, nil
}

// ComposeJournal builds a journal from the archive of jobID, or of the last
// succeeded job when jobID is empty.
func (s *Service) ComposeJournal(ctx context.Context, jobID string) (*domain.Journal, error) {
	key, err := s.journalSource(ctx, jobID)
	if err != nil {
		return nil, err
	}

	rc, err := s.archives.Open(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNoArtifactsAvailable
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive: %w", err)
	}

	entries, err := archive.Read(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrComposition, err)
	}

	artifacts := make([]*domain.Artifact, 0, len(entries))
	for _, e := range entries {
		artifacts = append(artifacts, &domain.Artifact{
			RowIndex: e.Record.RowIndex,
			Label:    e.Record.Label,
			Format:   formatOf(e.Record.File),
			Content:  e.Content,
		})
	}

	journal, err := s.composer.Compose(artifacts)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "journal composed", slog.String("archive", key), slog.Int("pages", len(journal.Pages)))

	return journal, nil
}

func (s *Service) journalSource(ctx context.Context, jobID string) (string, error) {
	if jobID != "" {
		job, err := s.JobStatus(ctx, jobID)
		if err != nil {
			return "", err
		}

		if job.Status != domain.StatusSucceeded {
			return "", fmt.Errorf("%w: job %q is %s", domain.ErrNoArtifactsAvailable, jobID, job.Status)
		}

		return job.ArchiveKey, nil
	}

	if job, ok := s.coordinator.LastSucceeded(); ok {
		return job.ArchiveKey, nil
	}

	if s.history == nil {
		return "", domain.ErrNoArtifactsAvailable
	}

	job, err := s.history.LastSucceededJob(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.ErrNoArtifactsAvailable
	}
	if err != nil {
		return "", fmt.Errorf("failed to get last job: %w", err)
	}

	return job.ArchiveKey, nil
}

func (s *Service) ListLogos() ([]*domain.LogoAsset, error) {
	return s.logos.List()
}

func (s *Service) LogoExists(name string) (bool, error) {
	if err := ValidateLogoName(name); err != nil {
		return false, err
	}

	return s.logos.Exists(name)
}

// UploadLogo stores a logo. An existing name is only replaced when overwrite is set.
func (s *Service) UploadLogo(ctx context.Context, name string, r io.Reader, overwrite bool) error {
	content, err := ReadLogo(name, r, s.limits.Logo)
	if err != nil {
		return err
	}

	if err := s.logos.Save(name, content, overwrite); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "logo saved", slog.String("name", name), slog.Bool("overwrite", overwrite))

	return nil
}

func (s *Service) DeleteLogo(ctx context.Context, name string) error {
	if err := ValidateLogoName(name); err != nil {
		return err
	}

	if err := s.logos.Delete(name); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "logo deleted", slog.String("name", name))

	return nil
}

func formatOf(file string) domain.Format {
	switch strings.ToLower(path.Ext(file)) {
	case ".jpg", ".jpeg":
		return domain.FormatJPEG
	default:
		return domain.FormatPNG
	}
}
