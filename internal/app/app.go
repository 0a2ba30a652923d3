package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/kurochkinivan/promo_cards/internal/config"
	v1 "github.com/kurochkinivan/promo_cards/internal/controller/http/v1"
	"github.com/kurochkinivan/promo_cards/internal/domain"
	"github.com/kurochkinivan/promo_cards/internal/infrastructure/card_renderer"
	"github.com/kurochkinivan/promo_cards/internal/infrastructure/journal_composer"
	"github.com/kurochkinivan/promo_cards/internal/pipeline"
	"github.com/kurochkinivan/promo_cards/internal/progress"
	"github.com/kurochkinivan/promo_cards/internal/repository/filesystem"
	"github.com/kurochkinivan/promo_cards/internal/repository/objectstorage"
	"github.com/kurochkinivan/promo_cards/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("uploads_dir", a.cfg.App.UploadsDirectory),
		slog.String("staging_dir", a.cfg.App.StagingDirectory),
		slog.String("logos_dir", a.cfg.App.LogosDirectory),
		slog.String("storage", a.cfg.Storage.Backend),
		slog.Int("workers", a.cfg.App.Workers),
	)

	if err := a.prepareDirectories(); err != nil {
		return err
	}

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	archives, err := a.archiveStore(ctx)
	if err != nil {
		return err
	}

	jobsRepository := postgresql.NewJobsRepository(pool)
	recorder := &pipeline.Recorder{
		Jobs:       jobsRepository,
		Artifacts:  postgresql.NewArtifactsRepository(pool),
		Transactor: postgresql.NewTxManager(pool),
	}

	return a.startPipeline(ctx, archives, jobsRepository, recorder)
}

func (a *App) prepareDirectories() error {
	dirs := []string{
		a.cfg.App.UploadsDirectory,
		a.cfg.App.StagingDirectory,
		a.cfg.App.LogosDirectory,
	}
	if a.cfg.Storage.Backend != config.StorageS3 {
		dirs = append(dirs, a.cfg.App.ArchivesDirectory)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}

	return nil
}

func (a *App) archiveStore(ctx context.Context) (pipeline.ArchiveStore, error) {
	switch a.cfg.Storage.Backend {
	case config.StorageS3:
		client, err := objectstorage.NewClient(ctx, a.cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create s3 client: %w", err)
		}

		return objectstorage.NewArchivesRepository(client, a.cfg.Storage.S3Bucket, a.cfg.Storage.S3Prefix), nil

	case config.StorageLocal, "":
		return filesystem.NewArchivesRepository(a.cfg.App.ArchivesDirectory), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", a.cfg.Storage.Backend)
	}
}

func (a *App) startPipeline(
	ctx context.Context,
	archives pipeline.ArchiveStore,
	history pipeline.JobsProvider,
	recorder *pipeline.Recorder,
) error {
	uploads := filesystem.NewUploadsRepository(a.cfg.App.UploadsDirectory)
	logos := filesystem.NewLogosRepository(a.cfg.App.LogosDirectory)
	hub := progress.NewHub(a.log, progress.DefaultBufferSize)

	coordinator := pipeline.NewCoordinator(
		a.log,
		a.cfg.App.StagingDirectory,
		a.cfg.App.Workers,
		card_renderer.New(domain.Format(a.cfg.App.CardFormat)),
		logos,
		hub,
		archives,
		recorder,
	)

	janitor := pipeline.NewJanitor(
		a.log,
		a.cfg.App.JanitorInterval,
		a.cfg.App.StallTimeout,
		a.cfg.App.Retention,
		coordinator,
		archives,
		uploads,
	)

	service := pipeline.NewService(
		a.log,
		pipeline.Limits{
			Spreadsheet: a.cfg.App.MaxSpreadsheet,
			Logo:        a.cfg.App.MaxLogo,
		},
		pipeline.NewParser(a.log),
		uploads,
		coordinator,
		archives,
		journal_composer.New(),
		logos,
		history,
	)

	server := v1.NewServer(a.cfg.HTTP, a.log, service, hub)

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "coordinator started")
		return coordinator.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "janitor started")
		return janitor.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}
