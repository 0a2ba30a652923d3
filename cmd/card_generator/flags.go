package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/promo_cards/internal/app"
	"github.com/kurochkinivan/promo_cards/internal/config"
	"github.com/kurochkinivan/promo_cards/internal/domain"
	"github.com/kurochkinivan/promo_cards/internal/pipeline"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "card_generator",
		Usage:   "Batch promo card generation service",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			return app.New(log, config.Load(cmd)).Run(ctx)
		},
	}
}

func flags() []cli.Flag {
	var configPath string

	source := func(key string) cli.ValueSourceChain {
		return cli.NewValueSourceChain(yaml.YAML(key, altsrc.NewStringPtrSourcer(&configPath)))
	}

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &configPath,
		},
		&cli.StringFlag{
			Name:    "uploads-dir",
			Usage:   "Set directory for staged spreadsheet uploads",
			Value:   "data/uploads",
			Sources: source("app.uploads_dir"),
		},
		&cli.StringFlag{
			Name:    "staging-dir",
			Usage:   "Set directory for in-progress card batches",
			Value:   "data/staging",
			Sources: source("app.staging_dir"),
		},
		&cli.StringFlag{
			Name:    "archives-dir",
			Usage:   "Set directory for finished archives when storage is local",
			Value:   "data/archives",
			Sources: source("app.archives_dir"),
		},
		&cli.StringFlag{
			Name:    "logos-dir",
			Aliases: []string{"l"},
			Usage:   "Set directory holding supplier logos",
			Value:   "data/logos",
			Sources: source("app.logos_dir"),
		},
		&cli.IntFlag{
			Name:      "workers",
			Aliases:   []string{"w"},
			Usage:     "Set number of cards rendered concurrently",
			Value:     pipeline.DefaultWorkers,
			Sources:   source("app.workers"),
			Validator: validatePositive[int],
		},
		&cli.StringFlag{
			Name:      "card-format",
			Usage:     "Set card image format: png or jpeg",
			Value:     string(domain.FormatPNG),
			Sources:   source("app.card_format"),
			Validator: validateCardFormat,
		},
		&cli.Int64Flag{
			Name:      "max-spreadsheet-size",
			Usage:     "Set maximum spreadsheet upload size in bytes",
			Value:     pipeline.DefaultSpreadsheetLimit,
			Sources:   source("app.max_spreadsheet_size"),
			Validator: validatePositive[int64],
		},
		&cli.Int64Flag{
			Name:      "max-logo-size",
			Usage:     "Set maximum logo upload size in bytes",
			Value:     pipeline.DefaultLogoLimit,
			Sources:   source("app.max_logo_size"),
			Validator: validatePositive[int64],
		},
		&cli.DurationFlag{
			Name:    "stall-timeout",
			Usage:   "Fail jobs that made no progress for this long",
			Value:   2 * time.Minute,
			Sources: source("app.stall_timeout"),
		},
		&cli.DurationFlag{
			Name:    "retention",
			Usage:   "Keep finished jobs and their archives for this long",
			Value:   24 * time.Hour,
			Sources: source("app.retention"),
		},
		&cli.DurationFlag{
			Name:    "janitor-interval",
			Usage:   "Set cleanup sweep interval",
			Value:   time.Minute,
			Sources: source("app.janitor_interval"),
		},
		&cli.StringFlag{
			Name:      "storage",
			Usage:     "Set archive storage backend: local or s3",
			Value:     config.StorageLocal,
			Sources:   source("storage.backend"),
			Validator: validateStorage,
		},
		&cli.StringFlag{
			Name:    "s3-region",
			Usage:   "Set S3 region",
			Value:   "us-east-1",
			Sources: source("storage.s3.region"),
		},
		&cli.StringFlag{
			Name:    "s3-endpoint",
			Usage:   "Set S3 compatible endpoint",
			Sources: source("storage.s3.endpoint"),
		},
		&cli.StringFlag{
			Name:    "s3-bucket",
			Usage:   "Set S3 bucket for archives",
			Value:   "promo-cards",
			Sources: source("storage.s3.bucket"),
		},
		&cli.StringFlag{
			Name:    "s3-prefix",
			Usage:   "Set S3 key prefix for archives",
			Value:   "archives/",
			Sources: source("storage.s3.prefix"),
		},
		&cli.StringFlag{
			Name:    "s3-access-key",
			Usage:   "Set S3 access key",
			Sources: source("storage.s3.access_key"),
		},
		&cli.StringFlag{
			Name:    "s3-secret-key",
			Usage:   "Set S3 secret key",
			Sources: source("storage.s3.secret_key"),
		},
		&cli.StringFlag{
			Name:    "pg-host",
			Usage:   "Set PostgreSQL host",
			Value:   "localhost",
			Sources: source("postgresql.host"),
		},
		&cli.StringFlag{
			Name:    "pg-port",
			Usage:   "Set PostgreSQL port",
			Value:   "5432",
			Sources: source("postgresql.port"),
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  source("postgresql.username"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  source("postgresql.password"),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "pg-dbname",
			Usage:   "Set PostgreSQL database name",
			Value:   "promo_cards",
			Sources: source("postgresql.dbname"),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: source("http.host"),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: source("http.port"),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   time.Minute,
			Sources: source("http.idle_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   30 * time.Second,
			Sources: source("http.read_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   2 * time.Minute,
			Sources: source("http.write_timeout"),
		},
	}
}

func validatePositive[T int | int64](v T) error {
	if v <= 0 {
		return fmt.Errorf("must be positive, got %d", v)
	}
	return nil
}

func validateCardFormat(format string) error {
	switch domain.Format(format) {
	case domain.FormatPNG, domain.FormatJPEG:
		return nil
	default:
		return fmt.Errorf("unsupported card format %q", format)
	}
}

func validateStorage(backend string) error {
	if backend != config.StorageLocal && backend != config.StorageS3 {
		return fmt.Errorf("storage must be %q or %q, got %q", config.StorageLocal, config.StorageS3, backend)
	}
	return nil
}

func validateConfig(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", path)
		}
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", path)
	}

	if ext := filepath.Ext(info.Name()); ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", path)
	}

	return nil
}
