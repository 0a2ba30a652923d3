package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/kurochkinivan/promo_cards/internal/config"
	"github.com/kurochkinivan/promo_cards/internal/repository/postgresql"
	"github.com/urfave/cli/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	migrationTypeUp   = "up"
	migrationTypeDown = "down"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := command(log).Run(ctx, os.Args); err != nil {
		log.ErrorContext(ctx, "failed to apply migrations", slog.String("err", err.Error()))
		stop()
		os.Exit(1)
	}
}

func command(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "migrator",
		Usage: "Apply promo_cards database migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "type",
				Usage:     "Set migration direction: up or down",
				Value:     migrationTypeUp,
				Validator: validateType,
			},
			&cli.StringFlag{Name: "pg-host", Usage: "Set PostgreSQL host", Value: "127.0.0.1", Sources: cli.EnvVars("PG_HOST")},
			&cli.StringFlag{Name: "pg-port", Usage: "Set PostgreSQL port", Value: "5432", Sources: cli.EnvVars("PG_PORT")},
			&cli.StringFlag{Name: "pg-username", Usage: "Set PostgreSQL username", Required: true, Sources: cli.EnvVars("PG_USERNAME")},
			&cli.StringFlag{Name: "pg-password", Usage: "Set PostgreSQL password", Required: true, Sources: cli.EnvVars("PG_PASSWORD")},
			&cli.StringFlag{Name: "pg-dbname", Usage: "Set PostgreSQL database name", Value: "promo_cards", Sources: cli.EnvVars("PG_DBNAME")},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return migrateDatabase(ctx, log, cmd.String("type"), config.PostgreSQL{
				Host:     cmd.String("pg-host"),
				Port:     cmd.String("pg-port"),
				Username: cmd.String("pg-username"),
				Password: cmd.String("pg-password"),
				DBName:   cmd.String("pg-dbname"),
			})
		},
	}
}

func migrateDatabase(ctx context.Context, log *slog.Logger, migrationType string, cfg config.PostgreSQL) (err error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migrations source: %w", err)
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", src, postgresql.ConnectionURL(cfg))
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := migrator.Close()
		err = errors.Join(err, srcErr, dbErr)
	}()

	if err := applyMigration(migrator, migrationType); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.InfoContext(ctx, "no migrations to apply")
			return nil
		}

		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.InfoContext(ctx, "migrations applied successfully", slog.String("type", migrationType))

	return nil
}

func applyMigration(migrator *migrate.Migrate, migrationType string) error {
	switch migrationType {
	case migrationTypeUp:
		return migrator.Up()
	case migrationTypeDown:
		return migrator.Down()
	default:
		return fmt.Errorf("unknown migration type %q", migrationType)
	}
}

func validateType(migrationType string) error {
	if migrationType != migrationTypeUp && migrationType != migrationTypeDown {
		return fmt.Errorf("type must be %q or %q, got %q", migrationTypeUp, migrationTypeDown, migrationType)
	}
	return nil
}
