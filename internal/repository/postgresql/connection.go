package postgresql

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/promo_cards/internal/config"
)

const (
	maxRetries      = 5
	retryDelay      = 5 * time.Second
	applicationName = "promo_cards"
)

func NewConnection(ctx context.Context, log *slog.Logger, cfg config.PostgreSQL) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(ConnectionURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse pool config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	ping := WithRetry(log, pool.Ping, maxRetries, retryDelay)

	if err := ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping pool: %w", err)
	}

	return pool, nil
}

func ConnectionURL(cfg config.PostgreSQL) string {
	query := url.Values{}
	query.Set("sslmode", "disable")
	query.Set("application_name", applicationName)

	return (&url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     cfg.DBName,
		RawQuery: query.Encode(),
	}).String()
}

type CheckFunction func(context.Context) error

// WithRetry repeats check until it succeeds or retries run out.
func WithRetry(log *slog.Logger, check CheckFunction, retries int, delay time.Duration) CheckFunction {
	return func(ctx context.Context) error {
		for attempt := 1; ; attempt++ {
			err := check(ctx)
			if err == nil || attempt > retries {
				return err
			}

			log.DebugContext(ctx, "database connection attempt failed, retrying",
				slog.Int("attempt", attempt),
				slog.Int("max_retries", retries),
				slog.String("err", err.Error()))

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
