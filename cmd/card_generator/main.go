package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

type loggerKey struct{}

const logLevelEnv = "PROMO_CARDS_LOG_LEVEL"

func main() {
	ctx := context.Background()

	level := slog.LevelDebug
	if raw, ok := os.LookupEnv(logLevelEnv); ok {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid %s %q: %v\n", logLevelEnv, raw, err)
			os.Exit(1)
		}
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))

	ctx = context.WithValue(ctx, loggerKey{}, log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "card generator stopped: %v\n", err)
		os.Exit(1)
	}
}
