package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/kurochkinivan/promo_cards/internal/domain"
	"github.com/kurochkinivan/promo_cards/internal/pipeline"
	"github.com/kurochkinivan/promo_cards/internal/progress"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const eventTimeout = 2 * time.Second

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func rows(labels ...string) []*domain.RowRecord {
	records := make([]*domain.RowRecord, 0, len(labels))
	for i, label := range labels {
		records = append(records, &domain.RowRecord{
			Index:   i,
			Columns: []string{domain.ColumnTitle, domain.ColumnSupplier, domain.ColumnPrice},
			Values:  []string{label, "acme", "10.50"},
		})
	}
	return records
}

// runCoordinator запускает координатор и останавливает его в конце теста.
func runCoordinator(t *testing.T, c *pipeline.Coordinator) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)
	go func() {
		errChan <- c.Run(ctx)
	}()

	t.Cleanup(func() {
		cancel()

		select {
		case err := <-errChan:
			if !errors.Is(err, context.Canceled) {
				t.Errorf("unexpected coordinator error: %v", err)
			}
		case <-time.After(eventTimeout):
			t.Error("timeout: coordinator did not stop")
		}
	})
}

func subscribe(t *testing.T, hub *progress.Hub, sessionID string) *progress.Subscription {
	t.Helper()

	sub, err := hub.Subscribe(sessionID)
	require.NoError(t, err)
	t.Cleanup(sub.Close)

	return sub
}

func nextEvent(t *testing.T, sub *progress.Subscription) domain.Event {
	t.Helper()

	select {
	case event, ok := <-sub.Events():
		require.True(t, ok, "subscription closed")
		return event
	case <-time.After(eventTimeout):
		t.Fatal("timeout: event was not published")
		return domain.Event{}
	}
}

// waitTerminal skips progress events until the job completes or fails.
func waitTerminal(t *testing.T, sub *progress.Subscription) (domain.Event, []domain.Event) {
	t.Helper()

	var progressEvents []domain.Event
	for {
		event := nextEvent(t, sub)
		if event.Type != domain.EventProgress {
			return event, progressEvents
		}
		progressEvents = append(progressEvents, event)
	}
}

func workbook(t *testing.T, sheet [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer func() { require.NoError(t, f.Close()) }()

	for i, row := range sheet {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	return bytes.Clone(buf.Bytes())
}
