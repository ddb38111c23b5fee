package worker

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"gongu/internal/amqp"
	"gongu/internal/core"
	"gongu/internal/metrics"
	"gongu/internal/sheets"
	"gongu/internal/storage"
)

// SyncWorker mirrors contributions from SQLite to the Google sheet. AMQP
// messages drive it in near real time; the pending sweep catches anything
// a lost message left behind.
type SyncWorker struct {
	storage   *storage.SQLiteRepository
	sheets    sheets.ContributionWriter
	deleter   sheets.ContributionDeleter
	batchSize int
}

func NewSyncWorker(st *storage.SQLiteRepository, writer sheets.ContributionWriter, deleter sheets.ContributionDeleter, batchSize int) *SyncWorker {
	return &SyncWorker{
		storage:   st,
		sheets:    writer,
		deleter:   deleter,
		batchSize: batchSize,
	}
}

// HandleSyncMessage mirrors one contribution identified by an AMQP message.
func (w *SyncWorker) HandleSyncMessage(ctx context.Context, msg *amqp.ContributionSyncMessage) error {
	slog.InfoContext(ctx, "Processing sync message",
		"id", msg.ID,
		"version", msg.Version)

	id := strconv.FormatInt(msg.ID, 10)
	contribution, err := w.storage.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get contribution from storage: %w", err)
	}

	return w.syncToSheet(ctx, id, contribution)
}

// HandleDeleteMessage removes a contribution's sheet row.
func (w *SyncWorker) HandleDeleteMessage(ctx context.Context, msg *amqp.ContributionDeleteMessage) error {
	slog.InfoContext(ctx, "Processing delete message", "id", msg.ID)

	if w.deleter == nil {
		slog.WarnContext(ctx, "No contribution deleter configured, skipping sheet deletion",
			"id", msg.ID)
		return nil
	}

	id := strconv.FormatInt(msg.ID, 10)
	if err := w.deleter.DeleteContribution(ctx, id); err != nil {
		metrics.SheetSyncs.WithLabelValues("error").Inc()
		return fmt.Errorf("delete contribution from sheet: %w", err)
	}

	metrics.SheetSyncs.WithLabelValues("ok").Inc()
	slog.InfoContext(ctx, "Deleted contribution from sheet", "id", msg.ID)
	return nil
}

// ProcessPendingContributions sweeps contributions that never got mirrored.
// This is the backup path for lost AMQP messages.
func (w *SyncWorker) ProcessPendingContributions(ctx context.Context) error {
	pending, err := w.storage.PendingSync(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("get pending contributions: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "Processing pending contributions", "count", len(pending))

	for _, c := range pending {
		if err := w.syncToSheet(ctx, c.ID, c); err != nil {
			slog.ErrorContext(ctx, "Failed to sync contribution", "id", c.ID, "error", err)
			continue
		}
	}
	return nil
}

// StartupSyncCheck drains a larger pending batch once at worker start to
// recover from downtime.
func (w *SyncWorker) StartupSyncCheck(ctx context.Context) error {
	pending, err := w.storage.PendingSync(ctx, w.batchSize*5)
	if err != nil {
		return fmt.Errorf("get pending contributions for startup check: %w", err)
	}
	if len(pending) == 0 {
		slog.InfoContext(ctx, "No pending contributions found on startup")
		return nil
	}

	slog.InfoContext(ctx, "Found pending contributions on startup, processing...",
		"count", len(pending))

	successCount := 0
	errorCount := 0
	for _, c := range pending {
		if err := w.syncToSheet(ctx, c.ID, c); err != nil {
			slog.ErrorContext(ctx, "Failed to sync contribution during startup",
				"id", c.ID, "error", err)
			errorCount++
			continue
		}
		successCount++
	}

	slog.InfoContext(ctx, "Startup sync completed",
		"total", len(pending),
		"synced", successCount,
		"errors", errorCount)
	return nil
}

func (w *SyncWorker) syncToSheet(ctx context.Context, id string, c core.Contribution) error {
	ref, err := w.sheets.Append(ctx, c)
	if err != nil {
		metrics.SheetSyncs.WithLabelValues("error").Inc()
		if markErr := w.storage.MarkSyncError(ctx, id); markErr != nil {
			slog.ErrorContext(ctx, "Failed to mark sync error", "id", id, "error", markErr)
		}
		return fmt.Errorf("append to sheet: %w", err)
	}

	if err := w.storage.MarkSynced(ctx, id); err != nil {
		// The row reached the sheet; only the bookkeeping failed.
		slog.ErrorContext(ctx, "Failed to mark as synced", "id", id, "error", err)
	}

	metrics.SheetSyncs.WithLabelValues("ok").Inc()
	slog.InfoContext(ctx, "Synced contribution to sheet",
		"id", id,
		"sheets_ref", ref,
		"payer_label", c.PayerLabel,
		"amount", c.Amount.Units)
	return nil
}
