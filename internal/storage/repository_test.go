package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"gongu/internal/core"
	"gongu/internal/store"
)

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func sample(label string) core.Contribution {
	return core.Contribution{
		Channel:     core.ChannelBankTransfer,
		Date:        "2026-02-14",
		Time:        "10:30:00",
		PayerLabel:  label,
		Amount:      core.Money{Units: 5000},
		WeekOrdinal: 1,
		VoteOption:  "토끼",
	}
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	created, err := repo.Create(ctx, sample("김서연 토끼"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.PayerLabel != "김서연 토끼" || got.Amount.Units != 5000 {
		t.Fatalf("unexpected row: %+v", got)
	}
	if got.WeekOrdinal != 1 || got.VoteOption != "토끼" {
		t.Fatalf("classification not persisted: %+v", got)
	}
}

func TestCreateRejectsInvalid(t *testing.T) {
	repo := newTestRepo(t)
	bad := sample("x")
	bad.Date = "14-02-2026"
	if _, err := repo.Create(context.Background(), bad); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestGetMissingAndBadID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	if _, err := repo.Get(ctx, "9999"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Get missing = %v, want ErrNotFound", err)
	}
	if _, err := repo.Get(ctx, "not-a-number"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Get bad id = %v, want ErrNotFound", err)
	}
}

func TestUpdateResetsSyncStatus(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	created, _ := repo.Create(ctx, sample("before"))
	if err := repo.MarkSynced(ctx, created.ID); err != nil {
		t.Fatalf("MarkSynced: %v", err)
	}

	pending, err := repo.PendingSync(ctx, 10)
	if err != nil {
		t.Fatalf("PendingSync: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected no pending rows after MarkSynced, got %d", len(pending))
	}

	created.PayerLabel = "after"
	if err := repo.Update(ctx, created); err != nil {
		t.Fatalf("Update: %v", err)
	}

	pending, _ = repo.PendingSync(ctx, 10)
	if len(pending) != 1 {
		t.Fatalf("expected update to re-queue sync, got %d pending", len(pending))
	}
	if pending[0].PayerLabel != "after" {
		t.Fatalf("update not applied: %+v", pending[0])
	}
}

func TestUpdateMissing(t *testing.T) {
	repo := newTestRepo(t)
	c := sample("x")
	c.ID = "12345"
	if err := repo.Update(context.Background(), c); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Update missing = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	created, _ := repo.Create(ctx, sample("x"))
	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, _ = repo.Create(ctx, sample("first"))
	_, _ = repo.Create(ctx, sample("second"))

	items, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 || items[0].PayerLabel != "second" {
		t.Fatalf("expected newest first, got %+v", items)
	}
}

func TestMarkSyncErrorAndReclassify(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	created, _ := repo.Create(ctx, sample("x"))

	if err := repo.MarkSyncError(ctx, created.ID); err != nil {
		t.Fatalf("MarkSyncError: %v", err)
	}
	pending, _ := repo.PendingSync(ctx, 10)
	if len(pending) != 0 {
		t.Fatalf("errored row should not be pending, got %d", len(pending))
	}

	changed, err := repo.Reclassify(ctx, created.ID, 2, "온둡")
	if err != nil {
		t.Fatalf("Reclassify: %v", err)
	}
	if !changed {
		t.Fatalf("expected reclassify to report change")
	}

	// Same values again is a no-op.
	changed, _ = repo.Reclassify(ctx, created.ID, 2, "온둡")
	if changed {
		t.Fatalf("expected no-op reclassify")
	}

	got, _ := repo.Get(ctx, created.ID)
	if got.WeekOrdinal != 2 || got.VoteOption != "온둡" {
		t.Fatalf("reclassify not applied: %+v", got)
	}
}
