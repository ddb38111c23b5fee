package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gongu/internal/core"
	"gongu/internal/store"

	_ "modernc.org/sqlite"
)

// SQLiteRepository is the durable contribution store. It implements
// store.ContributionStore and carries the sync bookkeeping the export
// worker drains.
type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{
		db:      db,
		queries: New(db),
	}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Create implements store.ContributionStore.
func (r *SQLiteRepository) Create(ctx context.Context, c core.Contribution) (core.Contribution, error) {
	if err := c.Validate(); err != nil {
		return core.Contribution{}, err
	}

	row, err := r.queries.CreateContribution(ctx, CreateContributionParams{
		Channel:     string(c.Channel),
		Date:        c.Date,
		Time:        c.Time,
		PayerLabel:  c.PayerLabel,
		Amount:      c.Amount.Units,
		WeekOrdinal: int64(c.WeekOrdinal),
		VoteOption:  c.VoteOption,
	})
	if err != nil {
		return core.Contribution{}, fmt.Errorf("create contribution: %w", err)
	}

	slog.InfoContext(ctx, "Contribution saved to SQLite",
		"id", row.ID,
		"channel", row.Channel,
		"payer_label", row.PayerLabel,
		"amount", row.Amount,
		"week_ordinal", row.WeekOrdinal,
		"vote_option", row.VoteOption)

	return toDomain(row), nil
}

// Get implements store.ContributionStore.
func (r *SQLiteRepository) Get(ctx context.Context, id string) (core.Contribution, error) {
	numID, err := parseID(id)
	if err != nil {
		return core.Contribution{}, err
	}

	row, err := r.queries.GetContribution(ctx, numID)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Contribution{}, store.ErrNotFound
	}
	if err != nil {
		return core.Contribution{}, fmt.Errorf("get contribution: %w", err)
	}
	return toDomain(row), nil
}

// Update implements store.ContributionStore. Every field is replaced and
// the row goes back to pending so the sheet mirror picks up the edit.
func (r *SQLiteRepository) Update(ctx context.Context, c core.Contribution) error {
	if err := c.Validate(); err != nil {
		return err
	}
	numID, err := parseID(c.ID)
	if err != nil {
		return err
	}

	affected, err := r.queries.UpdateContribution(ctx, UpdateContributionParams{
		ID:          numID,
		Channel:     string(c.Channel),
		Date:        c.Date,
		Time:        c.Time,
		PayerLabel:  c.PayerLabel,
		Amount:      c.Amount.Units,
		WeekOrdinal: int64(c.WeekOrdinal),
		VoteOption:  c.VoteOption,
	})
	if err != nil {
		return fmt.Errorf("update contribution: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}

	slog.InfoContext(ctx, "Contribution updated",
		"id", numID,
		"week_ordinal", c.WeekOrdinal,
		"vote_option", c.VoteOption)
	return nil
}

// Delete implements store.ContributionStore.
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	numID, err := parseID(id)
	if err != nil {
		return err
	}

	affected, err := r.queries.DeleteContribution(ctx, numID)
	if err != nil {
		return fmt.Errorf("delete contribution: %w", err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}

	slog.InfoContext(ctx, "Contribution deleted", "id", numID)
	return nil
}

// List implements store.ContributionStore.
func (r *SQLiteRepository) List(ctx context.Context) ([]core.Contribution, error) {
	rows, err := r.queries.ListContributions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}

	out := make([]core.Contribution, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}
	return out, nil
}

// PendingSync returns up to limit contributions still waiting for the
// sheet mirror, oldest first.
func (r *SQLiteRepository) PendingSync(ctx context.Context, limit int) ([]core.Contribution, error) {
	rows, err := r.queries.GetPendingSyncContributions(ctx, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("get pending contributions: %w", err)
	}

	out := make([]core.Contribution, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}
	return out, nil
}

func (r *SQLiteRepository) MarkSynced(ctx context.Context, id string) error {
	numID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := r.queries.MarkContributionSynced(ctx, numID); err != nil {
		return fmt.Errorf("mark contribution synced: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) MarkSyncError(ctx context.Context, id string) error {
	numID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := r.queries.MarkContributionSyncError(ctx, numID); err != nil {
		return fmt.Errorf("mark contribution sync error: %w", err)
	}
	return nil
}

// Reclassify rewrites the cached week/vote columns for one row. Returns
// true when the stored values actually changed.
func (r *SQLiteRepository) Reclassify(ctx context.Context, id string, weekOrdinal int, voteOption string) (bool, error) {
	numID, err := parseID(id)
	if err != nil {
		return false, err
	}
	affected, err := r.queries.ReclassifyContribution(ctx, numID, int64(weekOrdinal), voteOption)
	if err != nil {
		return false, fmt.Errorf("reclassify contribution: %w", err)
	}
	return affected > 0, nil
}

func parseID(id string) (int64, error) {
	numID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, store.ErrNotFound
	}
	return numID, nil
}

func toDomain(row Contribution) core.Contribution {
	return core.Contribution{
		ID:          strconv.FormatInt(row.ID, 10),
		Channel:     core.Channel(row.Channel),
		Date:        row.Date,
		Time:        row.Time,
		PayerLabel:  row.PayerLabel,
		Amount:      core.Money{Units: row.Amount},
		WeekOrdinal: int(row.WeekOrdinal),
		VoteOption:  row.VoteOption,
	}
}
