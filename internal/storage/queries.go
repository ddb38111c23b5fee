package storage

import (
	"context"
	"database/sql"
	"time"
)

// Queries is a thin typed layer over the contributions table.
type Queries struct {
	db *sql.DB
}

func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

// Contribution is a database row.
type Contribution struct {
	ID          int64
	Channel     string
	Date        string
	Time        string
	PayerLabel  string
	Amount      int64
	WeekOrdinal int64
	VoteOption  string
	SyncStatus  string
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateContributionParams struct {
	Channel     string
	Date        string
	Time        string
	PayerLabel  string
	Amount      int64
	WeekOrdinal int64
	VoteOption  string
}

const createContribution = `
INSERT INTO contributions (channel, date, time, payer_label, amount, week_ordinal, vote_option)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING id, channel, date, time, payer_label, amount, week_ordinal, vote_option, sync_status, version, created_at, updated_at
`

func (q *Queries) CreateContribution(ctx context.Context, arg CreateContributionParams) (Contribution, error) {
	row := q.db.QueryRowContext(ctx, createContribution,
		arg.Channel, arg.Date, arg.Time, arg.PayerLabel, arg.Amount, arg.WeekOrdinal, arg.VoteOption)
	return scanContribution(row)
}

const getContribution = `
SELECT id, channel, date, time, payer_label, amount, week_ordinal, vote_option, sync_status, version, created_at, updated_at
FROM contributions WHERE id = ?
`

func (q *Queries) GetContribution(ctx context.Context, id int64) (Contribution, error) {
	return scanContribution(q.db.QueryRowContext(ctx, getContribution, id))
}

type UpdateContributionParams struct {
	ID          int64
	Channel     string
	Date        string
	Time        string
	PayerLabel  string
	Amount      int64
	WeekOrdinal int64
	VoteOption  string
}

// Edits reset the sync state so the export worker mirrors the new values.
const updateContribution = `
UPDATE contributions
SET channel = ?, date = ?, time = ?, payer_label = ?, amount = ?, week_ordinal = ?, vote_option = ?,
    sync_status = 'pending', version = version + 1, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`

func (q *Queries) UpdateContribution(ctx context.Context, arg UpdateContributionParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, updateContribution,
		arg.Channel, arg.Date, arg.Time, arg.PayerLabel, arg.Amount, arg.WeekOrdinal, arg.VoteOption, arg.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteContribution = `DELETE FROM contributions WHERE id = ?`

func (q *Queries) DeleteContribution(ctx context.Context, id int64) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteContribution, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const listContributions = `
SELECT id, channel, date, time, payer_label, amount, week_ordinal, vote_option, sync_status, version, created_at, updated_at
FROM contributions
ORDER BY created_at DESC, id DESC
`

func (q *Queries) ListContributions(ctx context.Context) ([]Contribution, error) {
	rows, err := q.db.QueryContext(ctx, listContributions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Contribution
	for rows.Next() {
		c, err := scanContributionRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

const getPendingSync = `
SELECT id, channel, date, time, payer_label, amount, week_ordinal, vote_option, sync_status, version, created_at, updated_at
FROM contributions
WHERE sync_status = 'pending'
ORDER BY id
LIMIT ?
`

func (q *Queries) GetPendingSyncContributions(ctx context.Context, limit int64) ([]Contribution, error) {
	rows, err := q.db.QueryContext(ctx, getPendingSync, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Contribution
	for rows.Next() {
		c, err := scanContributionRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

const markSynced = `
UPDATE contributions SET sync_status = 'synced', updated_at = CURRENT_TIMESTAMP WHERE id = ?
`

func (q *Queries) MarkContributionSynced(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, markSynced, id)
	return err
}

const markSyncError = `
UPDATE contributions SET sync_status = 'error', updated_at = CURRENT_TIMESTAMP WHERE id = ?
`

func (q *Queries) MarkContributionSyncError(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, markSyncError, id)
	return err
}

const reclassifyContribution = `
UPDATE contributions
SET week_ordinal = ?, vote_option = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ? AND (week_ordinal != ? OR vote_option != ?)
`

// ReclassifyContribution rewrites the cached classification columns when
// they differ from the freshly computed values. Returns rows affected.
func (q *Queries) ReclassifyContribution(ctx context.Context, id, weekOrdinal int64, voteOption string) (int64, error) {
	res, err := q.db.ExecContext(ctx, reclassifyContribution, weekOrdinal, voteOption, id, weekOrdinal, voteOption)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContribution(row *sql.Row) (Contribution, error) {
	return scanContributionRows(row)
}

func scanContributionRows(row rowScanner) (Contribution, error) {
	var c Contribution
	err := row.Scan(&c.ID, &c.Channel, &c.Date, &c.Time, &c.PayerLabel, &c.Amount,
		&c.WeekOrdinal, &c.VoteOption, &c.SyncStatus, &c.Version, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
