package services

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"gongu/internal/campaign"
	"gongu/internal/core"
	"gongu/internal/store"
)

// fakeStore keeps contributions in insertion order with numeric ids, like
// the sqlite backend.
type fakeStore struct {
	nextID int64
	items  []core.Contribution
}

func (f *fakeStore) Create(_ context.Context, c core.Contribution) (core.Contribution, error) {
	if err := c.Validate(); err != nil {
		return core.Contribution{}, err
	}
	f.nextID++
	c.ID = strconv.FormatInt(f.nextID, 10)
	f.items = append(f.items, c)
	return c, nil
}

func (f *fakeStore) Get(_ context.Context, id string) (core.Contribution, error) {
	for _, c := range f.items {
		if c.ID == id {
			return c, nil
		}
	}
	return core.Contribution{}, store.ErrNotFound
}

func (f *fakeStore) Update(_ context.Context, c core.Contribution) error {
	for i := range f.items {
		if f.items[i].ID == c.ID {
			f.items[i] = c
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeStore) List(_ context.Context) ([]core.Contribution, error) {
	out := make([]core.Contribution, len(f.items))
	copy(out, f.items)
	return out, nil
}

type fakePublisher struct {
	syncIDs   []int64
	deleteIDs []int64
	err       error
}

func (p *fakePublisher) PublishContributionSync(_ context.Context, id, _ int64) error {
	if p.err != nil {
		return p.err
	}
	p.syncIDs = append(p.syncIDs, id)
	return nil
}

func (p *fakePublisher) PublishContributionDelete(_ context.Context, id int64) error {
	if p.err != nil {
		return p.err
	}
	p.deleteIDs = append(p.deleteIDs, id)
	return nil
}

func testContribution(date, label string) core.Contribution {
	return core.Contribution{
		Channel:    core.ChannelBankTransfer,
		Date:       date,
		Time:       "09:30:00",
		PayerLabel: label,
		Amount:     core.Money{Units: 5000},
	}
}

func TestCreateStampsClassification(t *testing.T) {
	camp := campaign.Default()
	pub := &fakePublisher{}
	svc := NewContributionService(&fakeStore{}, pub, camp)

	got, err := svc.Create(context.Background(), testContribution("2026-02-14", "김서연 토끼"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.WeekOrdinal != 1 {
		t.Fatalf("WeekOrdinal = %d, want 1", got.WeekOrdinal)
	}
	if got.VoteOption == core.VoteInvalid || got.VoteOption == core.VoteOutOfRange {
		t.Fatalf("expected matched vote option, got %q", got.VoteOption)
	}
	if len(pub.syncIDs) != 1 {
		t.Fatalf("expected 1 sync publish, got %d", len(pub.syncIDs))
	}
}

func TestCreateOutOfRangeDateStampsSentinels(t *testing.T) {
	svc := NewContributionService(&fakeStore{}, nil, campaign.Default())

	got, err := svc.Create(context.Background(), testContribution("2026-01-01", "김서연 토끼"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.WeekOrdinal != core.WeekOutOfRange {
		t.Fatalf("WeekOrdinal = %d, want %d", got.WeekOrdinal, core.WeekOutOfRange)
	}
	if got.VoteOption != core.VoteOutOfRange {
		t.Fatalf("VoteOption = %q, want %q", got.VoteOption, core.VoteOutOfRange)
	}
}

func TestCreatePublishFailureDoesNotFailWrite(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	svc := NewContributionService(&fakeStore{}, pub, campaign.Default())

	got, err := svc.Create(context.Background(), testContribution("2026-02-14", "돌고래"))
	if err != nil {
		t.Fatalf("Create should succeed despite publish failure: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected stored contribution")
	}
}

func TestUpdateRestamps(t *testing.T) {
	ctx := context.Background()
	svc := NewContributionService(&fakeStore{}, nil, campaign.Default())

	created, err := svc.Create(ctx, testContribution("2026-02-14", "토끼"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Move the date into week 2; the cached week must follow.
	created.Date = "2026-02-21"
	updated, err := svc.Update(ctx, created)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.WeekOrdinal != 2 {
		t.Fatalf("WeekOrdinal after update = %d, want 2", updated.WeekOrdinal)
	}
}

func TestDeletePublishes(t *testing.T) {
	ctx := context.Background()
	pub := &fakePublisher{}
	svc := NewContributionService(&fakeStore{}, pub, campaign.Default())

	created, _ := svc.Create(ctx, testContribution("2026-02-14", "토끼"))
	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(pub.deleteIDs) != 1 {
		t.Fatalf("expected 1 delete publish, got %d", len(pub.deleteIDs))
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Get after delete = %v, want ErrNotFound", err)
	}
}

func TestDeleteMissing(t *testing.T) {
	svc := NewContributionService(&fakeStore{}, nil, campaign.Default())
	if err := svc.Delete(context.Background(), "42"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Delete missing = %v, want ErrNotFound", err)
	}
}

func TestReclassifyAll(t *testing.T) {
	ctx := context.Background()
	st := &fakeStore{}
	svc := NewContributionService(st, nil, campaign.Default())

	first, _ := svc.Create(ctx, testContribution("2026-02-14", "토끼"))
	second, _ := svc.Create(ctx, testContribution("2026-02-21", "돌고래"))

	// Corrupt the cached columns directly; reclassify must repair them.
	stale := first
	stale.WeekOrdinal = 9
	stale.VoteOption = "뭔가다른것"
	if err := st.Update(ctx, stale); err != nil {
		t.Fatalf("seed stale row: %v", err)
	}

	changed, err := svc.ReclassifyAll(ctx)
	if err != nil {
		t.Fatalf("ReclassifyAll: %v", err)
	}
	if changed != 1 {
		t.Fatalf("changed = %d, want 1", changed)
	}

	repaired, _ := svc.Get(ctx, first.ID)
	if repaired.WeekOrdinal != first.WeekOrdinal || repaired.VoteOption != first.VoteOption {
		t.Fatalf("row not repaired: %+v", repaired)
	}
	untouched, _ := svc.Get(ctx, second.ID)
	if untouched.WeekOrdinal != second.WeekOrdinal {
		t.Fatalf("unchanged row was modified: %+v", untouched)
	}
}
