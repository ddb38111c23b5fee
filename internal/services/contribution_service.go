package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"gongu/internal/campaign"
	"gongu/internal/core"
	"gongu/internal/metrics"
	"gongu/internal/store"
)

// Publisher is the outbound sync notification port, satisfied by the AMQP
// client. A nil Publisher disables notifications; writes still succeed.
type Publisher interface {
	PublishContributionSync(ctx context.Context, id, version int64) error
	PublishContributionDelete(ctx context.Context, id int64) error
}

// ContributionService orchestrates contribution writes: every create and
// edit is restamped against the campaign before it is stored, and a sync
// message is published for the sheet mirror.
type ContributionService struct {
	store     store.ContributionStore
	publisher Publisher
	campaign  campaign.Campaign
}

func NewContributionService(st store.ContributionStore, pub Publisher, camp campaign.Campaign) *ContributionService {
	return &ContributionService{
		store:     st,
		publisher: pub,
		campaign:  camp,
	}
}

// Create classifies and stores a contribution. A failed sync publish is
// logged, not returned; the contribution is already durable.
func (s *ContributionService) Create(ctx context.Context, c core.Contribution) (core.Contribution, error) {
	c = core.Restamp(c, s.campaign)
	countSentinel(c.VoteOption)

	stored, err := s.store.Create(ctx, c)
	if err != nil {
		return core.Contribution{}, fmt.Errorf("save contribution: %w", err)
	}
	metrics.ContributionsCreated.WithLabelValues(string(stored.Channel)).Inc()

	s.publishSync(ctx, stored.ID, 1)
	return stored, nil
}

// Update restamps and replaces an existing contribution.
func (s *ContributionService) Update(ctx context.Context, c core.Contribution) (core.Contribution, error) {
	c = core.Restamp(c, s.campaign)
	countSentinel(c.VoteOption)

	if err := s.store.Update(ctx, c); err != nil {
		return core.Contribution{}, err
	}

	stored, err := s.store.Get(ctx, c.ID)
	if err != nil {
		return core.Contribution{}, err
	}

	s.publishSync(ctx, stored.ID, 0)
	return stored, nil
}

// Delete removes a contribution and notifies the sheet mirror.
func (s *ContributionService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	metrics.ContributionsDeleted.Inc()

	s.publishDelete(ctx, id)
	return nil
}

func (s *ContributionService) Get(ctx context.Context, id string) (core.Contribution, error) {
	return s.store.Get(ctx, id)
}

func (s *ContributionService) List(ctx context.Context) ([]core.Contribution, error) {
	return s.store.List(ctx)
}

// ReclassifyAll restamps every stored contribution against the current
// campaign and rewrites the rows whose cached week or vote changed. Returns
// the number of rewritten contributions.
func (s *ContributionService) ReclassifyAll(ctx context.Context) (int, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list contributions: %w", err)
	}

	changed := 0
	for _, c := range items {
		fresh := core.Restamp(c, s.campaign)
		if fresh.WeekOrdinal == c.WeekOrdinal && fresh.VoteOption == c.VoteOption {
			continue
		}
		if err := s.store.Update(ctx, fresh); err != nil {
			return changed, fmt.Errorf("reclassify contribution %s: %w", c.ID, err)
		}
		changed++

		slog.InfoContext(ctx, "Contribution reclassified",
			"id", c.ID,
			"week_ordinal", fresh.WeekOrdinal,
			"vote_option", fresh.VoteOption)
	}
	return changed, nil
}

func (s *ContributionService) publishSync(ctx context.Context, id string, version int64) {
	if s.publisher == nil {
		slog.WarnContext(ctx, "Publisher not available, skipping sync message")
		return
	}
	numID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to parse contribution ID for sync", "id", id, "error", err)
		return
	}
	if err := s.publisher.PublishContributionSync(ctx, numID, version); err != nil {
		slog.ErrorContext(ctx, "Failed to publish sync message", "id", id, "error", err)
	}
}

func (s *ContributionService) publishDelete(ctx context.Context, id string) {
	if s.publisher == nil {
		slog.WarnContext(ctx, "Publisher not available, skipping delete message")
		return
	}
	numID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to parse contribution ID for delete", "id", id, "error", err)
		return
	}
	if err := s.publisher.PublishContributionDelete(ctx, numID); err != nil {
		slog.ErrorContext(ctx, "Failed to publish delete message", "id", id, "error", err)
	}
}

func countSentinel(voteOption string) {
	switch voteOption {
	case core.VoteInvalid, core.VoteOutOfRange:
		metrics.InvalidVotes.WithLabelValues(voteOption).Inc()
	}
}
