// Package store defines the contribution store port. The core treats the
// stored collection as ephemeral input: every statistics query pulls a full
// snapshot and recomputes from scratch, so implementations only need flat
// keyed records with replace-by-id semantics.
package store

import (
	"context"
	"errors"

	"gongu/internal/core"
)

// ErrNotFound is returned when no contribution exists for the given id.
var ErrNotFound = errors.New("contribution not found")

// ContributionStore holds the flat contribution collection.
type ContributionStore interface {
	// Create stores the contribution, assigns its id and returns the
	// stored record.
	Create(ctx context.Context, c core.Contribution) (core.Contribution, error)

	// Get returns the contribution with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (core.Contribution, error)

	// Update replaces every field of the record keyed by c.ID.
	Update(ctx context.Context, c core.Contribution) error

	// Delete removes the record. Deleting a missing id is ErrNotFound.
	Delete(ctx context.Context, id string) error

	// List returns a full snapshot of the collection, newest first.
	List(ctx context.Context) ([]core.Contribution, error)
}
