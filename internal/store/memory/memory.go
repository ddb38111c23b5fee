// Package memory is the in-memory contribution store used for local
// development and as a test double.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"gongu/internal/core"
	"gongu/internal/store"
)

type Store struct {
	mu    sync.Mutex
	items []core.Contribution
}

var _ store.ContributionStore = (*Store)(nil)

func New() *Store {
	return &Store{}
}

func (s *Store) Create(_ context.Context, c core.Contribution) (core.Contribution, error) {
	if err := c.Validate(); err != nil {
		return core.Contribution{}, err
	}
	c.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, c)
	return c, nil
}

func (s *Store) Get(_ context.Context, id string) (core.Contribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.items {
		if c.ID == id {
			return c, nil
		}
	}
	return core.Contribution{}, store.ErrNotFound
}

func (s *Store) Update(_ context.Context, c core.Contribution) error {
	if err := c.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == c.ID {
			s.items[i] = c
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// List returns a snapshot copy, newest first.
func (s *Store) List(_ context.Context) ([]core.Contribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Contribution, len(s.items))
	for i, c := range s.items {
		out[len(s.items)-1-i] = c
	}
	return out, nil
}
