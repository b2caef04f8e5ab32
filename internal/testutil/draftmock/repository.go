package draftmock

import (
	"context"
	"sync"

	domain "microfin-backoffice/internal/domain/draft"
)

// Repo is a function-backed mock for domain.Repository, with an optional
// in-memory store behind it for tests that want real upsert semantics.
type Repo struct {
	UpsertFn       func(ctx context.Context, d *domain.Draft) error
	GetByDraftIDFn func(ctx context.Context, draftID string) (*domain.Draft, error)
	ListFn         func(ctx context.Context) ([]domain.Draft, error)
	DeleteFn       func(ctx context.Context, draftID string) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Upsert(ctx context.Context, d *domain.Draft) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByDraftID(ctx context.Context, draftID string) (*domain.Draft, error) {
	if m.GetByDraftIDFn != nil {
		return m.GetByDraftIDFn(ctx, draftID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Draft, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Delete(ctx context.Context, draftID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, draftID)
	}
	return nil
}

// Store is a map-backed Repository with real overwrite-by-id semantics.
type Store struct {
	mu     sync.Mutex
	drafts map[string]domain.Draft
}

var _ domain.Repository = (*Store)(nil)

func NewStore() *Store { return &Store{drafts: map[string]domain.Draft{}} }

func (s *Store) Upsert(_ context.Context, d *domain.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[d.DraftID] = *d
	return nil
}

func (s *Store) GetByDraftID(_ context.Context, draftID string) (*domain.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[draftID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &d, nil
}

func (s *Store) List(_ context.Context) ([]domain.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Draft, 0, len(s.drafts))
	for _, d := range s.drafts {
		out = append(out, d)
	}
	return out, nil
}

func (s *Store) Delete(_ context.Context, draftID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, draftID)
	return nil
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}
