package decisionmock

import (
	"context"
	"sync"

	domain "microfin-backoffice/internal/domain/approval"
)

// Repo records created decisions in memory; enough for usecase tests.
type Repo struct {
	mu       sync.Mutex
	CreateFn func(ctx context.Context, d *domain.Decision) error
	created  []domain.Decision
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, d *domain.Decision) error {
	if m.CreateFn != nil {
		if err := m.CreateFn(ctx, d); err != nil {
			return err
		}
	}
	m.mu.Lock()
	m.created = append(m.created, *d)
	m.mu.Unlock()
	return nil
}

func (m *Repo) ListByLoanID(_ context.Context, loanID uint64) ([]domain.Decision, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Decision
	for _, d := range m.created {
		if d.LoanID == loanID {
			out = append(out, d)
		}
	}
	return out, nil
}

// Created returns a copy of every decision passed to Create.
func (m *Repo) Created() []domain.Decision {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Decision, len(m.created))
	copy(out, m.created)
	return out
}
