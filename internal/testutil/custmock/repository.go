package custmock

import (
	"context"

	domain "microfin-backoffice/internal/domain/customer"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetByCustomerIDFn   func(ctx context.Context, customerID string) (*domain.Customer, error)
	GetByNICFn          func(ctx context.Context, nic string) (*domain.Customer, error)
	CountGroupMembersFn func(ctx context.Context, groupID string) (int64, error)
	SaveFn              func(ctx context.Context, c *domain.Customer) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) GetByCustomerID(ctx context.Context, customerID string) (*domain.Customer, error) {
	if m.GetByCustomerIDFn != nil {
		return m.GetByCustomerIDFn(ctx, customerID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByNIC(ctx context.Context, nic string) (*domain.Customer, error) {
	if m.GetByNICFn != nil {
		return m.GetByNICFn(ctx, nic)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) CountGroupMembers(ctx context.Context, groupID string) (int64, error) {
	if m.CountGroupMembersFn != nil {
		return m.CountGroupMembersFn(ctx, groupID)
	}
	return 0, nil
}

func (m *Repo) Save(ctx context.Context, c *domain.Customer) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}
