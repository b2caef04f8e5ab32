package loanmock

import (
	"context"

	domain "microfin-backoffice/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in only the function fields a test needs.
type Repo struct {
	CreateFn                       func(ctx context.Context, l *domain.Loan) error
	GetByContractNumberFn          func(ctx context.Context, contractNumber string) (*domain.Loan, error)
	GetByContractNumberForUpdateFn func(ctx context.Context, contractNumber string) (*domain.Loan, error)
	GetActiveByNICFn               func(ctx context.Context, nic string) (*domain.Loan, error)
	ListByStatusFn                 func(ctx context.Context, status domain.Status, limit int) ([]domain.Loan, error)
	SaveFn                         func(ctx context.Context, l *domain.Loan) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByContractNumber(ctx context.Context, contractNumber string) (*domain.Loan, error) {
	if m.GetByContractNumberFn != nil {
		return m.GetByContractNumberFn(ctx, contractNumber)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByContractNumberForUpdate(ctx context.Context, contractNumber string) (*domain.Loan, error) {
	if m.GetByContractNumberForUpdateFn != nil {
		return m.GetByContractNumberForUpdateFn(ctx, contractNumber)
	}
	return nil, context.Canceled
}

func (m *Repo) GetActiveByNIC(ctx context.Context, nic string) (*domain.Loan, error) {
	if m.GetActiveByNICFn != nil {
		return m.GetActiveByNICFn(ctx, nic)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByStatus(ctx context.Context, status domain.Status, limit int) ([]domain.Loan, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status, limit)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
