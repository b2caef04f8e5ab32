package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByContractNumber(ctx context.Context, contractNumber string) (*Loan, error)
	// Row-locked read for approval transitions inside a transaction.
	GetByContractNumberForUpdate(ctx context.Context, contractNumber string) (*Loan, error)
	// In-flight application for a customer, if any (anything not approved).
	GetActiveByNIC(ctx context.Context, nic string) (*Loan, error)
	ListByStatus(ctx context.Context, status Status, limit int) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
}
