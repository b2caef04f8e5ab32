package approval

import "context"

type Repository interface {
	// Append a decision row; decisions are never updated in place.
	Create(ctx context.Context, d *Decision) error

	// All decisions for a loan, oldest first.
	ListByLoanID(ctx context.Context, loanID uint64) ([]Decision, error)
}
