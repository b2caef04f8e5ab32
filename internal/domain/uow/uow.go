package uow

import (
	"context"

	"microfin-backoffice/internal/domain/approval"
	"microfin-backoffice/internal/domain/draft"
	"microfin-backoffice/internal/domain/loan"
)

type Repos struct {
	Loans     loan.Repository
	Decisions approval.Repository
	Drafts    draft.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, contractNumber string, fn func(r Repos, l *loan.Loan) error) error
}
