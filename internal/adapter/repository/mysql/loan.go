package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	loanDomain "microfin-backoffice/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByContractNumber(ctx context.Context, contractNumber string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("contract_number = ?", contractNumber).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByContractNumberForUpdate(ctx context.Context, contractNumber string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("contract_number = ?", contractNumber).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetActiveByNIC(ctx context.Context, nic string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("nic = ? AND status <> ?", nic, loanDomain.StatusApproved).
		Order("submitted_at DESC, id DESC").
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListByStatus(ctx context.Context, status loanDomain.Status, limit int) ([]loanDomain.Loan, error) {
	q := r.db.WithContext(ctx).Order("submitted_at ASC, id ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []loanDomain.Loan
	res := q.Find(&out)
	return out, res.Error
}
