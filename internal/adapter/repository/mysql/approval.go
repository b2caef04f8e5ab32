package mysql

import (
	"context"

	"gorm.io/gorm"

	approvalDomain "microfin-backoffice/internal/domain/approval"
)

type DecisionRepository struct{ db *gorm.DB }

func NewDecisionRepository(db *gorm.DB) *DecisionRepository { return &DecisionRepository{db: db} }

func (r *DecisionRepository) Create(ctx context.Context, d *approvalDomain.Decision) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DecisionRepository) ListByLoanID(ctx context.Context, loanID uint64) ([]approvalDomain.Decision, error) {
	var out []approvalDomain.Decision
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("decided_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
