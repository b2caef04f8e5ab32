package approval

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound    = errors.New("decision not found")
	ErrEmptyReason = errors.New("send-back reason must not be empty")
)

// StageState is the display state of one approval stage.
type StageState string

const (
	StagePending       StageState = "pending"
	StageApproved      StageState = "approved"
	StageSentBack      StageState = "sent_back"
	StageNotApplicable StageState = "n/a"
)

const (
	// Loans at or below this amount skip the second approval stage.
	SecondStageThreshold = 200_000

	// A pending stage older than this is flagged overdue.
	OverdueAfter = time.Hour
)

// SecondStageFor classifies the second stage at submission time. The
// classification is fixed until the loan is resubmitted with a new amount.
func SecondStageFor(amount float64) StageState {
	if amount > SecondStageThreshold {
		return StagePending
	}
	return StageNotApplicable
}

// IsOverdue reports whether a stage submitted at submittedAt has been
// waiting longer than OverdueAfter. Computed per query, never stored.
func IsOverdue(submittedAt, now time.Time) bool {
	return now.Sub(submittedAt) > OverdueAfter
}

// Decision is an append-only audit row for one approve/send-back call.
type Decision struct {
	ID         uint64         `gorm:"column:id;primaryKey;autoIncrement"`
	DecisionID string         `gorm:"column:decision_id;type:char(32);not null;uniqueIndex:ux_decisions_decision_id"`
	LoanID     uint64         `gorm:"column:loan_id;not null;index"`
	Stage      int            `gorm:"column:stage;not null"`
	Outcome    StageState     `gorm:"column:outcome;size:16;not null"`
	ApproverID string         `gorm:"column:approver_id;type:char(32);not null"`
	Reason     string         `gorm:"column:reason;type:text"`
	DecidedAt  time.Time      `gorm:"column:decided_at;not null"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Decision) TableName() string { return "approval_decisions" }
