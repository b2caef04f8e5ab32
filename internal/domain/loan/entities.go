package loan

import (
	"time"

	"gorm.io/gorm"

	"microfin-backoffice/internal/domain/approval"
)

// Status is the queue position of an application as a whole. It is
// derivable from the two stage columns but stored for cheap filtering.
type Status string

const (
	StatusPendingFirst  Status = "pending_first_approval"
	StatusPendingSecond Status = "pending_second_approval"
	StatusApproved      Status = "approved"
	StatusSentBack      Status = "sent_back"
)

type Loan struct {
	ID             uint64 `gorm:"primaryKey;column:id" json:"-"`
	ContractNumber string `gorm:"column:contract_number;size:32;uniqueIndex:ux_loans_contract_active" json:"contract_number"`
	NIC            string `gorm:"column:nic;size:16;index:idx_loans_nic_active" json:"nic"`
	CustomerName   string `gorm:"column:customer_name;size:128" json:"customer_name"`

	Amount           float64 `gorm:"column:amount;type:decimal(18,2)" json:"amount"`
	ProcessingFee    float64 `gorm:"column:processing_fee;type:decimal(18,2)" json:"processing_fee"`
	DocumentationFee float64 `gorm:"column:documentation_fee;type:decimal(18,2)" json:"documentation_fee"`
	InsuranceFee     float64 `gorm:"column:insurance_fee;type:decimal(18,2)" json:"insurance_fee"`

	Status Status `gorm:"column:status;size:32;index" json:"status"`

	FirstState      approval.StageState `gorm:"column:first_state;size:16" json:"first_state"`
	FirstApproverID string              `gorm:"column:first_approver_id;type:char(32)" json:"-"`
	FirstDecidedAt  *time.Time          `gorm:"column:first_decided_at" json:"first_decided_at,omitempty"`

	SecondState      approval.StageState `gorm:"column:second_state;size:16" json:"second_state"`
	SecondApproverID string              `gorm:"column:second_approver_id;type:char(32)" json:"-"`
	SecondDecidedAt  *time.Time          `gorm:"column:second_decided_at" json:"second_decided_at,omitempty"`

	SentBackReason string `gorm:"column:sent_back_reason;type:text" json:"sent_back_reason,omitempty"`

	SubmittedAt time.Time      `gorm:"column:submitted_at" json:"submitted_at"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// TotalFees sums the three fee components; a zero field is an absent fee.
func TotalFees(processing, documentation, insurance float64) float64 {
	return processing + documentation + insurance
}

// NetDisbursement is what the customer actually receives.
func NetDisbursement(amount, processing, documentation, insurance float64) float64 {
	return amount - TotalFees(processing, documentation, insurance)
}

func (l *Loan) TotalFees() float64 {
	return TotalFees(l.ProcessingFee, l.DocumentationFee, l.InsuranceFee)
}

func (l *Loan) NetDisbursement() float64 {
	return NetDisbursement(l.Amount, l.ProcessingFee, l.DocumentationFee, l.InsuranceFee)
}

// StageState returns the display state for stage 1 or 2.
func (l *Loan) StageState(stage int) approval.StageState {
	if stage == 1 {
		return l.FirstState
	}
	return l.SecondState
}
