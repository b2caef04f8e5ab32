package application

import (
	"strings"

	"microfin-backoffice/internal/domain/loan"
	"microfin-backoffice/pkg/nic"
)

// Form is the accumulating application form. Zero-valued fees mean the
// fee was not entered.
type Form struct {
	NIC                  string  `json:"nic"`
	Amount               float64 `json:"amount"`
	ProcessingFee        float64 `json:"processing_fee"`
	DocumentationFee     float64 `json:"documentation_fee"`
	InsuranceFee         float64 `json:"insurance_fee"`
	DisbursementDate     string  `json:"disbursement_date,omitempty"`
	FirstInstallmentDate string  `json:"first_installment_date,omitempty"`
}

// Computed holds the derived fields the form screens display. They are
// recomputed from the form on every call, never cached.
type Computed struct {
	NICValid        bool    `json:"nic_valid"`
	Gender          string  `json:"gender,omitempty"`
	TotalFees       float64 `json:"total_fees"`
	NetDisbursement float64 `json:"net_disbursement"`
}

func Compute(f Form) Computed {
	info := nic.Parse(f.NIC)
	return Computed{
		NICValid:        info.Valid,
		Gender:          string(info.Gender),
		TotalFees:       loan.TotalFees(f.ProcessingFee, f.DocumentationFee, f.InsuranceFee),
		NetDisbursement: loan.NetDisbursement(f.Amount, f.ProcessingFee, f.DocumentationFee, f.InsuranceFee),
	}
}

// DraftName picks a display name for a draft: the customer's name when
// resolvable, else "NIC <value>", else a fixed placeholder.
func DraftName(customerName, rawNIC string) string {
	if name := strings.TrimSpace(customerName); name != "" {
		return name
	}
	if v := strings.TrimSpace(rawNIC); v != "" {
		return "NIC " + v
	}
	return "Untitled draft"
}
