package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"microfin-backoffice/internal/domain/approval"
	"microfin-backoffice/internal/domain/customer"
	"microfin-backoffice/internal/domain/draft"
	"microfin-backoffice/internal/domain/loan"
	"microfin-backoffice/internal/domain/uow"
	"microfin-backoffice/pkg/id"
	"microfin-backoffice/pkg/nic"
)

var (
	ErrInvalidNIC          = errors.New("invalid NIC")
	ErrInvalidInput        = errors.New("invalid input")
	ErrApplicationInFlight = errors.New("customer already has an application in progress")
)

type Usecase struct {
	drafts    draft.Repository
	customers customer.Repository
	loans     loan.Repository
	uow       uow.UnitOfWork
	now       func() time.Time
}

func NewUsecase(drafts draft.Repository, customers customer.Repository, loans loan.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{
		drafts:    drafts,
		customers: customers,
		loans:     loans,
		uow:       tx,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source; tests only.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

type SaveDraftInput struct {
	DraftID string `json:"draft_id"`
	Step    int    `json:"step"`
	Form    Form   `json:"form"`
}

type DraftDTO struct {
	DraftID  string    `json:"draft_id"`
	Name     string    `json:"name"`
	NIC      string    `json:"nic"`
	Step     int       `json:"step"`
	SavedAt  time.Time `json:"saved_at"`
	Form     Form      `json:"form"`
	Computed Computed  `json:"computed"`
}

// SaveDraft upserts by draft id: a fresh id is generated when none is
// given, an existing id overwrites in place (last-write-wins).
func (u *Usecase) SaveDraft(ctx context.Context, in SaveDraftInput) (*DraftDTO, error) {
	draftID := strings.TrimSpace(in.DraftID)
	if draftID == "" {
		draftID = id.NewID32()
	}

	step := in.Step
	if step < 1 {
		step = 1
	}
	if step > StepCount {
		step = StepCount
	}

	rawNIC := strings.TrimSpace(in.Form.NIC)
	var customerName string
	if rawNIC != "" {
		c, err := u.customers.GetByNIC(ctx, rawNIC)
		switch {
		case err == nil:
			customerName = c.FullName
		case errors.Is(err, customer.ErrNotFound):
			// keep the NIC fallback name
		default:
			return nil, err
		}
	}

	payload, err := json.Marshal(in.Form)
	if err != nil {
		return nil, err
	}

	d := &draft.Draft{
		DraftID: draftID,
		NIC:     rawNIC,
		Name:    DraftName(customerName, rawNIC),
		Step:    step,
		Payload: string(payload),
		SavedAt: u.now(),
	}
	if err := u.drafts.Upsert(ctx, d); err != nil {
		return nil, err
	}
	return &DraftDTO{DraftID: d.DraftID, Name: d.Name, NIC: d.NIC, Step: d.Step, SavedAt: d.SavedAt, Form: in.Form, Computed: Compute(in.Form)}, nil
}

// LoadDraft restores a draft without deleting it.
func (u *Usecase) LoadDraft(ctx context.Context, draftID string) (*DraftDTO, error) {
	d, err := u.drafts.GetByDraftID(ctx, draftID)
	if err != nil {
		return nil, err
	}
	return draftToDTO(d), nil
}

func (u *Usecase) ListDrafts(ctx context.Context) ([]DraftDTO, error) {
	ds, err := u.drafts.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]DraftDTO, 0, len(ds))
	for i := range ds {
		out = append(out, *draftToDTO(&ds[i]))
	}
	return out, nil
}

func (u *Usecase) DeleteDraft(ctx context.Context, draftID string) error {
	return u.drafts.Delete(ctx, draftID)
}

func draftToDTO(d *draft.Draft) *DraftDTO {
	var f Form
	_ = json.Unmarshal([]byte(d.Payload), &f)
	return &DraftDTO{DraftID: d.DraftID, Name: d.Name, NIC: d.NIC, Step: d.Step, SavedAt: d.SavedAt, Form: f, Computed: Compute(f)}
}

type SubmitInput struct {
	// DraftID, when set, names the draft this submission completes; it is
	// deleted in the same transaction.
	DraftID string `json:"draft_id"`
	Form    Form   `json:"form"`
}

type LoanDTO struct {
	ContractNumber   string              `json:"contract_number"`
	NIC              string              `json:"nic"`
	CustomerName     string              `json:"customer_name"`
	Amount           float64             `json:"amount"`
	ProcessingFee    float64             `json:"processing_fee"`
	DocumentationFee float64             `json:"documentation_fee"`
	InsuranceFee     float64             `json:"insurance_fee"`
	TotalFees        float64             `json:"total_fees"`
	NetDisbursement  float64             `json:"net_disbursement"`
	Status           loan.Status         `json:"status"`
	FirstState       approval.StageState `json:"first_state"`
	SecondState      approval.StageState `json:"second_state"`
	SentBackReason   string              `json:"sent_back_reason,omitempty"`
	SubmittedAt      time.Time           `json:"submitted_at"`
}

// Submit turns a completed form into a queued application. The second
// approval stage is classified from the amount here and stays fixed
// until resubmission.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*LoanDTO, error) {
	f := in.Form
	info := nic.Parse(f.NIC)
	if !info.Valid {
		return nil, ErrInvalidNIC
	}
	if f.Amount <= 0 || f.ProcessingFee < 0 || f.DocumentationFee < 0 || f.InsuranceFee < 0 {
		return nil, ErrInvalidInput
	}
	rawNIC := strings.TrimSpace(f.NIC)

	// A submission completing a draft must have walked the wizard to the
	// review step; the review validator re-checks the whole form.
	nav := NewNavigator(StepCount, DefaultStepValidators())
	nav.Restore(StepCount)
	if in.DraftID != "" {
		d, err := u.drafts.GetByDraftID(ctx, in.DraftID)
		switch {
		case err == nil:
			nav.Restore(d.Step)
		case !errors.Is(err, draft.ErrNotFound):
			return nil, err
		}
	}
	if err := nav.CanSubmit(f); err != nil {
		return nil, err
	}

	// Block if the customer already has an application in flight.
	active, err := u.loans.GetActiveByNIC(ctx, rawNIC)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: %s", ErrApplicationInFlight, active.ContractNumber)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	var customerName string
	if c, err := u.customers.GetByNIC(ctx, rawNIC); err == nil {
		customerName = c.FullName
	} else if !errors.Is(err, customer.ErrNotFound) {
		return nil, err
	}

	now := u.now()
	l := &loan.Loan{
		ContractNumber:   id.NewContractNumber(now),
		NIC:              rawNIC,
		CustomerName:     customerName,
		Amount:           f.Amount,
		ProcessingFee:    f.ProcessingFee,
		DocumentationFee: f.DocumentationFee,
		InsuranceFee:     f.InsuranceFee,
		Status:           loan.StatusPendingFirst,
		FirstState:       approval.StagePending,
		SecondState:      approval.SecondStageFor(f.Amount),
		SubmittedAt:      now,
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		if in.DraftID != "" {
			return r.Drafts.Delete(ctx, in.DraftID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loanToDTO(l), nil
}

// Resubmit re-enters a sent-back loan into the approval queue. Both
// stages reset and the second stage is re-classified from the new amount.
func (u *Usecase) Resubmit(ctx context.Context, contractNumber string, f Form) (*LoanDTO, error) {
	if !nic.Valid(f.NIC) {
		return nil, ErrInvalidNIC
	}
	if f.Amount <= 0 || f.ProcessingFee < 0 || f.DocumentationFee < 0 || f.InsuranceFee < 0 {
		return nil, ErrInvalidInput
	}

	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, contractNumber, func(r uow.Repos, l *loan.Loan) error {
		if l.Status != loan.StatusSentBack {
			return loan.ErrNotResubmittable
		}

		now := u.now()
		l.NIC = strings.TrimSpace(f.NIC)
		l.Amount = f.Amount
		l.ProcessingFee = f.ProcessingFee
		l.DocumentationFee = f.DocumentationFee
		l.InsuranceFee = f.InsuranceFee

		l.Status = loan.StatusPendingFirst
		l.FirstState = approval.StagePending
		l.FirstApproverID = ""
		l.FirstDecidedAt = nil
		l.SecondState = approval.SecondStageFor(f.Amount)
		l.SecondApproverID = ""
		l.SecondDecidedAt = nil
		l.SentBackReason = ""
		l.SubmittedAt = now

		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = loanToDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) GetLoan(ctx context.Context, contractNumber string) (*LoanDTO, error) {
	l, err := u.loans.GetByContractNumber(ctx, contractNumber)
	if err != nil {
		return nil, err
	}
	return loanToDTO(l), nil
}

// AssignGroup moves a customer into a lending group, enforcing the
// capacity rule before touching storage.
func (u *Usecase) AssignGroup(ctx context.Context, customerID, groupID string) error {
	c, err := u.customers.GetByCustomerID(ctx, customerID)
	if err != nil {
		return err
	}
	if c.GroupID == groupID {
		// already a member; the capacity count would include them
		return nil
	}
	n, err := u.customers.CountGroupMembers(ctx, groupID)
	if err != nil {
		return err
	}
	if err := customer.CanJoinGroup(n); err != nil {
		return err
	}
	c.GroupID = groupID
	return u.customers.Save(ctx, c)
}

func loanToDTO(l *loan.Loan) *LoanDTO {
	return &LoanDTO{
		ContractNumber:   l.ContractNumber,
		NIC:              l.NIC,
		CustomerName:     l.CustomerName,
		Amount:           l.Amount,
		ProcessingFee:    l.ProcessingFee,
		DocumentationFee: l.DocumentationFee,
		InsuranceFee:     l.InsuranceFee,
		TotalFees:        l.TotalFees(),
		NetDisbursement:  l.NetDisbursement(),
		Status:           l.Status,
		FirstState:       l.FirstState,
		SecondState:      l.SecondState,
		SentBackReason:   l.SentBackReason,
		SubmittedAt:      l.SubmittedAt,
	}
}
