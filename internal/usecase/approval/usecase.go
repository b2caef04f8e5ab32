package approval

import (
	"context"
	"errors"
	"strings"
	"time"

	domainApproval "microfin-backoffice/internal/domain/approval"
	domainLoan "microfin-backoffice/internal/domain/loan"
	"microfin-backoffice/internal/domain/uow"
	"microfin-backoffice/pkg/id"
)

var (
	ErrForbidden    = errors.New("missing permission for this approval stage")
	ErrUnknownStage = errors.New("stage must be 1 or 2")
)

// Authorizer is the capability-check collaborator; injected so the
// usecase never reads role state from globals.
type Authorizer interface {
	HasPermission(name string) bool
	HasRole(name string) bool
}

const (
	PermApproveFirst  = "loans.approve.first"
	PermApproveSecond = "loans.approve.second"
)

type Usecase struct {
	loans domainLoan.Repository
	uow   uow.UnitOfWork
	authz Authorizer
	now   func() time.Time
}

func NewUsecase(loans domainLoan.Repository, tx uow.UnitOfWork, authz Authorizer) *Usecase {
	return &Usecase{
		loans: loans,
		uow:   tx,
		authz: authz,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source; tests only.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

type ApproveInput struct {
	ContractNumber string
	Stage          int
	ApproverID     string // 32-char hex
}

type DecisionDTO struct {
	DecisionID     string                    `json:"decision_id"`
	ContractNumber string                    `json:"contract_number"`
	Stage          int                       `json:"stage"`
	Outcome        domainApproval.StageState `json:"outcome"`
	ApproverID     string                    `json:"approver_id"`
	Reason         string                    `json:"reason,omitempty"`
	DecidedAt      time.Time                 `json:"decided_at"`
	LoanStatus     domainLoan.Status         `json:"loan_status"`
}

func permFor(stage int) string {
	if stage == 1 {
		return PermApproveFirst
	}
	return PermApproveSecond
}

// Approve records the approver on the given stage and advances the loan:
// stage 1 moves to the second queue (or straight to approved when the
// second stage is not applicable), stage 2 completes the loan.
func (u *Usecase) Approve(ctx context.Context, in ApproveInput) (*DecisionDTO, error) {
	if in.Stage != 1 && in.Stage != 2 {
		return nil, ErrUnknownStage
	}
	if !u.authz.HasPermission(permFor(in.Stage)) {
		return nil, ErrForbidden
	}

	var dto *DecisionDTO
	err := u.uow.WithinLoanTx(ctx, in.ContractNumber, func(r uow.Repos, l *domainLoan.Loan) error {
		now := u.now()

		switch in.Stage {
		case 1:
			if l.Status != domainLoan.StatusPendingFirst {
				return stageError(l.StageState(in.Stage))
			}
			l.FirstState = domainApproval.StageApproved
			l.FirstApproverID = in.ApproverID
			l.FirstDecidedAt = &now
			if l.SecondState == domainApproval.StageNotApplicable {
				l.Status = domainLoan.StatusApproved
			} else {
				l.Status = domainLoan.StatusPendingSecond
			}
		case 2:
			if l.SecondState == domainApproval.StageNotApplicable {
				return domainLoan.ErrInvalidTransition
			}
			if l.Status != domainLoan.StatusPendingSecond {
				return stageError(l.StageState(in.Stage))
			}
			l.SecondState = domainApproval.StageApproved
			l.SecondApproverID = in.ApproverID
			l.SecondDecidedAt = &now
			l.Status = domainLoan.StatusApproved
		}

		d := &domainApproval.Decision{
			DecisionID: id.NewID32(),
			LoanID:     l.ID,
			Stage:      in.Stage,
			Outcome:    domainApproval.StageApproved,
			ApproverID: in.ApproverID,
			DecidedAt:  now,
		}
		if err := r.Decisions.Create(ctx, d); err != nil {
			return err
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		dto = &DecisionDTO{
			DecisionID:     d.DecisionID,
			ContractNumber: l.ContractNumber,
			Stage:          in.Stage,
			Outcome:        d.Outcome,
			ApproverID:     d.ApproverID,
			DecidedAt:      d.DecidedAt,
			LoanStatus:     l.Status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

type SendBackInput struct {
	ContractNumber string
	Stage          int
	ApproverID     string
	Reason         string
}

// SendBack rejects the stage with a reason and returns the whole loan to
// an editable state; the customer must resubmit in full.
func (u *Usecase) SendBack(ctx context.Context, in SendBackInput) (*DecisionDTO, error) {
	if in.Stage != 1 && in.Stage != 2 {
		return nil, ErrUnknownStage
	}
	if !u.authz.HasPermission(permFor(in.Stage)) {
		return nil, ErrForbidden
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return nil, domainApproval.ErrEmptyReason
	}

	var dto *DecisionDTO
	err := u.uow.WithinLoanTx(ctx, in.ContractNumber, func(r uow.Repos, l *domainLoan.Loan) error {
		now := u.now()

		switch in.Stage {
		case 1:
			if l.Status != domainLoan.StatusPendingFirst {
				return stageError(l.StageState(in.Stage))
			}
			l.FirstState = domainApproval.StageSentBack
			l.FirstApproverID = in.ApproverID
			l.FirstDecidedAt = &now
		case 2:
			if l.SecondState == domainApproval.StageNotApplicable {
				return domainLoan.ErrInvalidTransition
			}
			if l.Status != domainLoan.StatusPendingSecond {
				return stageError(l.StageState(in.Stage))
			}
			l.SecondState = domainApproval.StageSentBack
			l.SecondApproverID = in.ApproverID
			l.SecondDecidedAt = &now
		}
		l.Status = domainLoan.StatusSentBack
		l.SentBackReason = reason

		d := &domainApproval.Decision{
			DecisionID: id.NewID32(),
			LoanID:     l.ID,
			Stage:      in.Stage,
			Outcome:    domainApproval.StageSentBack,
			ApproverID: in.ApproverID,
			Reason:     reason,
			DecidedAt:  now,
		}
		if err := r.Decisions.Create(ctx, d); err != nil {
			return err
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		dto = &DecisionDTO{
			DecisionID:     d.DecisionID,
			ContractNumber: l.ContractNumber,
			Stage:          in.Stage,
			Outcome:        d.Outcome,
			ApproverID:     d.ApproverID,
			Reason:         d.Reason,
			DecidedAt:      d.DecidedAt,
			LoanStatus:     l.Status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func stageError(s domainApproval.StageState) error {
	if s == domainApproval.StageApproved || s == domainApproval.StageSentBack {
		return domainLoan.ErrAlreadyDecided
	}
	return domainLoan.ErrInvalidTransition
}

type ListInput struct {
	Status   domainLoan.Status
	PageSize int
}

// QueueItemDTO is one row of the approval queue. Overdue flags are
// evaluated against the clock at call time, never persisted.
type QueueItemDTO struct {
	ContractNumber string                    `json:"contract_number"`
	NIC            string                    `json:"nic"`
	CustomerName   string                    `json:"customer_name"`
	Amount         float64                   `json:"amount"`
	Status         domainLoan.Status         `json:"status"`
	FirstState     domainApproval.StageState `json:"first_state"`
	FirstOverdue   bool                      `json:"first_overdue"`
	SecondState    domainApproval.StageState `json:"second_state"`
	SecondOverdue  bool                      `json:"second_overdue"`
	SentBackReason string                    `json:"sent_back_reason,omitempty"`
	SubmittedAt    time.Time                 `json:"submitted_at"`
}

func (u *Usecase) List(ctx context.Context, in ListInput) ([]QueueItemDTO, error) {
	ls, err := u.loans.ListByStatus(ctx, in.Status, in.PageSize)
	if err != nil {
		return nil, err
	}
	now := u.now()
	out := make([]QueueItemDTO, 0, len(ls))
	for i := range ls {
		l := &ls[i]
		late := domainApproval.IsOverdue(l.SubmittedAt, now)
		out = append(out, QueueItemDTO{
			ContractNumber: l.ContractNumber,
			NIC:            l.NIC,
			CustomerName:   l.CustomerName,
			Amount:         l.Amount,
			Status:         l.Status,
			FirstState:     l.FirstState,
			FirstOverdue:   l.FirstState == domainApproval.StagePending && late,
			SecondState:    l.SecondState,
			SecondOverdue:  l.SecondState == domainApproval.StagePending && late,
			SentBackReason: l.SentBackReason,
			SubmittedAt:    l.SubmittedAt,
		})
	}
	return out, nil
}
