package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	loanDomain "microfin-backoffice/internal/domain/loan"
	approvalUC "microfin-backoffice/internal/usecase/approval"
	"microfin-backoffice/internal/usecase/application"
)

type LoanHandler struct {
	apps  *application.Usecase
	queue *approvalUC.Usecase
}

func NewLoanHandler(apps *application.Usecase, queue *approvalUC.Usecase) *LoanHandler {
	return &LoanHandler{apps: apps, queue: queue}
}

type submitLoanReq struct {
	DraftID          string  `json:"draft_id" validate:"omitempty,hex32"`
	NIC              string  `json:"nic" validate:"required,nic"`
	Amount           float64 `json:"amount" validate:"required,gt=0,dec2"`
	ProcessingFee    float64 `json:"processing_fee" validate:"gte=0,dec2"`
	DocumentationFee float64 `json:"documentation_fee" validate:"gte=0,dec2"`
	InsuranceFee     float64 `json:"insurance_fee" validate:"gte=0,dec2"`
	DisbursementDate string  `json:"disbursement_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r submitLoanReq) form() application.Form {
	return application.Form{
		NIC:              r.NIC,
		Amount:           r.Amount,
		ProcessingFee:    r.ProcessingFee,
		DocumentationFee: r.DocumentationFee,
		InsuranceFee:     r.InsuranceFee,
		DisbursementDate: r.DisbursementDate,
	}
}

func (h *LoanHandler) SubmitLoan(c echo.Context) error {
	var req submitLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.apps.Submit(c.Request().Context(), application.SubmitInput{
		DraftID: req.DraftID,
		Form:    req.form(),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) ResubmitLoan(c echo.Context) error {
	contractNumber := c.Param("contract_number")
	var req submitLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.apps.Resubmit(c.Request().Context(), contractNumber, req.form())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.apps.GetLoan(c.Request().Context(), c.Param("contract_number"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ListLoans serves the approval queue; ?status filters, ?page_size caps
// the result. Overdue flags are computed against the current clock.
func (h *LoanHandler) ListLoans(c echo.Context) error {
	pageSize := 20
	if raw := c.QueryParam("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page_size"})
		}
		pageSize = n
	}
	items, err := h.queue.List(c.Request().Context(), approvalUC.ListInput{
		Status:   loanDomain.Status(c.QueryParam("status")),
		PageSize: pageSize,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
