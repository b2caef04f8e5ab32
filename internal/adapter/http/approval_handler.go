package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	approvalUC "microfin-backoffice/internal/usecase/approval"
)

type ApprovalHandler struct{ uc *approvalUC.Usecase }

func NewApprovalHandler(uc *approvalUC.Usecase) *ApprovalHandler {
	return &ApprovalHandler{uc: uc}
}

type approveReq struct {
	Stage      int    `json:"stage" validate:"required,oneof=1 2"`
	ApproverID string `json:"approver_id" validate:"required,hex32"`
}

func (h *ApprovalHandler) Approve(c echo.Context) error {
	contractNumber := c.Param("contract_number")
	if contractNumber == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing contract_number path param"})
	}
	var req approveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Approve(c.Request().Context(), approvalUC.ApproveInput{
		ContractNumber: contractNumber,
		Stage:          req.Stage,
		ApproverID:     req.ApproverID,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type sendBackReq struct {
	Stage      int    `json:"stage" validate:"required,oneof=1 2"`
	ApproverID string `json:"approver_id" validate:"required,hex32"`
	Reason     string `json:"reason" validate:"required"`
}

func (h *ApprovalHandler) SendBack(c echo.Context) error {
	contractNumber := c.Param("contract_number")
	if contractNumber == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing contract_number path param"})
	}
	var req sendBackReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.SendBack(c.Request().Context(), approvalUC.SendBackInput{
		ContractNumber: contractNumber,
		Stage:          req.Stage,
		ApproverID:     req.ApproverID,
		Reason:         req.Reason,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
