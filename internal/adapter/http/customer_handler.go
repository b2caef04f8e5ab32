package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"microfin-backoffice/internal/usecase/application"
)

type CustomerHandler struct{ uc *application.Usecase }

func NewCustomerHandler(uc *application.Usecase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

type assignGroupReq struct {
	GroupID string `json:"group_id" validate:"required,hex32"`
}

// AssignGroup puts a customer into a lending group. A full group is a
// local business-rule rejection; nothing is written.
func (h *CustomerHandler) AssignGroup(c echo.Context) error {
	customerID := c.Param("customer_id")
	var req assignGroupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if err := h.uc.AssignGroup(c.Request().Context(), customerID, req.GroupID); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
