package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	approvalDomain "microfin-backoffice/internal/domain/approval"
	customerDomain "microfin-backoffice/internal/domain/customer"
	draftDomain "microfin-backoffice/internal/domain/draft"
	loanDomain "microfin-backoffice/internal/domain/loan"
	approvalUC "microfin-backoffice/internal/usecase/approval"
	applicationUC "microfin-backoffice/internal/usecase/application"
)

// writeDomainError maps domain/usecase errors onto the HTTP error
// taxonomy: not-found → 404, business-rule violations → 409, bad input
// → 400, missing capability → 403, anything else → 500.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, draftDomain.ErrNotFound),
		errors.Is(err, customerDomain.ErrNotFound),
		errors.Is(err, approvalDomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})

	case errors.Is(err, approvalUC.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})

	case errors.Is(err, loanDomain.ErrAlreadyDecided),
		errors.Is(err, loanDomain.ErrInvalidTransition),
		errors.Is(err, loanDomain.ErrNotResubmittable),
		errors.Is(err, approvalDomain.ErrEmptyReason),
		errors.Is(err, customerDomain.ErrGroupFull),
		errors.Is(err, applicationUC.ErrApplicationInFlight),
		errors.Is(err, applicationUC.ErrStepGated),
		errors.Is(err, applicationUC.ErrNotAtFinalStep):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, applicationUC.ErrInvalidNIC),
		errors.Is(err, applicationUC.ErrInvalidInput),
		errors.Is(err, approvalUC.ErrUnknownStage):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
