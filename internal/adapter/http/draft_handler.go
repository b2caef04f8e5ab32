package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"microfin-backoffice/internal/usecase/application"
)

type DraftHandler struct{ uc *application.Usecase }

func NewDraftHandler(uc *application.Usecase) *DraftHandler { return &DraftHandler{uc: uc} }

type saveDraftReq struct {
	Step int              `json:"step" validate:"gte=1"`
	Form application.Form `json:"form"`
}

// SaveDraft upserts the draft named in the path. The NIC inside the form
// may be incomplete at this point; drafts only require a step in range.
func (h *DraftHandler) SaveDraft(c echo.Context) error {
	draftID := c.Param("draft_id")
	var req saveDraftReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.SaveDraft(c.Request().Context(), application.SaveDraftInput{
		DraftID: draftID,
		Step:    req.Step,
		Form:    req.Form,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DraftHandler) ListDrafts(c echo.Context) error {
	dtos, err := h.uc.ListDrafts(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *DraftHandler) LoadDraft(c echo.Context) error {
	dto, err := h.uc.LoadDraft(c.Request().Context(), c.Param("draft_id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DraftHandler) DeleteDraft(c echo.Context) error {
	if err := h.uc.DeleteDraft(c.Request().Context(), c.Param("draft_id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
