// Package handler provides HTTP handlers for the DQ submit page.
package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	meetModel "github.com/festy23/swimdq/internal/meet/model"
	"github.com/festy23/swimdq/internal/submission/model"
	"github.com/festy23/swimdq/internal/submission/service"
)

const (
	meetNotFoundMessage   = "Meet not found."
	notAuthorizedMessage  = "Email not authorized to submit for this meet."
	internalErrorMessage  = "internal server error"
	invalidRequestMessage = "invalid request body"
)

var otherTextTooLongMessage = fmt.Sprintf("other text must be at most %d characters", model.MaxOtherTextLength)

// Handler handles HTTP requests for DQ submission endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new DQ submission handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetForm handles GET /submit/:meetId.
func (h *Handler) GetForm(c *gin.Context) {
	meetID := c.Param("meetId")

	resp, err := h.service.GetSubmissionForm(c.Request.Context(), meetID)
	if err != nil {
		h.storeError(c, "error loading submit form", meetID, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListInfractions handles GET /submit/:meetId/infractions?stroke=.
func (h *Handler) ListInfractions(c *gin.Context) {
	stroke := c.Query("stroke")
	c.JSON(http.StatusOK, model.InfractionsResponse{
		Stroke: stroke,
		Labels: h.service.Labels(stroke),
	})
}

// GetDraft handles GET /submit/:meetId/draft.
func (h *Handler) GetDraft(c *gin.Context) {
	draft := loadDraft(c, c.Param("meetId"))
	c.JSON(http.StatusOK, h.draftResponse(draft))
}

// SelectStroke handles PUT /submit/:meetId/draft/stroke.
func (h *Handler) SelectStroke(c *gin.Context) {
	meetID := c.Param("meetId")

	var req model.SelectStrokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", invalidRequestMessage, http.StatusBadRequest)
		return
	}

	draft := loadDraft(c, meetID)
	if err := h.service.SelectStroke(draft, req.Stroke); err != nil {
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	h.respondWithDraft(c, meetID, draft)
}

// ToggleInfraction handles POST /submit/:meetId/draft/toggle.
func (h *Handler) ToggleInfraction(c *gin.Context) {
	meetID := c.Param("meetId")

	var req model.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", invalidRequestMessage, http.StatusBadRequest)
		return
	}

	draft := loadDraft(c, meetID)
	if _, err := h.service.ToggleInfraction(draft, req.Value); err != nil {
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		return
	}

	h.respondWithDraft(c, meetID, draft)
}

// SetOtherText handles PUT /submit/:meetId/draft/other.
func (h *Handler) SetOtherText(c *gin.Context) {
	meetID := c.Param("meetId")

	var req model.OtherTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			errorResponse(c, "INVALID_REQUEST", otherTextTooLongMessage, http.StatusBadRequest)
			return
		}
		errorResponse(c, "INVALID_REQUEST", invalidRequestMessage, http.StatusBadRequest)
		return
	}

	draft := loadDraft(c, meetID)
	h.service.SetOtherText(draft, req.Text)

	h.respondWithDraft(c, meetID, draft)
}

// Submit handles POST /submit/:meetId.
func (h *Handler) Submit(c *gin.Context) {
	meetID := c.Param("meetId")

	var req model.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", invalidRequestMessage, http.StatusBadRequest)
		return
	}

	draft := loadDraft(c, meetID)
	resp, err := h.service.Submit(c.Request.Context(), meetID, draft, &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrMissingField), errors.Is(err, model.ErrUnknownStroke):
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		case errors.Is(err, model.ErrNotAuthorized):
			forbiddenResponse(c, notAuthorizedMessage)
		default:
			h.storeError(c, "error submitting DQ", meetID, err)
		}
		return
	}

	if err := saveDraft(c, meetID, draft); err != nil {
		h.logger.Warnw("failed to keep draft after submit", "meet_id", meetID, "error", err)
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) respondWithDraft(c *gin.Context, meetID string, draft *model.Draft) {
	if err := saveDraft(c, meetID, draft); err != nil {
		h.logger.Errorw("error saving draft", "meet_id", meetID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", internalErrorMessage, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, h.draftResponse(draft))
}

func (h *Handler) draftResponse(draft *model.Draft) model.DraftResponse {
	selected := draft.Selected
	if selected == nil {
		selected = []string{}
	}
	return model.DraftResponse{
		Stroke:    draft.Stroke,
		Selected:  selected,
		OtherText: draft.OtherText,
		Labels:    h.service.Labels(draft.Stroke),
	}
}

func (h *Handler) storeError(c *gin.Context, msg, meetID string, err error) {
	if errors.Is(err, meetModel.ErrMeetNotFound) {
		notFoundResponse(c, meetNotFoundMessage)
		return
	}
	h.logger.Errorw(msg, "meet_id", meetID, "error", err)
	errorResponse(c, "INTERNAL_ERROR", internalErrorMessage, http.StatusInternalServerError)
}
