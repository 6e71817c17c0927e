// Package handler provides HTTP handlers for meet administration endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/swimdq/internal/meet/links"
	"github.com/festy23/swimdq/internal/meet/model"
	"github.com/festy23/swimdq/internal/meet/service"
)

// Handler handles HTTP requests for meet endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new meet handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// CreateMeet handles POST /admin/meets.
func (h *Handler) CreateMeet(c *gin.Context) {
	var req model.CreateMeetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateMeet(c.Request.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Errorw("error creating meet", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"meet": resp})
}

func isValidationError(err error) bool {
	return errors.Is(err, model.ErrInvalidDate) ||
		errors.Is(err, model.ErrInvalidTeam) ||
		errors.Is(err, model.ErrInvalidHeadOfficial) ||
		errors.Is(err, model.ErrNoInvitedOfficials) ||
		errors.Is(err, model.ErrInvalidOfficial)
}

// ListMeets handles GET /admin/meets.
func (h *Handler) ListMeets(c *gin.Context) {
	resp, err := h.service.ListMeets(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing meets", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CloseMeet handles POST /admin/meets/:meetId/close.
func (h *Handler) CloseMeet(c *gin.Context) {
	meetID := c.Param("meetId")

	resp, err := h.service.CloseMeet(c.Request.Context(), meetID)
	if err != nil {
		if errors.Is(err, model.ErrMeetNotFound) {
			notFoundResponse(c, "meet not found")
			return
		}
		h.logger.Errorw("error closing meet", "meet_id", meetID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meet": resp})
}

// SubmitQRCode handles GET /admin/meets/:meetId/qrcode.
func (h *Handler) SubmitQRCode(c *gin.Context) {
	meetID := c.Param("meetId")

	size := links.DefaultQRCodeSize
	if raw := c.Query("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			errorResponse(c, "INVALID_REQUEST", "size must be an integer", http.StatusBadRequest)
			return
		}
		size = parsed
	}

	png, err := h.service.SubmitQRCode(c.Request.Context(), meetID, size)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrMeetNotFound):
			notFoundResponse(c, "meet not found")
		case errors.Is(err, model.ErrInvalidQRCodeSize):
			errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
		default:
			h.logger.Errorw("error rendering qr code", "meet_id", meetID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
