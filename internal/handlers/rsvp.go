package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/elsmrh/sami-yaya/internal/notify"
	"github.com/elsmrh/sami-yaya/internal/services"
	apperrors "github.com/elsmrh/sami-yaya/pkg/errors"
	"github.com/elsmrh/sami-yaya/pkg/logger"
	"github.com/elsmrh/sami-yaya/pkg/metrics"
	"github.com/elsmrh/sami-yaya/pkg/response"
)

// RsvpHandler serves guest submissions and the protected admin operations
// over the record collection.
type RsvpHandler struct {
	svc      *services.RsvpService
	notifier *notify.Notifier
}

func NewRsvpHandler(svc *services.RsvpService, notifier *notify.Notifier) *RsvpHandler {
	return &RsvpHandler{svc: svc, notifier: notifier}
}

type submitRequest struct {
	Name                string `json:"name" validate:"required"`
	Email               string `json:"email" validate:"required"`
	Attendance          string `json:"attendance" validate:"required,oneof=yes no"`
	Guests              *int   `json:"guests" validate:"omitempty,min=0"`
	Children            *int   `json:"children" validate:"omitempty,min=0"`
	DietaryRestrictions string `json:"dietaryRestrictions"`
	Message             string `json:"message"`
}

// POST /api/rsvp
func (h *RsvpHandler) Submit(c *gin.Context) {
	var req submitRequest
	if !bindAndValidate(c, &req) {
		return
	}

	record, err := h.svc.Create(c.Request.Context(), services.CreateRsvpInput{
		Name:                req.Name,
		Email:               req.Email,
		Attendance:          req.Attendance,
		Guests:              req.Guests,
		Children:            req.Children,
		DietaryRestrictions: req.DietaryRestrictions,
		Message:             req.Message,
	})
	if err != nil {
		if errors.Is(err, services.ErrRsvpInvalid) {
			response.Error(c, apperrors.NewValidation("name, email and attendance are required"))
			return
		}
		logger.WithModule("rsvp").Error("store submission", zap.Error(err))
		response.Error(c, apperrors.ErrPersistence.WithInternal(err))
		return
	}

	metrics.RsvpSubmissions.WithLabelValues(record.Attendance).Inc()
	logger.WithModule("rsvp").Info("rsvp recorded",
		zap.String("id", record.ID),
		zap.String("attendance", record.Attendance),
	)

	// Emails go out in the background; the guest's response never waits on
	// them and their failure never surfaces here.
	h.notifier.Dispatch(*record)

	response.Success(c, http.StatusCreated, gin.H{"message": "RSVP recorded"})
}

// GET /api/rsvps
func (h *RsvpHandler) List(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.WithModule("rsvp").Error("list records", zap.Error(err))
		response.Error(c, apperrors.ErrPersistence.WithInternal(err))
		return
	}

	// The dashboard sorts and filters client-side; the API returns the raw
	// collection as a bare array.
	response.Raw(c, http.StatusOK, records)
}

// DELETE /api/rsvps/:id
func (h *RsvpHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrRsvpNotFound) {
			response.Error(c, apperrors.ErrNotFound)
			return
		}
		logger.WithModule("rsvp").Error("delete record", zap.Error(err), zap.String("id", id))
		response.Error(c, apperrors.ErrPersistence.WithInternal(err))
		return
	}

	metrics.RsvpDeletes.Inc()
	logger.WithModule("rsvp").Info("rsvp deleted", zap.String("id", id))
	response.Success(c, http.StatusOK, nil)
}
